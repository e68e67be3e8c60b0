package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roam/internal/models"
	"roam/internal/services"
	"roam/internal/utils/logger"
)

type AuthHandler struct {
	otp *services.OTPService
	log *logger.Logger
}

func NewAuthHandler(otp *services.OTPService) *AuthHandler {
	return &AuthHandler{
		otp: otp,
		log: logger.New("auth_handler"),
	}
}

// SendOTP emails a one-time passcode to the submitted address and
// returns a signed assertion binding that email, valid for one hour.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is required"})
	}

	token, err := h.otp.SendOTP(req.Email)
	if err != nil {
		h.log.Error("Failed to send OTP", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send OTP"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "OTP sent successfully",
		"token":   token,
	})
}
