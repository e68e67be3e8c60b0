package models

// SendOTPRequest is the body of POST /api/sendOTP.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}
