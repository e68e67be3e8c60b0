package services

import (
	"fmt"
	"math/rand"
	"time"

	"roam/internal/utils"
	"roam/internal/utils/logger"
)

// TokenTTL is how long an issued email assertion stays valid.
const TokenTTL = time.Hour

// OTPService emails one-time passcodes and issues signed email
// assertions. The code itself is not retained anywhere; the assertion is
// the only artifact the caller can present later.
type OTPService struct {
	mail   utils.EmailSender
	secret string
	log    *logger.Logger
}

func NewOTPService(mail utils.EmailSender, jwtSecret string) *OTPService {
	return &OTPService{
		mail:   mail,
		secret: jwtSecret,
		log:    logger.New("otp"),
	}
}

// GenerateCode draws a uniform 6-digit code in [100000, 999999].
func GenerateCode() int {
	return 100000 + rand.Intn(900000)
}

// SendOTP emails a fresh code to email and returns a signed assertion
// binding that address, valid for TokenTTL. No token is issued when the
// send fails.
func (s *OTPService) SendOTP(email string) (string, error) {
	code := GenerateCode()

	body := fmt.Sprintf("<p>Your one-time passcode is <b>%d</b>.</p><p>It was requested for %s.</p>", code, email)
	if err := s.mail.Send(email, "Your verification code", body); err != nil {
		return "", fmt.Errorf("failed to send OTP email: %w", err)
	}

	token, err := utils.GenerateEmailToken(email, s.secret, TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign email assertion: %w", err)
	}

	s.log.Info("OTP sent to %s", email)
	return token, nil
}
