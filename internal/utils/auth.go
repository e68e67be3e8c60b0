package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// EmailClaims binds an email address to a signed, time-limited assertion.
type EmailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateEmailToken signs an assertion that the holder received mail at
// email, valid for ttl from now.
func GenerateEmailToken(email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := EmailClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseEmailToken verifies signature and expiry and returns the claims.
func ParseEmailToken(tokenString, secret string) (*EmailClaims, error) {
	claims := &EmailClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
