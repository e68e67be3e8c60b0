package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"roam/internal/utils"
)

// AuthMiddleware guards routes behind the signed email assertion issued
// by the OTP flow.
type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// Middleware requires the authorization header to carry a valid
// assertion. A missing header is rejected with 403; a failed
// verification, expiry included, surfaces as 500. On success the bound
// email is set on the request context.
func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := utils.ParseEmailToken(tokenString, m.jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify token")
			}

			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// GetEmail returns the email bound by the auth middleware, or "".
func GetEmail(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok {
		return email
	}
	return ""
}
