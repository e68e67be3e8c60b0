package api

import (
	"time"

	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"roam/internal/api/middleware"
	"roam/internal/handlers"
)

func (s *Server) registerRoutes(deps Dependencies) {
	s.echo.GET("/health", s.healthCheck)

	api := s.echo.Group("/api")

	auth := middleware.NewAuthMiddleware(s.config.JWT.Secret)
	// 5 OTP requests per minute per IP, burst of 5.
	otpLimiter := middleware.NewRateLimiter(rate.Every(12*time.Second), 5)

	authHandler := handlers.NewAuthHandler(deps.OTP)
	uploadHandler := handlers.NewUploadHandler(deps.Uploader)
	tourHandler := handlers.NewTourHandler(deps.Tours, deps.Uploader)

	bodyLimit := echomw.BodyLimit("64M")

	// Open routes
	api.POST("/sendOTP", authHandler.SendOTP, otpLimiter.Middleware())
	api.GET("/getRatings", tourHandler.GetRatings)
	api.GET("/getTourTitles", tourHandler.GetTourTitles)
	api.GET("/getTourDetails/:tourId", tourHandler.GetTourDetails)

	// Write routes, behind the email assertion
	api.POST("/upload", uploadHandler.UploadFiles, auth.Middleware(), bodyLimit)
	api.POST("/saveTour", tourHandler.SaveTour, auth.Middleware(), bodyLimit)
	api.POST("/updateTour/:tourId", tourHandler.UpdateTour, auth.Middleware(), bodyLimit)
}
