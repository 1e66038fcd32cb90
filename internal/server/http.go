package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailscore/internal/core/port"
	"stoik.com/emailscore/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(verificationService port.VerificationService) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	server := &HTTPServer{
		echo: e,
	}

	// Initialize handlers
	verifyHandler := handler.NewVerifyHTTPHandler(verificationService, validator.New())

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/verify", verifyHandler.HandleVerify())
	e.POST("/verify-bulk", verifyHandler.HandleVerifyBulk())
	e.GET("/disposable-domains", verifyHandler.HandleDisposableDomains())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "emailscore",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
