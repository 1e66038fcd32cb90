package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailscore/internal/core/domain"
	"stoik.com/emailscore/internal/core/port"
	"stoik.com/emailscore/internal/core/refdata"
)

type VerifyHTTPHandler struct {
	verificationService port.VerificationService
	validate            *validator.Validate
}

type VerifyRequest struct {
	Email string `json:"email"`
}

type BulkVerifyOptions struct {
	BatchSize int `json:"batchSize"`
	// Delay is the inter-chunk pacing delay in milliseconds.
	Delay int `json:"delay"`
}

type BulkVerifyRequest struct {
	Emails  []string           `json:"emails" validate:"required,min=1,max=1000"`
	Options *BulkVerifyOptions `json:"options"`
}

type BulkVerifyResponse struct {
	BatchID   uuid.UUID                    `json:"batch_id"`
	Results   []*domain.VerificationResult `json:"results"`
	Stats     domain.BulkStats             `json:"stats"`
	Processed int                          `json:"processed"`
	Timestamp time.Time                    `json:"timestamp"`
}

type DisposableDomainsResponse struct {
	Domains []string `json:"domains"`
	Count   int      `json:"count"`
}

func NewVerifyHTTPHandler(verificationService port.VerificationService, validate *validator.Validate) *VerifyHTTPHandler {
	return &VerifyHTTPHandler{
		verificationService: verificationService,
		validate:            validate,
	}
}

func (h *VerifyHTTPHandler) HandleVerify() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req VerifyRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind verify request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Email is required",
			})
		}

		result, err := h.verificationService.Verify(c.Request().Context(), req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyAddress) {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "Email is required",
				})
			}
			log.WithError(err).Error("Verification failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}

func (h *VerifyHTTPHandler) HandleVerifyBulk() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req BulkVerifyRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind bulk verify request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Emails array is required",
			})
		}

		if err := h.validate.Struct(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": bulkValidationMessage(err),
			})
		}

		opts := domain.BulkOptions{}
		if req.Options != nil {
			opts.BatchSize = req.Options.BatchSize
			opts.Delay = time.Duration(req.Options.Delay) * time.Millisecond
		}

		result, err := h.verificationService.VerifyBulk(c.Request().Context(), req.Emails, opts)
		if err != nil {
			if errors.Is(err, domain.ErrTooManyAddresses) {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "Maximum 1000 emails per request",
				})
			}
			log.WithError(err).Error("Bulk verification failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		return c.JSON(http.StatusOK, BulkVerifyResponse{
			BatchID:   result.BatchID,
			Results:   result.Results,
			Stats:     result.Stats,
			Processed: len(result.Results),
			Timestamp: result.ProcessedAt,
		})
	}
}

func (h *VerifyHTTPHandler) HandleDisposableDomains() echo.HandlerFunc {
	return func(c echo.Context) error {
		domains := refdata.DisposableDomains()
		return c.JSON(http.StatusOK, DisposableDomainsResponse{
			Domains: domains,
			Count:   len(domains),
		})
	}
}

func bulkValidationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() == "max" {
				return "Maximum 1000 emails per request"
			}
		}
	}
	return "Emails array is required"
}
