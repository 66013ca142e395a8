package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"ticket-booking/internal/handler/httperr"
	"ticket-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type insufficientDetail struct {
	Requested int `json:"requested"`
	Available int `json:"available"`
}

type missingFieldDetail struct {
	Field string `json:"field"`
}

// abortWithDomainError maps the shared failure taxonomy onto HTTP statuses.
func abortWithDomainError(c *gin.Context, err error) {
	var insufficient *errs.InsufficientInventoryError
	var missing *errs.MissingFieldError

	switch {
	case errs.As(err, &insufficient):
		httperr.AbortWithError(c, http.StatusConflict, err,
			fmt.Sprintf("Not enough seats available. Available: %d", insufficient.Available),
			insufficientDetail{Requested: insufficient.Requested, Available: insufficient.Available})
	case errs.Is(err, errs.ErrInsufficientInventory):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough seats available", nil)
	case errs.As(err, &missing):
		httperr.AbortWithError(c, http.StatusBadRequest, err, missing.Error(), missingFieldDetail{Field: missing.Field})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrDoubleCancellation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
	case errs.Is(err, errs.ErrOracleUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Assistant is temporarily unavailable", nil)
	case errs.Is(err, errs.ErrMalformedOracleResponse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Assistant returned an unreadable answer", nil)
	default:
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
