package api

import (
	"net/http"

	"lane-booking/internal/handler/httperr"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var conflict *commands.CapacityConflictError
	var invalid *commands.ValidationError

	switch {
	case errs.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Not enough lanes available at "+conflict.Hour.Label(),
			gin.H{
				"date":      conflict.Date.String(),
				"hour":      conflict.Hour.Display(),
				"label":     conflict.Hour.Label(),
				"remaining": conflict.Remaining,
				"requested": conflict.Requested,
				"retryable": conflict.Retryable(),
			})
	case errs.As(err, &invalid):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, invalid.Error(), gin.H{"field": invalid.Field})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", gin.H{"reason": err.Error()})
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
	case errs.Is(err, errs.ErrSettingsNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Establishment settings not configured", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid reservation status transition", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
