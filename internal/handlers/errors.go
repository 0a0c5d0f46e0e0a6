package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/services"
	"github.com/alwazw/manus-erp/internal/utils/dates"
)

// respondError maps a service error to an HTTP status and writes the JSON
// error body. Validation-class failures are the caller's fault (400),
// missing records are 404, anything else is a 500 with the detail kept out
// of the response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrUnbalancedEntry),
		errors.Is(err, services.ErrUnknownAccount),
		errors.Is(err, services.ErrDuplicateAccount),
		errors.Is(err, dates.ErrInvalidDate),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
