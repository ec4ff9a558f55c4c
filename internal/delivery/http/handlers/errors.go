package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LavaJover/shvark-order-intake/internal/delivery/http/dto/order/response"
	"github.com/LavaJover/shvark-order-intake/internal/domain"
	"github.com/LavaJover/shvark-order-intake/internal/validation"
)

const (
	codeValidationFailed   = "validation_failed"
	codeMissingField       = "missing_field"
	codeInvalidRequestBody = "invalid_request_body"
	codeOrderNotFound      = "order_not_found"
	codeInternalError      = "internal_error"
)

// writeError maps usecase errors onto the JSON error envelope.
func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:  codeValidationFailed,
			Fields: verr.FieldMap(),
		})
	case errors.Is(err, domain.ErrStatusRequired):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:   codeMissingField,
			Message: err.Error(),
			Fields:  map[string]string{"status": "is required"},
		})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Error:   codeOrderNotFound,
			Message: err.Error(),
		})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Error: codeInternalError,
		})
	}
}
