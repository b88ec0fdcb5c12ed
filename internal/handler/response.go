package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boughtleaf/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response with a confirmation
// message.
func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: message})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and
// error codes. Anything that is not a known sentinel came out of the
// store and is reported as a persistence failure; it is never retried.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrInvalidLeafType):
		return http.StatusBadRequest, "INVALID_LEAF_TYPE", "invalid leaf type; must be \"Normal\" or \"Super\""
	case errors.Is(err, domain.ErrSupplierNotFound):
		return http.StatusNotFound, "SUPPLIER_NOT_FOUND", "supplier not found"
	default:
		return http.StatusInternalServerError, "PERSISTENCE_ERROR", "storage operation failed"
	}
}

// HandleError maps a domain error and sends the appropriate error
// response, logging server-side failures with the request id.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		zap.L().Error("internal error",
			zap.Any("request_id", requestID),
			zap.Error(err),
		)
	}
	RespondError(c, status, code, msg)
}
