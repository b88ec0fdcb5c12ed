package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	status, code, _ := handler.MapDomainError(fmt.Errorf("%w: route is required", domain.ErrValidation))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", code)

	status, code, _ = handler.MapDomainError(domain.ErrInvalidLeafType)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_LEAF_TYPE", code)

	status, code, _ = handler.MapDomainError(domain.ErrSupplierNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "SUPPLIER_NOT_FOUND", code)

	status, code, msg := handler.MapDomainError(errors.New("pq: connection reset"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "PERSISTENCE_ERROR", code)
	assert.Equal(t, "storage operation failed", msg)
}

func TestMapDomainError_ValidationMessagePassedThrough(t *testing.T) {
	err := fmt.Errorf("%w: date is required", domain.ErrValidation)
	_, _, msg := handler.MapDomainError(err)
	assert.Contains(t, msg, "date is required")
}
