package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boughtleaf/internal/service"
)

// SupplierHandler handles supplier lookup and search endpoints.
type SupplierHandler struct {
	supplierService service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// GetByRegNo handles GET /api/suppliers/:regNo
func (h *SupplierHandler) GetByRegNo(c *gin.Context) {
	regNo, err := strconv.Atoi(c.Param("regNo"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "registration number must be numeric")
		return
	}

	detail, err := h.supplierService.GetByRegNo(c.Request.Context(), regNo)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Search handles GET /api/suppliers/search/all?query=
func (h *SupplierHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "search query is required")
		return
	}

	suppliers, err := h.supplierService.Search(c.Request.Context(), query)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, suppliers)
}
