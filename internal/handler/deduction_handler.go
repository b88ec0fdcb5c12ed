package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"boughtleaf/internal/middleware"
	"boughtleaf/internal/service"
)

// DeductionHandler handles the deduction summary, write, and listing
// endpoints.
type DeductionHandler struct {
	deductionService service.DeductionService
}

// NewDeductionHandler creates a new DeductionHandler.
func NewDeductionHandler(deductionService service.DeductionService) *DeductionHandler {
	return &DeductionHandler{deductionService: deductionService}
}

// GetSummary handles GET /api/deductions/summary/:regNo
// The leaf type comes from the "leaf-type" request header, resolved by
// middleware, defaulting to Normal.
func (h *DeductionHandler) GetSummary(c *gin.Context) {
	regNo, err := strconv.Atoi(c.Param("regNo"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "registration number must be numeric")
		return
	}

	leafType := middleware.GetLeafType(c)

	// Zero time selects the current calendar date.
	summary, err := h.deductionService.Summarize(c.Request.Context(), regNo, leafType, time.Time{})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Save handles POST /api/deductions
func (h *DeductionHandler) Save(c *gin.Context) {
	var input service.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id, err := h.deductionService.RecordDeduction(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"ind": id}, "Deduction saved successfully")
}

// GetTodayTransactions handles GET /api/deductions/today/:regNo
func (h *DeductionHandler) GetTodayTransactions(c *gin.Context) {
	regNo, err := strconv.Atoi(c.Param("regNo"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "registration number must be numeric")
		return
	}

	txns, err := h.deductionService.TodayDeductions(c.Request.Context(), regNo)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, txns)
}
