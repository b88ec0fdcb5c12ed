package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/export"
	"boughtleaf/internal/service"
)

// CollectionHandler handles the grouped collection view endpoints.
type CollectionHandler struct {
	collectionService service.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// GetAll handles GET /api/collections
func (h *CollectionHandler) GetAll(c *gin.Context) {
	groups, err := h.collectionService.AllGrouped(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, groups)
}

// GetToday handles GET /api/collections/today
func (h *CollectionHandler) GetToday(c *gin.Context) {
	groups, err := h.collectionService.TodayGrouped(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, groups)
}

// GetByDate handles GET /api/collections/date/:date
func (h *CollectionHandler) GetByDate(c *gin.Context) {
	groups, err := h.collectionService.GroupedForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, groups)
}

// parseCollectionFilter extracts the optional filter parameters from
// query params.
func parseCollectionFilter(c *gin.Context) (domain.CollectionFilter, error) {
	var filter domain.CollectionFilter

	if fromStr := c.Query("start_date"); fromStr != "" {
		t, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid 'start_date': must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if toStr := c.Query("end_date"); toStr != "" {
		t, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid 'end_date': must be YYYY-MM-DD")
		}
		filter.To = &t
	}
	if regNoStr := c.Query("reg_no"); regNoStr != "" {
		regNo, err := strconv.Atoi(regNoStr)
		if err != nil {
			return filter, fmt.Errorf("invalid 'reg_no': must be numeric")
		}
		filter.RegNo = &regNo
	}
	filter.Route = c.Query("route")

	return filter, nil
}

// GetFiltered handles GET /api/collections/filter
func (h *CollectionHandler) GetFiltered(c *gin.Context) {
	filter, err := parseCollectionFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	groups, err := h.collectionService.FilterGrouped(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, groups)
}

// GetDetails handles GET /api/collections/details/:regNo
func (h *CollectionHandler) GetDetails(c *gin.Context) {
	regNo, err := strconv.Atoi(c.Param("regNo"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "registration number must be numeric")
		return
	}

	txns, err := h.collectionService.Details(c.Request.Context(), regNo)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, txns)
}

// Export handles GET /api/collections/export?date=
// It serves the grouped totals for one date as an .xlsx download.
func (h *CollectionHandler) Export(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	groups, err := h.collectionService.GroupedForDate(c.Request.Context(), date)
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := export.Workbook(groups)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=collections-%s.xlsx", date))
	if err := f.Write(c.Writer); err != nil {
		// Headers and part of the body are already on the wire, so an
		// error envelope would corrupt the download. Log and give up.
		requestID, _ := c.Get("request_id")
		zap.L().Error("xlsx export write failed",
			zap.Any("request_id", requestID),
			zap.Error(err),
		)
	}
}
