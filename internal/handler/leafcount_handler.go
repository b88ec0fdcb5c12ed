package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/service"
)

// LeafCountHandler handles the leaf quality register and route weight
// endpoints.
type LeafCountHandler struct {
	leafCountService service.LeafCountService
}

// NewLeafCountHandler creates a new LeafCountHandler.
func NewLeafCountHandler(leafCountService service.LeafCountService) *LeafCountHandler {
	return &LeafCountHandler{leafCountService: leafCountService}
}

// GetRoutes handles GET /api/leafcounts/routes
func (h *LeafCountHandler) GetRoutes(c *gin.Context) {
	routes, err := h.leafCountService.Routes(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, routes)
}

// GetRouteTotalWeight handles
// GET /api/leafcounts/routes/:route/total-weight?date=&month=
func (h *LeafCountHandler) GetRouteTotalWeight(c *gin.Context) {
	route := c.Param("route")

	dateStr := c.Query("date")
	month := c.Query("month")
	if dateStr == "" || month == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date and month are required")
		return
	}
	day, err := strconv.Atoi(dateStr)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be a day of month")
		return
	}

	weight, err := h.leafCountService.RouteNetWeight(c.Request.Context(), route, day, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"route":       route,
		"date":        day,
		"month":       month,
		"totalWeight": weight,
	})
}

// Save handles POST /api/leafcounts
func (h *LeafCountHandler) Save(c *gin.Context) {
	var input service.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id, err := h.leafCountService.Save(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"ind": id}, "Leaf count saved successfully")
}

// GetHistory handles GET /api/leafcounts/history
func (h *LeafCountHandler) GetHistory(c *gin.Context) {
	filter := domain.LeafCountFilter{
		Month: c.Query("month"),
		Route: c.Query("route"),
	}
	if fromStr := c.Query("start_date"); fromStr != "" {
		t, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("invalid 'start_date': %q must be YYYY-MM-DD", fromStr))
			return
		}
		filter.From = &t
	}
	if toStr := c.Query("end_date"); toStr != "" {
		t, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("invalid 'end_date': %q must be YYYY-MM-DD", toStr))
			return
		}
		filter.To = &t
	}

	history, err := h.leafCountService.History(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, history)
}
