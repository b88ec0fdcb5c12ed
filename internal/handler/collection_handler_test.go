package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/handler"
	"boughtleaf/mocks"
)

func newCollectionHandler() (*handler.CollectionHandler, *mocks.MockCollectionService) {
	mockSvc := new(mocks.MockCollectionService)
	h := handler.NewCollectionHandler(mockSvc)
	return h, mockSvc
}

func TestCollectionHandler_GetAll_Success(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	groups := []domain.GroupedCollection{{RegNo: 101, SupplierName: "W. Perera"}}
	mockSvc.On("AllGrouped", mock.Anything).Return(groups, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/api/collections", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestCollectionHandler_GetByDate_InvalidDate(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	mockSvc.On("GroupedForDate", mock.Anything, "not-a-date").
		Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/api/collections/date/not-a-date", nil)
	c.Params = gin.Params{{Key: "date", Value: "not-a-date"}}

	h.GetByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollectionHandler_GetFiltered_ParsesQueryParams(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.Local)
	mockSvc.On("FilterGrouped", mock.Anything, mock.MatchedBy(func(f domain.CollectionFilter) bool {
		return f.From != nil && f.From.Equal(from) &&
			f.To != nil && f.To.Equal(to) &&
			f.RegNo != nil && *f.RegNo == 101 &&
			f.Route == "Galaha"
	})).Return([]domain.GroupedCollection{}, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet,
		"/api/collections/filter?start_date=2025-06-01&end_date=2025-06-30&reg_no=101&route=Galaha", nil)

	h.GetFiltered(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCollectionHandler_GetFiltered_BadStartDate(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/api/collections/filter?start_date=01-06-2025", nil)

	h.GetFiltered(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "FilterGrouped", mock.Anything, mock.Anything)
}

func TestCollectionHandler_GetDetails_Success(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	txns := []domain.Transaction{{ID: 1, RegNo: 101}}
	mockSvc.On("Details", mock.Anything, 101).Return(txns, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/api/collections/details/101", nil)
	c.Params = gin.Params{{Key: "regNo", Value: "101"}}

	h.GetDetails(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCollectionHandler_Export_Success(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	groups := []domain.GroupedCollection{{
		RegNo:        101,
		SupplierName: "W. Perera",
		Route:        "Galaha",
		LeafType:     domain.LeafTypeNormal,
		TotalBags:    4,
		TotalGross:   decimal.RequireFromString("120.5"),
		NetWeight:    decimal.RequireFromString("110"),
		RecordCount:  3,
	}}
	mockSvc.On("GroupedForDate", mock.Anything, "2025-06-10").Return(groups, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/api/collections/export?date=2025-06-10", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "collections-2025-06-10.xlsx")

	f, err := excelize.OpenReader(w.Body)
	assert.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Collections", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "W. Perera", name)
	mockSvc.AssertExpectations(t)
}

// brokenWriter accepts headers but fails every body write, like a
// client that disconnects mid-download.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCollectionHandler_Export_WriteFailureLeavesBodyAlone(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	mockSvc.On("GroupedForDate", mock.Anything, "2025-06-10").
		Return([]domain.GroupedCollection{{RegNo: 101}}, nil)

	rec := httptest.NewRecorder()
	w := &brokenWriter{ResponseRecorder: rec}
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/collections/export?date=2025-06-10", nil)

	h.Export(c)

	// No error envelope may be appended onto the xlsx stream.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "PERSISTENCE_ERROR")
	assert.NotContains(t, rec.Body.String(), "success")
}

func TestCollectionHandler_Export_MissingDate(t *testing.T) {
	h, mockSvc := newCollectionHandler()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/api/collections/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GroupedForDate", mock.Anything, mock.Anything)
}
