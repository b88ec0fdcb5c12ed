package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/service"
	"boughtleaf/mocks"
)

func setupLeafCountService() (service.LeafCountService, *mocks.MockLeafCountRepo, *mocks.MockCollectionRepo) {
	leafRepo := new(mocks.MockLeafCountRepo)
	collRepo := new(mocks.MockCollectionRepo)
	return service.NewLeafCountService(leafRepo, collRepo), leafRepo, collRepo
}

func TestLeafCountService_Routes(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	collRepo.On("DistinctRoutes", mock.Anything).Return([]string{"Deltota", "Galaha"}, nil)

	got, err := svc.Routes(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Deltota", "Galaha"}, got)
	collRepo.AssertExpectations(t)
}

func TestLeafCountService_RouteNetWeight_Success(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local)
	collRepo.On("RouteDayTotals", mock.Anything, "Galaha", day).Return(&domain.RouteDayTotals{
		RecordCount: 8,
		Gross:       decimal.RequireFromString("1000"),
		Coarse:      decimal.RequireFromString("40"),
		Water:       decimal.RequireFromString("10"),
		BagWeight:   decimal.RequireFromString("50"),
	}, nil)

	got, err := svc.RouteNetWeight(context.Background(), "Galaha", 10, "Jun-2025")

	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("900").Equal(got), "got %s", got)
	collRepo.AssertExpectations(t)
}

func TestLeafCountService_RouteNetWeight_TrimsRoute(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local)
	collRepo.On("RouteDayTotals", mock.Anything, "Galaha", day).Return(&domain.RouteDayTotals{
		RecordCount: 1,
		Gross:       decimal.RequireFromString("100"),
	}, nil)

	got, err := svc.RouteNetWeight(context.Background(), "  Galaha  ", 10, "Jun-2025")

	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100").Equal(got))
}

func TestLeafCountService_RouteNetWeight_EmptyRoute(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	_, err := svc.RouteNetWeight(context.Background(), "   ", 10, "Jun-2025")

	assert.ErrorIs(t, err, domain.ErrValidation)
	collRepo.AssertNotCalled(t, "RouteDayTotals", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeafCountService_RouteNetWeight_BadMonthYieldsZero(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	got, err := svc.RouteNetWeight(context.Background(), "Galaha", 10, "Foo-2025")

	assert.NoError(t, err)
	assert.True(t, got.IsZero())
	collRepo.AssertNotCalled(t, "RouteDayTotals", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeafCountService_RouteNetWeight_NoRowsYieldsZero(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	collRepo.On("RouteDayTotals", mock.Anything, "Galaha", mock.AnythingOfType("time.Time")).
		Return(&domain.RouteDayTotals{RecordCount: 0}, nil)

	got, err := svc.RouteNetWeight(context.Background(), "Galaha", 10, "Jun-2025")

	assert.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestLeafCountService_RouteNetWeight_NegativeClampedToZero(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	collRepo.On("RouteDayTotals", mock.Anything, "Galaha", mock.AnythingOfType("time.Time")).
		Return(&domain.RouteDayTotals{
			RecordCount: 3,
			Gross:       decimal.RequireFromString("100"),
			RouteDeduct: decimal.RequireFromString("150"),
		}, nil)

	got, err := svc.RouteNetWeight(context.Background(), "Galaha", 10, "Jun-2025")

	assert.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestLeafCountService_RouteNetWeight_RepoError(t *testing.T) {
	svc, _, collRepo := setupLeafCountService()

	repoErr := errors.New("connection refused")
	collRepo.On("RouteDayTotals", mock.Anything, "Galaha", mock.AnythingOfType("time.Time")).
		Return(nil, repoErr)

	_, err := svc.RouteNetWeight(context.Background(), "Galaha", 10, "Jun-2025")

	assert.ErrorIs(t, err, repoErr)
}

func TestLeafCountService_Save_Success(t *testing.T) {
	svc, leafRepo, _ := setupLeafCountService()

	leafRepo.On("Insert", mock.Anything, mock.MatchedBy(func(rec *domain.LeafCountRecord) bool {
		return rec.DayOfMonth == 15 &&
			rec.MonthLabel == "Jun-2025" &&
			rec.Route == "Galaha" &&
			rec.BestLeaf == 10 &&
			rec.BelowBest == 4 &&
			rec.Poor == 1 &&
			!rec.LogTime.IsZero()
	})).Return(int64(7), nil)

	// "bellowBest" is how the existing clients spell it.
	id, err := svc.Save(context.Background(), service.Input{
		"date":       15.0,
		"month":      "Jun-2025",
		"route":      "Galaha",
		"bestLeaf":   10.0,
		"bellowBest": 4.0,
		"poor":       1.0,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	leafRepo.AssertExpectations(t)
}

func TestLeafCountService_Save_MissingDate(t *testing.T) {
	svc, leafRepo, _ := setupLeafCountService()

	_, err := svc.Save(context.Background(), service.Input{
		"month":    "Jun-2025",
		"route":    "Galaha",
		"bestLeaf": 10.0,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	leafRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLeafCountService_Save_DayOutOfRange(t *testing.T) {
	svc, _, _ := setupLeafCountService()

	_, err := svc.Save(context.Background(), service.Input{
		"date":     32.0,
		"month":    "Jun-2025",
		"route":    "Galaha",
		"bestLeaf": 10.0,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLeafCountService_Save_AllCountsZero(t *testing.T) {
	svc, _, _ := setupLeafCountService()

	_, err := svc.Save(context.Background(), service.Input{
		"date":  15.0,
		"month": "Jun-2025",
		"route": "Galaha",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLeafCountService_History(t *testing.T) {
	svc, leafRepo, _ := setupLeafCountService()

	filter := domain.LeafCountFilter{Month: "Jun-2025", Route: "Galaha"}
	expected := []domain.LeafCountRecord{{ID: 1, Route: "Galaha"}}
	leafRepo.On("ListHistory", mock.Anything, filter).Return(expected, nil)

	got, err := svc.History(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	leafRepo.AssertExpectations(t)
}
