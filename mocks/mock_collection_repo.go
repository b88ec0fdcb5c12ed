package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
)

// MockCollectionRepo is a mock implementation of port.CollectionRepository.
type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) InsertDeduction(ctx context.Context, rec *domain.CollectionRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectionRepo) DaySummary(ctx context.Context, regNo int, leafType domain.LeafType, day time.Time) (*domain.DeductionSummary, error) {
	args := m.Called(ctx, regNo, leafType, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeductionSummary), args.Error(1)
}

func (m *MockCollectionRepo) ListDayDeductions(ctx context.Context, regNo int, day time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, regNo, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockCollectionRepo) ListGrouped(ctx context.Context, filter domain.CollectionFilter) ([]domain.GroupedCollection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupedCollection), args.Error(1)
}

func (m *MockCollectionRepo) ListByRegNo(ctx context.Context, regNo int) ([]domain.Transaction, error) {
	args := m.Called(ctx, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockCollectionRepo) RouteDayTotals(ctx context.Context, route string, day time.Time) (*domain.RouteDayTotals, error) {
	args := m.Called(ctx, route, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteDayTotals), args.Error(1)
}

func (m *MockCollectionRepo) DistinctRoutes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
