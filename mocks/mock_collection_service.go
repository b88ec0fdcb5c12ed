package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
)

// MockCollectionService is a mock implementation of service.CollectionService.
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) AllGrouped(ctx context.Context) ([]domain.GroupedCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupedCollection), args.Error(1)
}

func (m *MockCollectionService) TodayGrouped(ctx context.Context) ([]domain.GroupedCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupedCollection), args.Error(1)
}

func (m *MockCollectionService) GroupedForDate(ctx context.Context, date string) ([]domain.GroupedCollection, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupedCollection), args.Error(1)
}

func (m *MockCollectionService) FilterGrouped(ctx context.Context, filter domain.CollectionFilter) ([]domain.GroupedCollection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupedCollection), args.Error(1)
}

func (m *MockCollectionService) Details(ctx context.Context, regNo int) ([]domain.Transaction, error) {
	args := m.Called(ctx, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
