package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/service"
)

// MockLeafCountService is a mock implementation of service.LeafCountService.
type MockLeafCountService struct {
	mock.Mock
}

func (m *MockLeafCountService) Routes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLeafCountService) RouteNetWeight(ctx context.Context, route string, day int, monthLabel string) (decimal.Decimal, error) {
	args := m.Called(ctx, route, day, monthLabel)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLeafCountService) Save(ctx context.Context, input service.Input) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeafCountService) History(ctx context.Context, filter domain.LeafCountFilter) ([]domain.LeafCountRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeafCountRecord), args.Error(1)
}
