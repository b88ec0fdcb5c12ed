package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/service"
)

// MockDeductionService is a mock implementation of service.DeductionService.
type MockDeductionService struct {
	mock.Mock
}

func (m *MockDeductionService) Summarize(ctx context.Context, regNo int, leafType domain.LeafType, day time.Time) (*domain.DeductionSummary, error) {
	args := m.Called(ctx, regNo, leafType, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeductionSummary), args.Error(1)
}

func (m *MockDeductionService) RecordDeduction(ctx context.Context, input service.Input) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeductionService) TodayDeductions(ctx context.Context, regNo int) ([]domain.Transaction, error) {
	args := m.Called(ctx, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
