package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
)

// MockSupplierRepo is a mock implementation of port.SupplierRepository.
type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) GetByRegNo(ctx context.Context, regNo int) (*domain.Supplier, error) {
	args := m.Called(ctx, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepo) Search(ctx context.Context, query string, limit int) ([]domain.Supplier, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}
