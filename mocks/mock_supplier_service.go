package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/service"
)

// MockSupplierService is a mock implementation of service.SupplierService.
type MockSupplierService struct {
	mock.Mock
}

func (m *MockSupplierService) GetByRegNo(ctx context.Context, regNo int) (*service.SupplierDetail, error) {
	args := m.Called(ctx, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SupplierDetail), args.Error(1)
}

func (m *MockSupplierService) Search(ctx context.Context, query string) ([]domain.Supplier, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}
