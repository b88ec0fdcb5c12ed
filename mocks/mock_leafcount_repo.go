package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boughtleaf/internal/domain"
)

// MockLeafCountRepo is a mock implementation of port.LeafCountRepository.
type MockLeafCountRepo struct {
	mock.Mock
}

func (m *MockLeafCountRepo) Insert(ctx context.Context, rec *domain.LeafCountRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeafCountRepo) ListHistory(ctx context.Context, filter domain.LeafCountFilter) ([]domain.LeafCountRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeafCountRecord), args.Error(1)
}
