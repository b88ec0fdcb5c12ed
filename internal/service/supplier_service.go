package service

import (
	"context"
	"fmt"
	"time"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

// searchLimit caps supplier search results.
const searchLimit = 50

// SupplierDetail is a supplier lookup result together with the
// deduction rows already recorded for them today.
type SupplierDetail struct {
	RegNo             int                  `json:"regNo"`
	SupplierName      string               `json:"supplierName"`
	Route             string               `json:"route"`
	TodayTransactions []domain.Transaction `json:"todayTransactions"`
}

// SupplierService provides supplier lookup and search over the
// distinct tuples in the collection table.
type SupplierService interface {
	GetByRegNo(ctx context.Context, regNo int) (*SupplierDetail, error)
	Search(ctx context.Context, query string) ([]domain.Supplier, error)
}

type supplierService struct {
	suppliers   port.SupplierRepository
	collections port.CollectionRepository
	now         func() time.Time
}

// NewSupplierService creates a new SupplierService implementation.
func NewSupplierService(suppliers port.SupplierRepository, collections port.CollectionRepository) SupplierService {
	return &supplierService{suppliers: suppliers, collections: collections, now: time.Now}
}

func (s *supplierService) GetByRegNo(ctx context.Context, regNo int) (*SupplierDetail, error) {
	if regNo <= 0 {
		return nil, fmt.Errorf("%w: registration number must be a positive integer", domain.ErrValidation)
	}

	supplier, err := s.suppliers.GetByRegNo(ctx, regNo)
	if err != nil {
		return nil, err
	}

	today, err := s.collections.ListDayDeductions(ctx, regNo, s.now())
	if err != nil {
		return nil, err
	}

	return &SupplierDetail{
		RegNo:             supplier.RegNo,
		SupplierName:      supplier.SupplierName,
		Route:             supplier.Route,
		TodayTransactions: today,
	}, nil
}

func (s *supplierService) Search(ctx context.Context, query string) ([]domain.Supplier, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}
	return s.suppliers.Search(ctx, query, searchLimit)
}
