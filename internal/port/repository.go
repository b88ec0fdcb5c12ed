package port

import (
	"context"
	"time"

	"boughtleaf/internal/domain"
)

// SupplierRepository looks up the distinct supplier tuples present in
// the collection table.
type SupplierRepository interface {
	GetByRegNo(ctx context.Context, regNo int) (*domain.Supplier, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Supplier, error)
}

// CollectionRepository defines the contract for the leaf collection
// record store. The store is append-only: there is no update or delete.
type CollectionRepository interface {
	InsertDeduction(ctx context.Context, rec *domain.CollectionRecord) (int64, error)
	DaySummary(ctx context.Context, regNo int, leafType domain.LeafType, day time.Time) (*domain.DeductionSummary, error)
	ListDayDeductions(ctx context.Context, regNo int, day time.Time) ([]domain.Transaction, error)
	ListGrouped(ctx context.Context, filter domain.CollectionFilter) ([]domain.GroupedCollection, error)
	ListByRegNo(ctx context.Context, regNo int) ([]domain.Transaction, error)
	RouteDayTotals(ctx context.Context, route string, day time.Time) (*domain.RouteDayTotals, error)
	DistinctRoutes(ctx context.Context) ([]string, error)
}

// LeafCountRepository defines the contract for the leaf quality
// register. Records are written once and never touched again.
type LeafCountRepository interface {
	Insert(ctx context.Context, rec *domain.LeafCountRecord) (int64, error)
	ListHistory(ctx context.Context, filter domain.LeafCountFilter) ([]domain.LeafCountRecord, error)
}
