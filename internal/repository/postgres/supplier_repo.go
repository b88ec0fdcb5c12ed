package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

type supplierRepo struct {
	db *sqlx.DB
}

// NewSupplierRepo creates a new PostgreSQL-backed SupplierRepository.
func NewSupplierRepo(db *sqlx.DB) port.SupplierRepository {
	return &supplierRepo{db: db}
}

const supplierByRegNoQuery = `SELECT DISTINCT
	reg_no,
	dealer AS supplier_name,
	btrim(route) AS route
FROM leaf_collections
WHERE reg_no = $1
LIMIT 1`

func (r *supplierRepo) GetByRegNo(ctx context.Context, regNo int) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.db.GetContext(ctx, &supplier, supplierByRegNoQuery, regNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("supplierRepo.GetByRegNo: %w", err)
	}
	return &supplier, nil
}

const searchSuppliersQuery = `SELECT DISTINCT
	reg_no,
	dealer AS supplier_name,
	btrim(route) AS route
FROM leaf_collections
WHERE reg_no::text LIKE $1 OR dealer ILIKE $1
ORDER BY reg_no
LIMIT $2`

func (r *supplierRepo) Search(ctx context.Context, query string, limit int) ([]domain.Supplier, error) {
	suppliers := []domain.Supplier{}
	if err := r.db.SelectContext(ctx, &suppliers, searchSuppliersQuery, "%"+query+"%", limit); err != nil {
		return nil, fmt.Errorf("supplierRepo.Search: %w", err)
	}
	return suppliers, nil
}
