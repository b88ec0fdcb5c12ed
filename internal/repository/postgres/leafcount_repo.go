package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

type leafCountRepo struct {
	db *sqlx.DB
}

// NewLeafCountRepo creates a new PostgreSQL-backed LeafCountRepository.
func NewLeafCountRepo(db *sqlx.DB) port.LeafCountRepository {
	return &leafCountRepo{db: db}
}

const insertLeafCountQuery = `INSERT INTO leaf_counts (
	day_of_month, month_label, route, best_leaf, below_best, poor,
	user_name, host_name, log_time
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9
) RETURNING id`

func (r *leafCountRepo) Insert(ctx context.Context, rec *domain.LeafCountRecord) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, insertLeafCountQuery,
		rec.DayOfMonth, rec.MonthLabel, rec.Route,
		rec.BestLeaf, rec.BelowBest, rec.Poor,
		rec.UserName, rec.HostName, rec.LogTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("leafCountRepo.Insert: %w", err)
	}
	return id, nil
}

const leafCountHistorySelect = `SELECT
	id, day_of_month, month_label, btrim(route) AS route,
	best_leaf, below_best, poor, user_name, host_name, log_time
FROM leaf_counts
%s
ORDER BY log_time DESC`

func (r *leafCountRepo) ListHistory(ctx context.Context, filter domain.LeafCountFilter) ([]domain.LeafCountRecord, error) {
	clause := "WHERE 1=1"
	args := []interface{}{}
	argN := 1

	if filter.Month != "" {
		clause += fmt.Sprintf(" AND month_label = $%d", argN)
		args = append(args, filter.Month)
		argN++
	}
	if filter.Route != "" {
		clause += fmt.Sprintf(" AND btrim(route) = btrim($%d)", argN)
		args = append(args, filter.Route)
		argN++
	}
	if filter.From != nil {
		clause += fmt.Sprintf(" AND log_time >= $%d", argN)
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		clause += fmt.Sprintf(" AND log_time <= $%d", argN)
		args = append(args, *filter.To)
	}

	query := fmt.Sprintf(leafCountHistorySelect, clause)

	records := []domain.LeafCountRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("leafCountRepo.ListHistory: %w", err)
	}
	return records, nil
}
