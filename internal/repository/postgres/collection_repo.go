package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

type collectionRepo struct {
	db *sqlx.DB
}

// NewCollectionRepo creates a new PostgreSQL-backed CollectionRepository.
func NewCollectionRepo(db *sqlx.DB) port.CollectionRepository {
	return &collectionRepo{db: db}
}

const insertDeductionQuery = `INSERT INTO leaf_collections (
	reg_no, route, dealer, leaf_type, qty, gross_weight,
	bag_weight, water, coarse, rejected, boiled, spd,
	route_deduct, excess_leaf, transfer, route_deduct_pre,
	net_weight, is_deduction, shift, user_name, source_mode,
	host_name, month_label, day_of_month, log_time
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16,
	$17, $18, $19, $20, $21,
	$22, $23, $24, $25
) RETURNING id`

// InsertDeduction appends one deduction row. The stored quantity is
// always 1 (one deduction event is one row) and the gross and net
// weights are always 0; those fields belong to raw collection rows.
func (r *collectionRepo) InsertDeduction(ctx context.Context, rec *domain.CollectionRecord) (int64, error) {
	d := rec.Deduction
	if d == nil {
		d = &domain.DeductionAmounts{}
	}

	var id int64
	err := r.db.QueryRowxContext(ctx, insertDeductionQuery,
		rec.RegNo, rec.Route, rec.Dealer, rec.LeafType,
		1, decimal.Zero,
		d.BagWeight, d.Water, d.Coarse, d.Rejected, d.Boiled, d.Spd,
		d.RouteDeduct, d.ExcessLeaf, d.Transfer, d.RouteDeductPre,
		decimal.Zero, true, rec.Shift, rec.UserName, rec.SourceMode,
		rec.HostName, rec.MonthLabel, rec.DayOfMonth, rec.LogTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("collectionRepo.InsertDeduction: %w", err)
	}
	return id, nil
}

// Raw totals come from raw rows only; deduction totals from deduction
// rows only. Net weight is read back as stored, never derived here.
const daySummaryQuery = `SELECT
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN qty END), 0)          AS total_bags,
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN gross_weight END), 0) AS total_gross,
	COALESCE(SUM(CASE WHEN is_deduction THEN bag_weight END), 0)       AS total_bag_weight,
	COALESCE(SUM(CASE WHEN is_deduction THEN coarse END), 0)           AS total_coarse,
	COALESCE(SUM(CASE WHEN is_deduction THEN water END), 0)            AS total_water,
	COALESCE(SUM(CASE WHEN is_deduction THEN boiled END), 0)           AS total_boiled,
	COALESCE(SUM(CASE WHEN is_deduction THEN rejected END), 0)         AS total_rejected,
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN net_weight END), 0)   AS total_net_weight,
	COUNT(CASE WHEN is_deduction THEN 1 END)                           AS transaction_count
FROM leaf_collections
WHERE reg_no = $1 AND leaf_type = $2 AND log_time::date = $3`

func (r *collectionRepo) DaySummary(ctx context.Context, regNo int, leafType domain.LeafType, day time.Time) (*domain.DeductionSummary, error) {
	var summary domain.DeductionSummary
	if err := r.db.GetContext(ctx, &summary, daySummaryQuery, regNo, leafType, day.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("collectionRepo.DaySummary: %w", err)
	}
	return &summary, nil
}

const listDayDeductionsQuery = `SELECT
	id, reg_no, dealer, route, leaf_type, qty, gross_weight,
	bag_weight, water, coarse, rejected, boiled, net_weight,
	shift, user_name, source_mode, log_time
FROM leaf_collections
WHERE reg_no = $1 AND log_time::date = $2 AND is_deduction
ORDER BY log_time DESC`

func (r *collectionRepo) ListDayDeductions(ctx context.Context, regNo int, day time.Time) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, listDayDeductionsQuery, regNo, day.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("collectionRepo.ListDayDeductions: %w", err)
	}
	return txns, nil
}

// buildCollectionWhere constructs a dynamic WHERE clause for the
// grouped collection views. It returns the clause string and the
// positional arguments.
func buildCollectionWhere(f domain.CollectionFilter) (clause string, args []interface{}) {
	clause = "WHERE 1=1"
	argN := 1

	if f.Day != nil {
		clause += fmt.Sprintf(" AND log_time::date = $%d", argN)
		args = append(args, f.Day.Format("2006-01-02"))
		argN++
	}
	if f.From != nil {
		clause += fmt.Sprintf(" AND log_time::date >= $%d", argN)
		args = append(args, f.From.Format("2006-01-02"))
		argN++
	}
	if f.To != nil {
		clause += fmt.Sprintf(" AND log_time::date <= $%d", argN)
		args = append(args, f.To.Format("2006-01-02"))
		argN++
	}
	if f.RegNo != nil {
		clause += fmt.Sprintf(" AND reg_no = $%d", argN)
		args = append(args, *f.RegNo)
		argN++
	}
	if f.Route != "" {
		clause += fmt.Sprintf(" AND route ILIKE $%d", argN)
		args = append(args, "%"+f.Route+"%")
	}

	return clause, args
}

const groupedSelect = `SELECT
	reg_no,
	dealer AS supplier_name,
	btrim(route) AS route,
	leaf_type,
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN qty END), 0)          AS total_bags,
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN gross_weight END), 0) AS total_gross,
	COALESCE(SUM(CASE WHEN is_deduction THEN bag_weight END), 0)       AS total_bag_weight,
	COALESCE(SUM(CASE WHEN is_deduction THEN coarse END), 0)           AS total_coarse,
	COALESCE(SUM(CASE WHEN is_deduction THEN water END), 0)            AS total_water,
	COALESCE(SUM(CASE WHEN is_deduction THEN boiled END), 0)           AS total_boiled,
	COALESCE(SUM(CASE WHEN is_deduction THEN rejected END), 0)         AS total_rejected,
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN net_weight END), 0)   AS net_weight,
	MAX(log_time)                                                      AS last_updated,
	COUNT(*)                                                           AS record_count,
	COUNT(CASE WHEN source_mode = 'mobile' THEN 1 END)                 AS app_count,
	COUNT(CASE WHEN source_mode <> 'mobile' THEN 1 END)                AS web_count,
	to_char(MAX(log_time), 'DD/MM/YYYY')                               AS display_date,
	to_char(MAX(log_time), 'HH12:MI AM')                               AS display_time
FROM leaf_collections
%s
GROUP BY reg_no, dealer, btrim(route), leaf_type
ORDER BY last_updated DESC`

func (r *collectionRepo) ListGrouped(ctx context.Context, filter domain.CollectionFilter) ([]domain.GroupedCollection, error) {
	clause, args := buildCollectionWhere(filter)
	query := fmt.Sprintf(groupedSelect, clause)

	groups := []domain.GroupedCollection{}
	if err := r.db.SelectContext(ctx, &groups, query, args...); err != nil {
		return nil, fmt.Errorf("collectionRepo.ListGrouped: %w", err)
	}
	return groups, nil
}

const listByRegNoQuery = `SELECT
	id, reg_no, dealer, route, leaf_type, qty, gross_weight,
	bag_weight, water, coarse, rejected, boiled, net_weight,
	shift, user_name, source_mode, log_time,
	to_char(log_time, 'DD/MM/YYYY') AS display_date,
	to_char(log_time, 'HH12:MI AM') AS display_time,
	CASE WHEN source_mode = 'mobile' THEN 'Mobile App' ELSE 'Web System' END AS source
FROM leaf_collections
WHERE reg_no = $1
ORDER BY log_time DESC`

func (r *collectionRepo) ListByRegNo(ctx context.Context, regNo int) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, listByRegNoQuery, regNo); err != nil {
		return nil, fmt.Errorf("collectionRepo.ListByRegNo: %w", err)
	}
	return txns, nil
}

// Gross only from raw rows (the stricter variant); the deduction
// columns are summed over every matching row, raw rows hold zeroes
// there by convention.
const routeDayTotalsQuery = `SELECT
	COUNT(*)                                                           AS record_count,
	COALESCE(SUM(CASE WHEN NOT is_deduction THEN gross_weight END), 0) AS gross,
	COALESCE(SUM(coarse), 0)                                           AS coarse,
	COALESCE(SUM(water), 0)                                            AS water,
	COALESCE(SUM(bag_weight), 0)                                       AS bag_weight,
	COALESCE(SUM(spd), 0)                                              AS spd,
	COALESCE(SUM(boiled), 0)                                           AS boiled,
	COALESCE(SUM(rejected), 0)                                         AS rejected,
	COALESCE(SUM(route_deduct), 0)                                     AS route_deduct,
	COALESCE(SUM(excess_leaf), 0)                                      AS excess_leaf,
	COALESCE(SUM(transfer), 0)                                         AS transfer,
	COALESCE(SUM(route_deduct_pre), 0)                                 AS route_deduct_pre
FROM leaf_collections
WHERE btrim(route) = btrim($1) AND log_time::date = $2`

func (r *collectionRepo) RouteDayTotals(ctx context.Context, route string, day time.Time) (*domain.RouteDayTotals, error) {
	var totals domain.RouteDayTotals
	if err := r.db.GetContext(ctx, &totals, routeDayTotalsQuery, route, day.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("collectionRepo.RouteDayTotals: %w", err)
	}
	return &totals, nil
}

// Source data carries inconsistent whitespace and the literal string
// 'null' in the route column; both are filtered out here.
const distinctRoutesQuery = `SELECT DISTINCT btrim(route) AS route
FROM leaf_collections
WHERE btrim(route) <> '' AND route <> 'null'
ORDER BY route`

func (r *collectionRepo) DistinctRoutes(ctx context.Context) ([]string, error) {
	routes := []string{}
	if err := r.db.SelectContext(ctx, &routes, distinctRoutesQuery); err != nil {
		return nil, fmt.Errorf("collectionRepo.DistinctRoutes: %w", err)
	}
	return routes, nil
}
