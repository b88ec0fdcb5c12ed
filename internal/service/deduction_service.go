package service

import (
	"context"
	"fmt"
	"time"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

// DeductionService covers the per-supplier deduction surface: the
// daily summary, the append-only write path, and the day listing.
type DeductionService interface {
	Summarize(ctx context.Context, regNo int, leafType domain.LeafType, day time.Time) (*domain.DeductionSummary, error)
	RecordDeduction(ctx context.Context, input Input) (int64, error)
	TodayDeductions(ctx context.Context, regNo int) ([]domain.Transaction, error)
}

type deductionService struct {
	collections port.CollectionRepository
	now         func() time.Time
}

// NewDeductionService creates a new DeductionService implementation.
func NewDeductionService(collections port.CollectionRepository) DeductionService {
	return &deductionService{collections: collections, now: time.Now}
}

// Summarize aggregates one supplier's rows for one day and leaf type.
// A zero day means the current calendar date. No matching rows is a
// valid state and comes back as an all-zero summary, not an error.
func (s *deductionService) Summarize(ctx context.Context, regNo int, leafType domain.LeafType, day time.Time) (*domain.DeductionSummary, error) {
	if regNo <= 0 {
		return nil, fmt.Errorf("%w: registration number must be a positive integer", domain.ErrValidation)
	}
	if _, ok := domain.ParseLeafType(string(leafType)); !ok {
		return nil, domain.ErrInvalidLeafType
	}
	if day.IsZero() {
		day = s.now()
	}
	return s.collections.DaySummary(ctx, regNo, leafType, day)
}

// RecordDeduction appends one deduction row and returns its id. Shift,
// day of month and month label are derived from the current time when
// the caller does not supply them. Identical repeated calls append
// distinct rows; there is no dedup.
func (s *deductionService) RecordDeduction(ctx context.Context, input Input) (int64, error) {
	regNo, ok := input.integer(deductionFields["regNo"])
	if !ok || regNo <= 0 {
		return 0, fmt.Errorf("%w: regNo is required and must be numeric", domain.ErrValidation)
	}

	route := input.str(deductionFields["route"])
	if route == "" {
		return 0, fmt.Errorf("%w: route is required", domain.ErrValidation)
	}

	dealer := input.str(deductionFields["supplierName"])
	if dealer == "" {
		return 0, fmt.Errorf("%w: supplierName is required", domain.ErrValidation)
	}

	leafType, ok := domain.ParseLeafType(input.str(deductionFields["leafType"]))
	if !ok {
		return 0, domain.ErrInvalidLeafType
	}

	now := s.now()

	dayOfMonth, ok := input.integer(deductionFields["date"])
	if !ok || dayOfMonth < 1 || dayOfMonth > 31 {
		dayOfMonth = now.Day()
	}
	monthLabel := input.str(deductionFields["month"])
	if monthLabel == "" {
		monthLabel = domain.MonthLabelFor(now)
	}
	userName := input.str(deductionFields["userName"])
	if userName == "" {
		userName = "mobile_user"
	}
	hostName := input.str(deductionFields["pcName"])
	if hostName == "" {
		hostName = "MOBILE_APP"
	}

	rec := &domain.CollectionRecord{
		RegNo:       regNo,
		Route:       route,
		Dealer:      dealer,
		LeafType:    leafType,
		IsDeduction: true,
		Deduction: &domain.DeductionAmounts{
			BagWeight:      input.amount(deductionFields["bagWeight"]),
			Water:          input.amount(deductionFields["water"]),
			Coarse:         input.amount(deductionFields["coarse"]),
			Rejected:       input.amount(deductionFields["rejected"]),
			Boiled:         input.amount(deductionFields["boiled"]),
			Spd:            input.amount(deductionFields["spd"]),
			RouteDeduct:    input.amount(deductionFields["routeDeduct"]),
			ExcessLeaf:     input.amount(deductionFields["excessLeaf"]),
			Transfer:       input.amount(deductionFields["transfer"]),
			RouteDeductPre: input.amount(deductionFields["routeDeductPre"]),
		},
		Shift:      domain.ShiftFor(now),
		UserName:   userName,
		SourceMode: domain.SourceMobile,
		HostName:   hostName,
		MonthLabel: monthLabel,
		DayOfMonth: dayOfMonth,
		LogTime:    now,
	}

	return s.collections.InsertDeduction(ctx, rec)
}

func (s *deductionService) TodayDeductions(ctx context.Context, regNo int) ([]domain.Transaction, error) {
	if regNo <= 0 {
		return nil, fmt.Errorf("%w: registration number must be a positive integer", domain.ErrValidation)
	}
	return s.collections.ListDayDeductions(ctx, regNo, s.now())
}
