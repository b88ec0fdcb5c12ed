package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

// LeafCountService covers the leaf quality register and the
// route-level net weight calculation used for route payment
// verification.
type LeafCountService interface {
	Routes(ctx context.Context) ([]string, error)
	RouteNetWeight(ctx context.Context, route string, day int, monthLabel string) (decimal.Decimal, error)
	Save(ctx context.Context, input Input) (int64, error)
	History(ctx context.Context, filter domain.LeafCountFilter) ([]domain.LeafCountRecord, error)
}

type leafCountService struct {
	leafCounts  port.LeafCountRepository
	collections port.CollectionRepository
	now         func() time.Time
}

// NewLeafCountService creates a new LeafCountService implementation.
// The collection repository supplies route names and route totals; the
// register itself holds no weights.
func NewLeafCountService(leafCounts port.LeafCountRepository, collections port.CollectionRepository) LeafCountService {
	return &leafCountService{leafCounts: leafCounts, collections: collections, now: time.Now}
}

func (s *leafCountService) Routes(ctx context.Context) ([]string, error) {
	return s.collections.DistinctRoutes(ctx)
}

// RouteNetWeight nets a route's gross against every deduction field for
// one day. An unparseable month label or a day with no rows yields
// zero, not an error, and a negative result is floored at zero: the
// payable weight of a route is never negative.
func (s *leafCountService) RouteNetWeight(ctx context.Context, route string, day int, monthLabel string) (decimal.Decimal, error) {
	if strings.TrimSpace(route) == "" {
		return decimal.Zero, fmt.Errorf("%w: route name is required", domain.ErrValidation)
	}

	date, ok := domain.DateForMonthLabel(monthLabel, day)
	if !ok {
		return decimal.Zero, nil
	}

	totals, err := s.collections.RouteDayTotals(ctx, strings.TrimSpace(route), date)
	if err != nil {
		return decimal.Zero, err
	}
	if totals.RecordCount == 0 {
		return decimal.Zero, nil
	}

	net := totals.Gross.Sub(totals.DeductionTotal())
	if net.IsNegative() {
		return decimal.Zero, nil
	}
	return net, nil
}

// Save appends one leaf quality record and returns its id.
func (s *leafCountService) Save(ctx context.Context, input Input) (int64, error) {
	day, ok := input.integer(leafCountFields["date"])
	if !ok || day < 1 || day > 31 {
		return 0, fmt.Errorf("%w: date is required and must be a day of month", domain.ErrValidation)
	}
	month := input.str(leafCountFields["month"])
	if month == "" {
		return 0, fmt.Errorf("%w: month is required", domain.ErrValidation)
	}
	route := input.str(leafCountFields["route"])
	if route == "" {
		return 0, fmt.Errorf("%w: route is required", domain.ErrValidation)
	}

	bestLeaf, _ := input.integer(leafCountFields["bestLeaf"])
	belowBest, _ := input.integer(leafCountFields["belowBest"])
	poor, _ := input.integer(leafCountFields["poor"])
	if bestLeaf == 0 && belowBest == 0 && poor == 0 {
		return 0, fmt.Errorf("%w: at least one leaf count value is required", domain.ErrValidation)
	}

	userName := input.str(leafCountFields["userName"])
	if userName == "" {
		userName = "mobile_user"
	}
	hostName := input.str(leafCountFields["pcName"])
	if hostName == "" {
		if h, err := os.Hostname(); err == nil && h != "" {
			hostName = h
		} else {
			hostName = "MOBILE_APP"
		}
	}

	rec := &domain.LeafCountRecord{
		DayOfMonth: day,
		MonthLabel: month,
		Route:      route,
		BestLeaf:   bestLeaf,
		BelowBest:  belowBest,
		Poor:       poor,
		UserName:   userName,
		HostName:   hostName,
		LogTime:    s.now(),
	}

	return s.leafCounts.Insert(ctx, rec)
}

func (s *leafCountService) History(ctx context.Context, filter domain.LeafCountFilter) ([]domain.LeafCountRecord, error) {
	return s.leafCounts.ListHistory(ctx, filter)
}
