package service

import (
	"context"
	"fmt"
	"time"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/port"
)

// CollectionService provides the grouped collection views consumed by
// the web UI.
type CollectionService interface {
	AllGrouped(ctx context.Context) ([]domain.GroupedCollection, error)
	TodayGrouped(ctx context.Context) ([]domain.GroupedCollection, error)
	GroupedForDate(ctx context.Context, date string) ([]domain.GroupedCollection, error)
	FilterGrouped(ctx context.Context, filter domain.CollectionFilter) ([]domain.GroupedCollection, error)
	Details(ctx context.Context, regNo int) ([]domain.Transaction, error)
}

type collectionService struct {
	collections port.CollectionRepository
	now         func() time.Time
}

// NewCollectionService creates a new CollectionService implementation.
func NewCollectionService(collections port.CollectionRepository) CollectionService {
	return &collectionService{collections: collections, now: time.Now}
}

func (s *collectionService) AllGrouped(ctx context.Context) ([]domain.GroupedCollection, error) {
	return s.collections.ListGrouped(ctx, domain.CollectionFilter{})
}

func (s *collectionService) TodayGrouped(ctx context.Context) ([]domain.GroupedCollection, error) {
	today := s.now()
	return s.collections.ListGrouped(ctx, domain.CollectionFilter{Day: &today})
}

func (s *collectionService) GroupedForDate(ctx context.Context, date string) ([]domain.GroupedCollection, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return s.collections.ListGrouped(ctx, domain.CollectionFilter{Day: &day})
}

func (s *collectionService) FilterGrouped(ctx context.Context, filter domain.CollectionFilter) ([]domain.GroupedCollection, error) {
	return s.collections.ListGrouped(ctx, filter)
}

func (s *collectionService) Details(ctx context.Context, regNo int) ([]domain.Transaction, error) {
	if regNo <= 0 {
		return nil, fmt.Errorf("%w: registration number must be a positive integer", domain.ErrValidation)
	}
	return s.collections.ListByRegNo(ctx, regNo)
}
