package budget

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/event_bus"
	"github.com/wayplan/wayplan/pkg/trip"
)

var ErrTripNotFound = errors.New("no budget found for trip")
var ErrTripAlreadyExists = errors.New("a budget already exists for trip")

type Service interface {
	AddTrip(ctx context.Context, tripName string, total float64) (Budget, error)
	DeleteTrip(ctx context.Context, tripName string) error
	GetTrip(ctx context.Context, tripName string) (Budget, error)
	GetTrips(ctx context.Context) (map[string]Budget, error)
	UpdateTotal(ctx context.Context, tripName string, total float64) error
	AddCategory(ctx context.Context, tripName, category string, amount float64) error
	EditCategory(ctx context.Context, tripName, category string, amount float64) error
	DeleteCategory(ctx context.Context, tripName, category string) error
}

// ServiceImpl keeps the budget collection in memory for the lifetime of the
// session and flushes the whole collection to disk after every mutation.
// Calls are expected to arrive one at a time from the presentation layer.
type ServiceImpl struct {
	repo     BudgetRepo
	eventBus *event_bus.EventBus
	currency string
	budgets  map[string]Budget
}

func NewService(repo BudgetRepo, eventBus *event_bus.EventBus, currency string) *ServiceImpl {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &ServiceImpl{repo: repo, eventBus: eventBus, currency: currency}
}

// collection lazily loads the stored budgets on first use.
func (s *ServiceImpl) collection(ctx context.Context) (map[string]Budget, error) {
	if s.budgets == nil {
		budgets, err := s.repo.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load budgets: %w", err)
		}
		s.budgets = budgets
	}
	return s.budgets, nil
}

func (s *ServiceImpl) AddTrip(ctx context.Context, tripName string, total float64) (Budget, error) {
	tripName, err := trip.Normalize(tripName)
	if err != nil {
		return Budget{}, err
	}
	budgets, err := s.collection(ctx)
	if err != nil {
		return Budget{}, err
	}
	if _, ok := budgets[tripName]; ok {
		return Budget{}, fmt.Errorf("%w %q", ErrTripAlreadyExists, tripName)
	}

	b := New(tripName, total, s.currency)
	budgets[tripName] = b
	if err := s.persist(ctx, b); err != nil {
		delete(budgets, tripName)
		return Budget{}, err
	}
	return b, nil
}

func (s *ServiceImpl) DeleteTrip(ctx context.Context, tripName string) error {
	budgets, err := s.collection(ctx)
	if err != nil {
		return err
	}
	b, ok := budgets[tripName]
	if !ok {
		return fmt.Errorf("%w %q", ErrTripNotFound, tripName)
	}
	delete(budgets, tripName)
	if err := s.repo.SaveAll(ctx, budgets); err != nil {
		budgets[tripName] = b
		return err
	}
	s.publish(ctx, event_bus.EventTripDeleted, event_bus.TripDeleted{Domain: "budget", TripName: tripName})
	return nil
}

func (s *ServiceImpl) GetTrip(ctx context.Context, tripName string) (Budget, error) {
	budgets, err := s.collection(ctx)
	if err != nil {
		return Budget{}, err
	}
	b, ok := budgets[tripName]
	if !ok {
		return Budget{}, fmt.Errorf("%w %q", ErrTripNotFound, tripName)
	}
	return b, nil
}

// GetTrips returns a copy of the collection so callers cannot alter the
// session cache without going through a mutation.
func (s *ServiceImpl) GetTrips(ctx context.Context) (map[string]Budget, error) {
	budgets, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Budget, len(budgets))
	for tripName, b := range budgets {
		out[tripName] = b
	}
	return out, nil
}

func (s *ServiceImpl) UpdateTotal(ctx context.Context, tripName string, total float64) error {
	return s.mutate(ctx, tripName, func(b *Budget) error {
		b.Total = total
		return nil
	})
}

func (s *ServiceImpl) AddCategory(ctx context.Context, tripName, category string, amount float64) error {
	return s.mutate(ctx, tripName, func(b *Budget) error {
		b.AddCategory(category, amount)
		return nil
	})
}

func (s *ServiceImpl) EditCategory(ctx context.Context, tripName, category string, amount float64) error {
	return s.mutate(ctx, tripName, func(b *Budget) error {
		return b.UpdateCategory(category, amount)
	})
}

func (s *ServiceImpl) DeleteCategory(ctx context.Context, tripName, category string) error {
	return s.mutate(ctx, tripName, func(b *Budget) error {
		return b.RemoveCategory(category)
	})
}

// mutate applies fn to the named budget and persists the collection. The
// in-memory entity is only replaced when both fn and the save succeed.
func (s *ServiceImpl) mutate(ctx context.Context, tripName string, fn func(*Budget) error) error {
	budgets, err := s.collection(ctx)
	if err != nil {
		return err
	}
	b, ok := budgets[tripName]
	if !ok {
		return fmt.Errorf("%w %q", ErrTripNotFound, tripName)
	}

	previous := b
	previous.Categories = make(map[string]float64, len(b.Categories))
	for name, amount := range b.Categories {
		previous.Categories[name] = amount
	}
	if err := fn(&b); err != nil {
		return err
	}
	budgets[tripName] = b
	if err := s.persist(ctx, b); err != nil {
		budgets[tripName] = previous
		return err
	}
	return nil
}

func (s *ServiceImpl) persist(ctx context.Context, changed Budget) error {
	if err := s.repo.SaveAll(ctx, s.budgets); err != nil {
		return err
	}
	s.publish(ctx, event_bus.EventBudgetSaved, event_bus.BudgetSaved{
		TripName: changed.TripName,
		Total:    changed.Total,
		Currency: changed.Currency,
	})
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
