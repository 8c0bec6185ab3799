package packing

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/event_bus"
)

var ErrListNotFound = errors.New("no packing list found for trip")

type Service interface {
	// Generate builds a fresh list from the trip parameters without saving it.
	Generate(destination string, duration int, weather string, travelers int, tripName string) PackingList
	// Save upserts the list into the stored collection. It reports success
	// instead of returning an error so the GUI can show a single dialog.
	Save(ctx context.Context, list PackingList) bool
	LoadAll(ctx context.Context) (map[string]PackingList, error)
	Get(ctx context.Context, tripName string) (PackingList, error)
	// Delete removes the named list, reporting false when it did not exist
	// or the collection could not be rewritten.
	Delete(ctx context.Context, tripName string) bool
}

// ServiceImpl works directly against the stored collection: every call
// reloads it, so edits made in one window are visible in the next operation.
type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewService(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) Generate(destination string, duration int, weather string, travelers int, tripName string) PackingList {
	return Generate(destination, duration, weather, travelers, tripName)
}

func (s *ServiceImpl) Save(ctx context.Context, list PackingList) bool {
	lists, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Errorf("could not load packing lists before saving %q: %v", list.TripName, err)
		return false
	}
	lists[list.TripName] = list
	if err := s.repo.SaveAll(ctx, lists); err != nil {
		log.Errorf("could not save packing list %q: %v", list.TripName, err)
		return false
	}
	s.publish(ctx, event_bus.EventPackingListSaved, event_bus.PackingListSaved{
		TripName:   list.TripName,
		TotalItems: list.TotalItems(),
	})
	return true
}

func (s *ServiceImpl) LoadAll(ctx context.Context) (map[string]PackingList, error) {
	return s.repo.LoadAll(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, tripName string) (PackingList, error) {
	lists, err := s.repo.LoadAll(ctx)
	if err != nil {
		return PackingList{}, err
	}
	list, ok := lists[tripName]
	if !ok {
		return PackingList{}, fmt.Errorf("%w %q", ErrListNotFound, tripName)
	}
	return list, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, tripName string) bool {
	lists, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Errorf("could not load packing lists before deleting %q: %v", tripName, err)
		return false
	}
	if _, ok := lists[tripName]; !ok {
		return false
	}
	delete(lists, tripName)
	if err := s.repo.SaveAll(ctx, lists); err != nil {
		log.Errorf("could not delete packing list %q: %v", tripName, err)
		return false
	}
	s.publish(ctx, event_bus.EventTripDeleted, event_bus.TripDeleted{Domain: "packing_list", TripName: tripName})
	return true
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
