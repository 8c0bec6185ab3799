package itinerary

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/event_bus"
	"github.com/wayplan/wayplan/internal/utils"
	"github.com/wayplan/wayplan/pkg/trip"
)

var ErrNotFound = errors.New("no itinerary found for trip")
var ErrAlreadyExists = errors.New("an itinerary already exists for trip")
var ErrActivityNotFound = errors.New("no matching activity found")

type Service interface {
	Create(ctx context.Context, it Itinerary) (Itinerary, error)
	Update(ctx context.Context, it Itinerary) error
	Delete(ctx context.Context, tripName string) error
	Get(ctx context.Context, tripName string) (Itinerary, error)
	GetAll(ctx context.Context) (map[string]Itinerary, error)
	AddActivity(ctx context.Context, tripName string, a Activity) error
	RemoveActivity(ctx context.Context, tripName, description string) error
	ToggleActivityCompleted(ctx context.Context, tripName, description string) error
	Status(ctx context.Context, tripName string) (Status, error)
	Upcoming(ctx context.Context) ([]Itinerary, error)
}

// ServiceImpl keeps the itinerary collection in memory for the session and
// rewrites the whole collection on every mutation.
type ServiceImpl struct {
	repo        Repository
	eventBus    *event_bus.EventBus
	clock       utils.Clock
	itineraries map[string]Itinerary
}

func NewService(repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

func (s *ServiceImpl) collection(ctx context.Context) (map[string]Itinerary, error) {
	if s.itineraries == nil {
		itineraries, err := s.repo.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load itineraries: %w", err)
		}
		s.itineraries = itineraries
	}
	return s.itineraries, nil
}

func (s *ServiceImpl) Create(ctx context.Context, it Itinerary) (Itinerary, error) {
	tripName, err := trip.Normalize(it.TripName)
	if err != nil {
		return Itinerary{}, err
	}
	it.TripName = tripName

	itineraries, err := s.collection(ctx)
	if err != nil {
		return Itinerary{}, err
	}
	if _, ok := itineraries[tripName]; ok {
		return Itinerary{}, fmt.Errorf("%w %q", ErrAlreadyExists, tripName)
	}

	itineraries[tripName] = it
	if err := s.persist(ctx, it); err != nil {
		delete(itineraries, tripName)
		return Itinerary{}, err
	}
	return it, nil
}

// Update replaces an existing itinerary wholesale; the GUI edits a copy of
// every field at once and saves.
func (s *ServiceImpl) Update(ctx context.Context, it Itinerary) error {
	itineraries, err := s.collection(ctx)
	if err != nil {
		return err
	}
	previous, ok := itineraries[it.TripName]
	if !ok {
		return fmt.Errorf("%w %q", ErrNotFound, it.TripName)
	}

	itineraries[it.TripName] = it
	if err := s.persist(ctx, it); err != nil {
		itineraries[it.TripName] = previous
		return err
	}
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, tripName string) error {
	itineraries, err := s.collection(ctx)
	if err != nil {
		return err
	}
	previous, ok := itineraries[tripName]
	if !ok {
		return fmt.Errorf("%w %q", ErrNotFound, tripName)
	}

	delete(itineraries, tripName)
	if err := s.repo.SaveAll(ctx, itineraries); err != nil {
		itineraries[tripName] = previous
		return err
	}
	s.publish(ctx, event_bus.EventTripDeleted, event_bus.TripDeleted{Domain: "itinerary", TripName: tripName})
	return nil
}

func (s *ServiceImpl) Get(ctx context.Context, tripName string) (Itinerary, error) {
	itineraries, err := s.collection(ctx)
	if err != nil {
		return Itinerary{}, err
	}
	it, ok := itineraries[tripName]
	if !ok {
		return Itinerary{}, fmt.Errorf("%w %q", ErrNotFound, tripName)
	}
	return it, nil
}

// GetAll returns a copy of the collection so callers cannot alter the
// session cache without going through a mutation.
func (s *ServiceImpl) GetAll(ctx context.Context) (map[string]Itinerary, error) {
	itineraries, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Itinerary, len(itineraries))
	for tripName, it := range itineraries {
		out[tripName] = it
	}
	return out, nil
}

func (s *ServiceImpl) AddActivity(ctx context.Context, tripName string, a Activity) error {
	return s.mutate(ctx, tripName, func(it *Itinerary) error {
		if err := a.Validate(it.StartDate, it.EndDate); err != nil {
			return err
		}
		it.AddActivity(a)
		return nil
	})
}

func (s *ServiceImpl) RemoveActivity(ctx context.Context, tripName, description string) error {
	return s.mutate(ctx, tripName, func(it *Itinerary) error {
		if !it.RemoveActivity(description) {
			return fmt.Errorf("%w: %q on trip %q", ErrActivityNotFound, description, tripName)
		}
		return nil
	})
}

func (s *ServiceImpl) ToggleActivityCompleted(ctx context.Context, tripName, description string) error {
	return s.mutate(ctx, tripName, func(it *Itinerary) error {
		if !it.ToggleActivityCompleted(description) {
			return fmt.Errorf("%w: %q on trip %q", ErrActivityNotFound, description, tripName)
		}
		return nil
	})
}

// Status reports where the named trip sits relative to the current clock
// time.
func (s *ServiceImpl) Status(ctx context.Context, tripName string) (Status, error) {
	it, err := s.Get(ctx, tripName)
	if err != nil {
		return StatusUnknown, err
	}
	return it.StatusAt(s.clock.Now()), nil
}

// Upcoming lists itineraries that have not started yet as of the current
// clock time, soonest first.
func (s *ServiceImpl) Upcoming(ctx context.Context) ([]Itinerary, error) {
	itineraries, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	upcoming := make([]Itinerary, 0)
	for _, it := range itineraries {
		if it.StatusAt(now) == StatusUpcoming {
			upcoming = append(upcoming, it)
		}
	}
	sort.Slice(upcoming, func(x, y int) bool {
		if upcoming[x].StartDate != upcoming[y].StartDate {
			return upcoming[x].StartDate < upcoming[y].StartDate
		}
		return upcoming[x].TripName < upcoming[y].TripName
	})
	return upcoming, nil
}

func (s *ServiceImpl) mutate(ctx context.Context, tripName string, fn func(*Itinerary) error) error {
	itineraries, err := s.collection(ctx)
	if err != nil {
		return err
	}
	it, ok := itineraries[tripName]
	if !ok {
		return fmt.Errorf("%w %q", ErrNotFound, tripName)
	}

	previous := it
	previous.Activities = append([]Activity(nil), it.Activities...)
	if err := fn(&it); err != nil {
		return err
	}
	itineraries[tripName] = it
	if err := s.persist(ctx, it); err != nil {
		itineraries[tripName] = previous
		return err
	}
	return nil
}

func (s *ServiceImpl) persist(ctx context.Context, changed Itinerary) error {
	if err := s.repo.SaveAll(ctx, s.itineraries); err != nil {
		return err
	}
	s.publish(ctx, event_bus.EventItinerarySaved, event_bus.ItinerarySaved{
		TripName:   changed.TripName,
		Location:   changed.Location,
		Activities: len(changed.Activities),
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
