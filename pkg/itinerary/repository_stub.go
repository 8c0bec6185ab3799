package itinerary

import "context"

type StubRepository struct {
	data    map[string]Itinerary
	saveErr error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]Itinerary{}}
}

func (s *StubRepository) LoadAll(ctx context.Context) (map[string]Itinerary, error) {
	itineraries := make(map[string]Itinerary, len(s.data))
	for tripName, it := range s.data {
		itineraries[tripName] = it
	}
	return itineraries, nil
}

func (s *StubRepository) SaveAll(ctx context.Context, itineraries map[string]Itinerary) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = make(map[string]Itinerary, len(itineraries))
	for tripName, it := range itineraries {
		s.data[tripName] = it
	}
	return nil
}

func (s *StubRepository) FailSavesWith(err error) {
	s.saveErr = err
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]Itinerary{}
	s.saveErr = nil
}
