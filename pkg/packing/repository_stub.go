package packing

import "context"

type StubRepository struct {
	data    map[string]PackingList
	loadErr error
	saveErr error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]PackingList{}}
}

func (s *StubRepository) LoadAll(ctx context.Context) (map[string]PackingList, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	lists := make(map[string]PackingList, len(s.data))
	for tripName, list := range s.data {
		lists[tripName] = list
	}
	return lists, nil
}

func (s *StubRepository) SaveAll(ctx context.Context, lists map[string]PackingList) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = make(map[string]PackingList, len(lists))
	for tripName, list := range lists {
		s.data[tripName] = list
	}
	return nil
}

func (s *StubRepository) FailLoadsWith(err error) {
	s.loadErr = err
}

func (s *StubRepository) FailSavesWith(err error) {
	s.saveErr = err
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]PackingList{}
	s.loadErr = nil
	s.saveErr = nil
}
