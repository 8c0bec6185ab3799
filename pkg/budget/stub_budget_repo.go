package budget

import (
	"context"
)

type StubBudgetRepo struct {
	data    map[string]Budget
	saveErr error
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[string]Budget{}}
}

func (s *StubBudgetRepo) LoadAll(ctx context.Context) (map[string]Budget, error) {
	budgets := make(map[string]Budget, len(s.data))
	for tripName, b := range s.data {
		budgets[tripName] = b
	}
	return budgets, nil
}

func (s *StubBudgetRepo) SaveAll(ctx context.Context, budgets map[string]Budget) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = make(map[string]Budget, len(budgets))
	for tripName, b := range budgets {
		s.data[tripName] = b
	}
	return nil
}

func (s *StubBudgetRepo) FailSavesWith(err error) {
	s.saveErr = err
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = map[string]Budget{}
	s.saveErr = nil
}
