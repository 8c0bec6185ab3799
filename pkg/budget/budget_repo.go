package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/storage"
)

var ErrInvalidRecord = errors.New("invalid budget record")

type BudgetRepo interface {
	// LoadAll reads every stored budget, keyed by trip name.
	LoadAll(ctx context.Context) (map[string]Budget, error)
	// SaveAll validates and writes the whole collection, replacing the file.
	SaveAll(ctx context.Context, budgets map[string]Budget) error
}

// budgetDoc is the persisted shape of a single budget. The trip name is the
// key of the enclosing JSON object, not part of the record itself.
type budgetDoc struct {
	Total      float64            `json:"total_budget"`
	Categories map[string]float64 `json:"categories"`
	Currency   string             `json:"currency,omitempty"`
}

type FileBudgetRepo struct {
	store    *storage.Store
	filename string
}

func NewFileBudgetRepo(store *storage.Store, filename string) *FileBudgetRepo {
	return &FileBudgetRepo{store: store, filename: filename}
}

func (r *FileBudgetRepo) LoadAll(ctx context.Context) (map[string]Budget, error) {
	docs, err := r.store.Load(r.filename)
	if err != nil {
		// A corrupt budgets file is treated like a missing one. The next
		// save rewrites it wholesale anyway.
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			log.Warnf("budgets file is not valid JSON, starting with an empty collection: %v", err)
			return map[string]Budget{}, nil
		}
		return nil, err
	}

	budgets := make(map[string]Budget, len(docs))
	for tripName, raw := range docs {
		var doc budgetDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Warnf("skipping invalid budget entry for trip %q: %v", tripName, err)
			continue
		}
		budgets[tripName] = budgetFromDoc(tripName, doc)
	}
	return budgets, nil
}

func (r *FileBudgetRepo) SaveAll(ctx context.Context, budgets map[string]Budget) error {
	docs := make(map[string]json.RawMessage, len(budgets))
	for tripName, b := range budgets {
		if err := validate(tripName, b); err != nil {
			log.Error(err)
			return err
		}
		raw, err := json.Marshal(toDoc(b))
		if err != nil {
			err := fmt.Errorf("could not serialize budget for trip %q: %w", tripName, err)
			log.Error(err)
			return err
		}
		docs[tripName] = raw
	}
	return r.store.Save(r.filename, docs)
}

// validate rejects records that would produce a malformed or unreadable
// file, naming the trip and the violated constraint.
func validate(tripName string, b Budget) error {
	if tripName == "" {
		return fmt.Errorf("%w: trip name must not be empty", ErrInvalidRecord)
	}
	if math.IsNaN(b.Total) || math.IsInf(b.Total, 0) {
		return fmt.Errorf("%w: total_budget for trip %q must be a finite number", ErrInvalidRecord, tripName)
	}
	for category, amount := range b.Categories {
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return fmt.Errorf("%w: category %q for trip %q must be a finite number", ErrInvalidRecord, category, tripName)
		}
	}
	return nil
}

func toDoc(b Budget) budgetDoc {
	categories := b.Categories
	if categories == nil {
		categories = map[string]float64{}
	}
	currency := b.Currency
	if currency == DefaultCurrency {
		currency = ""
	}
	return budgetDoc{
		Total:      b.Total,
		Categories: categories,
		Currency:   currency,
	}
}

func budgetFromDoc(tripName string, doc budgetDoc) Budget {
	b := New(tripName, doc.Total, doc.Currency)
	for category, amount := range doc.Categories {
		b.Categories[category] = amount
	}
	return b
}
