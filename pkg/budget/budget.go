package budget

import (
	"errors"
	"fmt"
)

// DefaultCurrency is used when a budget is created or loaded without an
// explicit currency. It is a display label only; no conversion happens.
const DefaultCurrency = "RM"

var ErrCategoryNotFound = errors.New("category not found")

// Budget is the spending plan for a single trip: a total ceiling and named
// category allocations. Allocations may exceed the total; an over-allocated
// budget is representable, not an error.
type Budget struct {
	TripName   string
	Total      float64
	Currency   string
	Categories map[string]float64
}

func New(tripName string, total float64, currency string) Budget {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Budget{
		TripName:   tripName,
		Total:      total,
		Currency:   currency,
		Categories: map[string]float64{},
	}
}

// Allocated is the sum of all category allocations.
func (b Budget) Allocated() float64 {
	var sum float64
	for _, amount := range b.Categories {
		sum += amount
	}
	return sum
}

// Remaining is the unallocated part of the total. Negative when the
// categories allocate more than the ceiling.
func (b Budget) Remaining() float64 {
	return b.Total - b.Allocated()
}

// AddCategory sets the allocation for a category, creating it if needed.
func (b *Budget) AddCategory(name string, amount float64) {
	if b.Categories == nil {
		b.Categories = map[string]float64{}
	}
	b.Categories[name] = amount
}

// UpdateCategory changes an existing category's allocation. Unlike
// AddCategory it does not create missing categories.
func (b *Budget) UpdateCategory(name string, amount float64) error {
	if _, ok := b.Categories[name]; !ok {
		return fmt.Errorf("category %q on trip %q: %w", name, b.TripName, ErrCategoryNotFound)
	}
	b.Categories[name] = amount
	return nil
}

// RemoveCategory deletes a category and its allocation.
func (b *Budget) RemoveCategory(name string) error {
	if _, ok := b.Categories[name]; !ok {
		return fmt.Errorf("category %q on trip %q: %w", name, b.TripName, ErrCategoryNotFound)
	}
	delete(b.Categories, name)
	return nil
}
