package export

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/pkg/budget"
)

// CsvOverviewRenderer turns the budget collection into a spreadsheet-ready
// overview with the derived allocation figures per trip.
type CsvOverviewRenderer struct {
}

func NewCsvOverviewRenderer() *CsvOverviewRenderer {
	return &CsvOverviewRenderer{}
}

func (r *CsvOverviewRenderer) RenderBudgets(budgets []budget.Budget) (string, error) {
	sorted := append([]budget.Budget(nil), budgets...)
	sort.Slice(sorted, func(x, y int) bool {
		return sorted[x].TripName < sorted[y].TripName
	})

	data := make([][]string, 0, len(sorted)+1)
	data = append(data, []string{"Trip", "Currency", "Total Budget", "Allocated", "Remaining"})
	for _, b := range sorted {
		data = append(data, []string{
			b.TripName,
			b.Currency,
			amountToString(b.Total),
			amountToString(b.Allocated()),
			amountToString(b.Remaining()),
		})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return buf.String(), nil
}

func amountToString(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
