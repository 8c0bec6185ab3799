package export

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wayplan/wayplan/pkg/budget"
	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/packing"
	"github.com/xuri/excelize/v2"
)

var ErrNothingToExport = errors.New("no records to export for trip")

// ExcelExporter builds a workbook with one sheet per domain for a single
// trip. Absent records are skipped; at least one record must exist.
type ExcelExporter struct {
}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) ExportTrip(tripName string, b *budget.Budget, it *itinerary.Itinerary, list *packing.PackingList) (*excelize.File, error) {
	if b == nil && it == nil && list == nil {
		return nil, fmt.Errorf("%w %q", ErrNothingToExport, tripName)
	}

	f := excelize.NewFile()

	if b != nil {
		if err := e.createBudgetSheet(f, b); err != nil {
			return nil, fmt.Errorf("failed to create budget sheet: %w", err)
		}
	}
	if it != nil {
		if err := e.createItinerarySheet(f, it); err != nil {
			return nil, fmt.Errorf("failed to create itinerary sheet: %w", err)
		}
	}
	if list != nil {
		if err := e.createPackingSheet(f, list); err != nil {
			return nil, fmt.Errorf("failed to create packing sheet: %w", err)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func (e *ExcelExporter) createBudgetSheet(f *excelize.File, b *budget.Budget) error {
	sheetName := "Budget"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Trip")
	f.SetCellValue(sheetName, "B1", b.TripName)
	f.SetCellValue(sheetName, "A2", "Total Budget")
	f.SetCellValue(sheetName, "B2", b.Total)
	f.SetCellValue(sheetName, "C2", b.Currency)

	headers := []string{"Category", "Allocated"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s4", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	if err := e.styleHeader(f, sheetName, "A4", "B4"); err != nil {
		return err
	}

	categories := make([]string, 0, len(b.Categories))
	for category := range b.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	row := 5
	for _, category := range categories {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.Categories[category])
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Allocated")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.Allocated())
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Remaining")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.Remaining())

	f.SetColWidth(sheetName, "A", "B", 18)
	return nil
}

func (e *ExcelExporter) createItinerarySheet(f *excelize.File, it *itinerary.Itinerary) error {
	sheetName := "Itinerary"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Trip")
	f.SetCellValue(sheetName, "B1", it.TripName)
	f.SetCellValue(sheetName, "A2", "Location")
	f.SetCellValue(sheetName, "B2", it.Location)
	f.SetCellValue(sheetName, "A3", "Dates")
	f.SetCellValue(sheetName, "B3", fmt.Sprintf("%s to %s", it.StartDate, it.EndDate))
	f.SetCellValue(sheetName, "A4", "Type")
	f.SetCellValue(sheetName, "B4", it.TripType)

	headers := []string{"Date", "Start", "End", "Location", "Description", "Notes", "Done"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s6", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	if err := e.styleHeader(f, sheetName, "A6", "G6"); err != nil {
		return err
	}

	for i, a := range it.Activities {
		row := i + 7
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), a.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), a.StartTime)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), a.EndTime)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), a.Location)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), a.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), a.Notes)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), a.Completed)
	}

	f.SetColWidth(sheetName, "A", "G", 16)
	return nil
}

func (e *ExcelExporter) createPackingSheet(f *excelize.File, list *packing.PackingList) error {
	sheetName := "Packing List"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Trip")
	f.SetCellValue(sheetName, "B1", list.TripName)
	f.SetCellValue(sheetName, "A2", "Destination")
	f.SetCellValue(sheetName, "B2", list.DestinationType)
	f.SetCellValue(sheetName, "A3", "Progress")
	f.SetCellValue(sheetName, "B3", fmt.Sprintf("%.1f%%", list.PackingProgress()))

	headers := []string{"Category", "Item", "Quantity", "Packed"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s5", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	if err := e.styleHeader(f, sheetName, "A5", "D5"); err != nil {
		return err
	}

	row := 6
	for _, group := range list.ItemsByCategory() {
		for _, item := range group.Items {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), group.Category)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Quantity)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Packed)
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "D", 16)
	return nil
}

func (e *ExcelExporter) styleHeader(f *excelize.File, sheetName, from, to string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, from, to, headerStyle)
}
