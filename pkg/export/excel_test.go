package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayplan/wayplan/pkg/budget"
	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/packing"
)

func TestExcelExporter_ExportTrip(t *testing.T) {
	exporter := NewExcelExporter()

	t.Run("should create one sheet per available record", func(t *testing.T) {
		// given
		b := budget.New("Japan", 4000, "")
		b.AddCategory("Hotel", 1500)
		it := itinerary.New("Japan", "Tokyo", "2026-04-01", "2026-04-05", "leisure")
		it.AddActivity(itinerary.Activity{Date: "2026-04-02", StartTime: "09:00", EndTime: "11:00", Description: "Market"})
		list := packing.Generate("city", 4, "mild", 2, "Japan")

		// when
		f, err := exporter.ExportTrip("Japan", &b, &it, &list)

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Budget", "Itinerary", "Packing List"}, f.GetSheetList())

		tripCell, err := f.GetCellValue("Budget", "B1")
		require.NoError(t, err)
		assert.Equal(t, "Japan", tripCell)

		activityCell, err := f.GetCellValue("Itinerary", "E7")
		require.NoError(t, err)
		assert.Equal(t, "Market", activityCell)
	})

	t.Run("should skip absent records", func(t *testing.T) {
		// given
		b := budget.New("Japan", 4000, "")

		// when
		f, err := exporter.ExportTrip("Japan", &b, nil, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Budget"}, f.GetSheetList())
	})

	t.Run("should fail when no record exists", func(t *testing.T) {
		// when
		_, err := exporter.ExportTrip("Japan", nil, nil, nil)

		// then
		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.Contains(t, err.Error(), "Japan")
	})
}
