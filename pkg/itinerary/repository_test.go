package itinerary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayplan/wayplan/internal/storage"
)

func newTestRepo(t *testing.T) (*FileRepository, string) {
	dir := t.TempDir()
	return NewFileRepository(storage.NewStore(dir), "itineraries.json"), dir
}

func TestFileRepository_roundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	// given
	it := New("Japan", "Tokyo", "2026-04-01", "2026-04-05", "leisure")
	it.AddActivity(Activity{
		Date: "2026-04-02", StartTime: "09:00", EndTime: "11:00",
		Location: "Tsukiji", Description: "Market", Notes: "bring cash", Completed: true,
	})

	// when
	err := repo.SaveAll(ctx, map[string]Itinerary{"Japan": it})
	require.NoError(t, err)
	loaded, err := repo.LoadAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, it, loaded["Japan"])
}

func TestFileRepository_loadMissingFile(t *testing.T) {
	repo, _ := newTestRepo(t)

	loaded, err := repo.LoadAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileRepository_defaultsOptionalFields(t *testing.T) {
	repo, dir := newTestRepo(t)

	// given a record written without notes or completion flags
	content := `{
    "Japan": {
        "trip_title": "Japan",
        "location": "Tokyo",
        "start_date": "2026-04-01",
        "end_date": "2026-04-05",
        "trip_type": "leisure",
        "activities": [
            {"date": "2026-04-02", "start_time": "09:00", "end_time": "11:00", "location": "Tsukiji", "description": "Market"}
        ]
    }
}`
	err := os.WriteFile(filepath.Join(dir, "itineraries.json"), []byte(content), 0o644)
	require.NoError(t, err)

	// when
	loaded, err := repo.LoadAll(context.Background())

	// then
	require.NoError(t, err)
	activity := loaded["Japan"].Activities[0]
	assert.Equal(t, "", activity.Notes)
	assert.False(t, activity.Completed)
}

func TestFileRepository_loadCorruptFileFails(t *testing.T) {
	repo, dir := newTestRepo(t)

	// given
	err := os.WriteFile(filepath.Join(dir, "itineraries.json"), []byte("{not json"), 0o644)
	require.NoError(t, err)

	// when
	_, err = repo.LoadAll(context.Background())

	// then
	assert.Error(t, err)
}
