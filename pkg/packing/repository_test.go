package packing

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
	return NewFileRepository(storage.NewStore(dir), "packing_lists.json"), dir
}

func TestFileRepository_roundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	// given
	list := Generate("beach", 10, "sunny", 2, "Honeymoon")
	list.TogglePacked("Toothbrush", "Toiletries")

	// when
	err := repo.SaveAll(ctx, map[string]PackingList{"Honeymoon": list})
	require.NoError(t, err)
	loaded, err := repo.LoadAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, list, loaded["Honeymoon"])
	assert.Equal(t, list.PackingProgress(), loaded["Honeymoon"].PackingProgress())
}

func TestFileRepository_loadMissingFile(t *testing.T) {
	repo, _ := newTestRepo(t)

	loaded, err := repo.LoadAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileRepository_defaultsQuantityAndPacked(t *testing.T) {
	repo, dir := newTestRepo(t)

	// given an item written without quantity or is_packed
	content := `{
    "Honeymoon": {
        "destination_type": "beach",
        "duration": 5,
        "weather": "sunny",
        "travelers": 2,
        "items": [
            {"name": "Towel", "category": "Toiletries"}
        ]
    }
}`
	err := os.WriteFile(filepath.Join(dir, "packing_lists.json"), []byte(content), 0o644)
	require.NoError(t, err)

	// when
	loaded, err := repo.LoadAll(context.Background())

	// then
	require.NoError(t, err)
	item := loaded["Honeymoon"].Items[0]
	assert.Equal(t, 1, item.Quantity)
	assert.False(t, item.Packed)
}
