package budget

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayplan/wayplan/internal/storage"
)

func newTestRepo(t *testing.T) (*FileBudgetRepo, string) {
	dir := t.TempDir()
	return NewFileBudgetRepo(storage.NewStore(dir), "budgets.json"), dir
}

func TestFileBudgetRepo_roundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	// given
	paris := New("Paris", 1500, "")
	paris.AddCategory("Hotel", 600)
	paris.AddCategory("Food", 250.5)
	tokyo := New("Tokyo", 4000, "JPY")

	// when
	err := repo.SaveAll(ctx, map[string]Budget{"Paris": paris, "Tokyo": tokyo})
	require.NoError(t, err)
	loaded, err := repo.LoadAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, paris, loaded["Paris"])
	assert.Equal(t, tokyo, loaded["Tokyo"])
	assert.Equal(t, "RM", loaded["Paris"].Currency)
	assert.Equal(t, 649.5, loaded["Paris"].Remaining())
}

func TestFileBudgetRepo_loadMissingFile(t *testing.T) {
	repo, _ := newTestRepo(t)

	// when
	loaded, err := repo.LoadAll(context.Background())

	// then
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileBudgetRepo_loadCorruptFile(t *testing.T) {
	repo, dir := newTestRepo(t)

	// given
	err := os.WriteFile(filepath.Join(dir, "budgets.json"), []byte("{not json"), 0o644)
	require.NoError(t, err)

	// when
	loaded, err := repo.LoadAll(context.Background())

	// then
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileBudgetRepo_saveValidation(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	t.Run("rejects an empty trip name", func(t *testing.T) {
		err := repo.SaveAll(ctx, map[string]Budget{"": New("", 100, "")})

		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("rejects a non-finite total and names the trip", func(t *testing.T) {
		b := New("Paris", math.NaN(), "")

		err := repo.SaveAll(ctx, map[string]Budget{"Paris": b})

		assert.ErrorIs(t, err, ErrInvalidRecord)
		assert.Contains(t, err.Error(), "Paris")
		assert.Contains(t, err.Error(), "total_budget")
	})

	t.Run("rejects a non-finite category amount", func(t *testing.T) {
		b := New("Paris", 100, "")
		b.AddCategory("Hotel", math.Inf(1))

		err := repo.SaveAll(ctx, map[string]Budget{"Paris": b})

		assert.ErrorIs(t, err, ErrInvalidRecord)
		assert.Contains(t, err.Error(), "Hotel")
	})
}

func TestFileBudgetRepo_saveLeavesNoTempFiles(t *testing.T) {
	repo, dir := newTestRepo(t)

	// when
	err := repo.SaveAll(context.Background(), map[string]Budget{"Paris": New("Paris", 100, "")})
	require.NoError(t, err)

	// then
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "budgets.json", entries[0].Name())
}
