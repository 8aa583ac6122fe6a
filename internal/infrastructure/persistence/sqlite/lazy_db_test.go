package sqlite_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotOpenedByDefault(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	assert.False(t, lazy.Opened())
	assert.Equal(t, dbPath, lazy.Path())
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	var wg sync.WaitGroup
	results := make(chan any, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			results <- db
		}()
	}
	wg.Wait()
	close(results)

	first := <-results
	for db := range results {
		assert.Same(t, first, db)
	}
	assert.True(t, lazy.Opened())
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.False(t, lazy.Opened())
}

func TestLazyNavigationLogRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyNavigationLogRepository(lazy)
	assert.False(t, lazy.Opened())

	require.NoError(t, repo.Save(ctx, &entity.NavigationRecord{
		URL:       "https://home.example",
		Decision:  entity.NavigationAllow,
		CreatedAt: time.Now(),
	}))
	assert.True(t, lazy.Opened())

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
}

func TestLazyDB_FailsAfterClose(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	_, err := lazy.DB(testCtx())
	require.NoError(t, err)

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.Opened())

	_, err = lazy.DB(testCtx())
	assert.Error(t, err)
}
