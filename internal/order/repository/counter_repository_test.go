package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darzi/internal/domain"
	"darzi/internal/testutil"
)

func TestCounterRepository_SequentialAllocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCounterRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	for want := int64(1); want <= 5; want++ {
		n, rolled, err := repo.AllocateNextID(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, want, n)
		assert.False(t, rolled)
	}
}

func TestCounterRepository_MonthRollover(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCounterRepository(db)
	ctx := context.Background()

	february := time.Date(2025, 2, 27, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, _, err := repo.AllocateNextID(ctx, february)
		require.NoError(t, err)
	}

	march := time.Date(2025, 3, 1, 0, 5, 0, 0, time.UTC)

	n, rolled, err := repo.AllocateNextID(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "counter restarts at 1 in the new month")
	assert.True(t, rolled, "first allocation of the month reports the reset")

	n, rolled, err = repo.AllocateNextID(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.False(t, rolled, "the reset is reported exactly once")
}

func TestCounterRepository_ConcurrentAllocationsDistinct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCounterRepository(db)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	const workers = 8
	results := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, _, err := repo.AllocateNextID(context.Background(), now)
			if err != nil {
				t.Errorf("allocating: %v", err)
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := map[int64]bool{}
	for n := range results {
		assert.False(t, seen[n], "duplicate allocation %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
}

func TestCounterRepository_StaleRowResets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	// simulate a counter left over from a previous month
	_, err := db.Exec(
		"INSERT INTO order_counters (name, last_month, `count`, last_reset_date) VALUES (?, ?, ?, ?)",
		domain.CivilCounterName, "2024-12", 42, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	repo := NewMySQLCounterRepository(db)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	n, rolled, err := repo.AllocateNextID(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, rolled)

	var lastMonth string
	require.NoError(t, db.QueryRow(
		"SELECT last_month FROM order_counters WHERE name = ?", domain.CivilCounterName,
	).Scan(&lastMonth))
	assert.Equal(t, "2025-03", lastMonth)
}
