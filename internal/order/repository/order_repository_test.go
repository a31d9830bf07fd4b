package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darzi/internal/domain"
	apperrors "darzi/internal/errors"
	"darzi/internal/testutil"
)

func newTestOrder(orderID string) *domain.Order {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Order{
		OrderID:       orderID,
		Name:          "Asha",
		Phone:         "555",
		Email:         "asha@example.com",
		NoOfSets:      2,
		ShirtAmount:   500,
		PantAmount:    400,
		TotalAmount:   1800,
		PaymentMethod: "Cash",
		Shirt:         domain.Measurements{"chest": "40", "sleeve": "24"},
		Pant:          domain.Measurements{"waist": "32"},
		Status:        domain.StatusPending,
		Date:          now.Format(domain.DateLayout),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	order := newTestOrder("ORD001")
	id, err := repo.Insert(ctx, order)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ORD001", found.OrderID)
	assert.Equal(t, "Asha", found.Name)
	assert.Equal(t, 2, found.NoOfSets)
	assert.Equal(t, 1800.0, found.TotalAmount)
	assert.Equal(t, "40", found.Shirt["chest"])
	assert.Equal(t, "32", found.Pant["waist"])

	byOrderID, err := repo.FindByOrderID(ctx, "ORD001")
	require.NoError(t, err)
	assert.Equal(t, found.ID, byOrderID.ID)
}

func TestOrderRepository_FindMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	_, err := repo.FindByID(context.Background(), 99999)
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_ListByDateAndMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	first := newTestOrder("ORD001")
	first.Date = "2025-03-05"
	second := newTestOrder("ORD002")
	second.Date = "2025-03-20"
	third := newTestOrder("ORD003")
	third.Date = "2025-04-01"

	for _, o := range []*domain.Order{first, second, third} {
		_, err := repo.Insert(ctx, o)
		require.NoError(t, err)
	}

	byDate, err := repo.ListByDate(ctx, "2025-03-05")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "ORD001", byDate[0].OrderID)

	byMonth, err := repo.ListByMonth(ctx, "2025-03")
	require.NoError(t, err)
	assert.Len(t, byMonth, 2)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newTestOrder("ORD001"))
	require.NoError(t, err)

	// forward then backward, the machine allows both
	require.NoError(t, repo.UpdateStatus(ctx, id, domain.StatusDelivered))
	require.NoError(t, repo.UpdateStatus(ctx, id, domain.StatusPending))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, found.Status)

	err = repo.UpdateStatus(ctx, 99999, domain.StatusReady)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newTestOrder("ORD001"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.Delete(ctx, id)
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
