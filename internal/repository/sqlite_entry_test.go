package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntryRepo(t *testing.T) *SQLiteEntryRepo {
	t.Helper()
	return NewSQLiteEntryRepo(testutil.NewTestDB(t))
}

func TestEntryRepo_CreateAndGetByID(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("Alice", testutil.WithBreak(30))
	require.NoError(t, repo.Create(ctx, e))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, fetched.ID)
	assert.Equal(t, "Alice", fetched.Name)
	assert.Equal(t, domain.CategoryStaff, fetched.Category)
	assert.Equal(t, "09:00", fetched.ClockIn.String())
	require.NotNil(t, fetched.ClockOut)
	assert.Equal(t, "17:00", fetched.ClockOut.String())
	assert.Equal(t, 30, fetched.BreakMinutes)
	assert.InDelta(t, 7.5, fetched.TotalHours, 1e-9)
	assert.False(t, fetched.Overtime)
}

func TestEntryRepo_GetByID_NotFound(t *testing.T) {
	repo := newEntryRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_ActiveEntryRoundTrip(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("Bob", testutil.StillActive())
	require.NoError(t, repo.Create(ctx, e))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.ClockOut)
	assert.True(t, fetched.Active())
	assert.Zero(t, fetched.TotalHours)
}

func TestEntryRepo_ListInsertionOrder(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	first := testutil.NewTestEntry("Alice")
	second := testutil.NewTestEntry("Bob")
	third := testutil.NewTestEntry("Cara")
	for _, e := range []*domain.ShiftEntry{first, second, third} {
		require.NoError(t, repo.Create(ctx, e))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestEntryRepo_Update(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("Alice", testutil.StillActive())
	require.NoError(t, repo.Create(ctx, e))

	out := testutil.MustClock("18:30")
	require.NoError(t, e.Close(out, 45))
	e.TotalHours = 8.75
	require.NoError(t, repo.Update(ctx, e))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.ClockOut)
	assert.Equal(t, "18:30", fetched.ClockOut.String())
	assert.Equal(t, 45, fetched.BreakMinutes)
	assert.InDelta(t, 8.75, fetched.TotalHours, 1e-9)
}

func TestEntryRepo_Update_NotFound(t *testing.T) {
	repo := newEntryRepo(t)

	e := testutil.NewTestEntry("Ghost")
	err := repo.Update(context.Background(), e)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_Delete(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEntry("Alice")
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	_, err := repo.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, e.ID), ErrNotFound)
}

func TestEntryRepo_MaxID(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	maxID, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Zero(t, maxID)

	e := testutil.NewTestEntry("Alice")
	require.NoError(t, repo.Create(ctx, e))

	maxID, err = repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, e.ID, maxID)
}

func TestEntryRepo_DeleteAll(t *testing.T) {
	repo := newEntryRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("Alice")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("Bob")))
	require.NoError(t, repo.DeleteAll(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
