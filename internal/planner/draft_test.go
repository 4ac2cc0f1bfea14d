package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
)

func TestDraftStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	d := planner.NewDraftStore(localstore.NewMemory(), discardLogger())

	_, ok := d.Get(ctx)
	assert.False(t, ok)

	want := planner.CurrentItinerary{
		ItineraryID:   ptr(int64(4)),
		Title:         "Lisbon",
		Destination:   "LIS",
		DepartureDate: "2025-06-01",
		ReturnDate:    "2025-06-08",
	}
	require.NoError(t, d.Set(ctx, want))

	got, ok := d.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, d.Clear(ctx))
	_, ok = d.Get(ctx)
	assert.False(t, ok)
}

func TestDraftStore_CorruptIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	require.NoError(t, store.Set(ctx, localstore.KeyCurrentItinerary, []byte(`[1,2`)))
	require.NoError(t, store.Set(ctx, localstore.KeyLastSavedItinerary, []byte(`"x"`)))
	d := planner.NewDraftStore(store, discardLogger())

	_, ok := d.Get(ctx)
	assert.False(t, ok)
	_, ok = d.LastSaved(ctx)
	assert.False(t, ok)
}

func TestDraftStore_LastSaved(t *testing.T) {
	ctx := context.Background()
	d := planner.NewDraftStore(localstore.NewMemory(), discardLogger())

	require.NoError(t, d.SetLastSaved(ctx, planner.LastSaved{"itinerary_id": 9, "items_saved": 2}))

	got, ok := d.LastSaved(ctx)
	require.True(t, ok)
	assert.EqualValues(t, 9, got["itinerary_id"])
	assert.EqualValues(t, 2, got["items_saved"])
}

func TestCurrentItinerary_HasFlightDates(t *testing.T) {
	assert.True(t, planner.CurrentItinerary{DepartureDate: "2025-06-01", ReturnDate: "2025-06-08"}.HasFlightDates())
	assert.False(t, planner.CurrentItinerary{DepartureDate: "2025-06-01"}.HasFlightDates())
	assert.False(t, planner.CurrentItinerary{}.HasFlightDates())
}
