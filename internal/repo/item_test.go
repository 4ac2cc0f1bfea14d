package repo_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/repo"
)

func TestItemRepo_SaveAll_RoundTrip(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()

	it, err := repo.NewItineraryRepo(tx).Create(ctx, itineraryFixture())
	require.NoError(t, err)

	items := []domain.ItineraryItem{
		{Name: "Hotel A", Price: 120, Kind: domain.ItemKindHotel},
		{Name: "Belém Tower", Price: 0, Kind: domain.ItemKindAttraction},
	}
	flights := []domain.SavedFlight{
		{Data: json.RawMessage(`{"airline":"TAP","price":450}`), Price: 450},
	}

	r := repo.NewItemRepo(tx)
	savedItems, savedFlights, err := r.SaveAll(ctx, it.ID, items, flights)

	require.NoError(t, err)
	require.Len(t, savedItems, 2)
	require.Len(t, savedFlights, 1)
	assert.NotEqual(t, [16]byte{}, savedItems[0].ID)
	assert.Equal(t, domain.ItemKindHotel, savedItems[0].Kind)
	assert.InDelta(t, 120, savedItems[0].Price, 0.001)

	gotItems, err := r.ListItems(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, gotItems, 2)
	assert.Equal(t, "Hotel A", gotItems[0].Name)

	gotFlights, err := r.ListFlights(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, gotFlights, 1)
	assert.JSONEq(t, `{"airline":"TAP","price":450}`, string(gotFlights[0].Data))
}

func TestItemRepo_SaveAll_UnknownItinerary(t *testing.T) {
	r := repo.NewItemRepo(newTestTx(t))

	_, _, err := r.SaveAll(context.Background(), 987654321,
		[]domain.ItineraryItem{{Name: "Hotel A", Price: 1, Kind: domain.ItemKindHotel}}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepo_ListItems_Empty(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()

	it, err := repo.NewItineraryRepo(tx).Create(ctx, itineraryFixture())
	require.NoError(t, err)

	got, err := repo.NewItemRepo(tx).ListItems(ctx, it.ID)

	require.NoError(t, err)
	assert.Empty(t, got)
}
