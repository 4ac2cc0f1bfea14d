package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/repo"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/service"
)

// ---- mock repos ------------------------------------------------------------

// mockItineraryRepo is a hand-written test double for repo.ItineraryRepo.
// Each field is a function the test sets to control behaviour.
type mockItineraryRepo struct {
	create    func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	getByID   func(ctx context.Context, id int64) (domain.Itinerary, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error)
	update    func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	delete    func(ctx context.Context, id int64) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id int64) (domain.Itinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.update(ctx, it)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockItineraryRepo must satisfy repo.ItineraryRepo.
var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

// mockItemRepo is a hand-written test double for repo.ItemRepo.
type mockItemRepo struct {
	saveAll     func(ctx context.Context, id int64, items []domain.ItineraryItem, flights []domain.SavedFlight) ([]domain.ItineraryItem, []domain.SavedFlight, error)
	listItems   func(ctx context.Context, id int64) ([]domain.ItineraryItem, error)
	listFlights func(ctx context.Context, id int64) ([]domain.SavedFlight, error)
}

func (m *mockItemRepo) SaveAll(ctx context.Context, id int64, items []domain.ItineraryItem, flights []domain.SavedFlight) ([]domain.ItineraryItem, []domain.SavedFlight, error) {
	return m.saveAll(ctx, id, items, flights)
}
func (m *mockItemRepo) ListItems(ctx context.Context, id int64) ([]domain.ItineraryItem, error) {
	return m.listItems(ctx, id)
}
func (m *mockItemRepo) ListFlights(ctx context.Context, id int64) ([]domain.SavedFlight, error) {
	return m.listFlights(ctx, id)
}

var _ repo.ItemRepo = (*mockItemRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// echoCreate returns a repo whose Create echoes the input with id 7.
func echoCreate() *mockItineraryRepo {
	return &mockItineraryRepo{
		create: func(_ context.Context, it domain.Itinerary) (domain.Itinerary, error) {
			it.ID = 7
			return it, nil
		},
	}
}

// existing returns a repo whose GetByID finds every itinerary.
func existing() *mockItineraryRepo {
	return &mockItineraryRepo{
		getByID: func(_ context.Context, id int64) (domain.Itinerary, error) {
			return domain.Itinerary{ID: id, Title: "Lisbon"}, nil
		},
	}
}

// echoSaveAll returns an item repo whose SaveAll echoes its input.
func echoSaveAll(gotItems *[]domain.ItineraryItem, gotFlights *[]domain.SavedFlight) *mockItemRepo {
	return &mockItemRepo{
		saveAll: func(_ context.Context, id int64, items []domain.ItineraryItem, flights []domain.SavedFlight) ([]domain.ItineraryItem, []domain.SavedFlight, error) {
			if gotItems != nil {
				*gotItems = items
			}
			if gotFlights != nil {
				*gotFlights = flights
			}
			return items, flights, nil
		},
	}
}

// ---- Create ----------------------------------------------------------------

func TestItineraryService_Create_Empty(t *testing.T) {
	svc := service.NewItineraryService(echoCreate(), nil)

	got, err := svc.Create(context.Background(), domain.Itinerary{})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Empty(t, got.Title)
}

func TestItineraryService_Create_TrimsTitle(t *testing.T) {
	svc := service.NewItineraryService(echoCreate(), nil)

	got, err := svc.Create(context.Background(), domain.Itinerary{Title: "  Summer  "})

	require.NoError(t, err)
	assert.Equal(t, "Summer", got.Title)
}

func TestItineraryService_Create_ReturnBeforeDeparture(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{}, nil)

	_, err := svc.Create(context.Background(), domain.Itinerary{
		DepartureDate: date(2025, 6, 10),
		ReturnDate:    date(2025, 6, 1),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- CreateFromFlightDates -------------------------------------------------

func TestItineraryService_CreateFromFlightDates_DefaultTitle(t *testing.T) {
	tests := []struct {
		name      string
		in        domain.FlightDates
		wantTitle string
	}{
		{
			name:      "destination known",
			in:        domain.FlightDates{DepartureDate: date(2025, 6, 1), ReturnDate: date(2025, 6, 8), Destination: "Lisbon"},
			wantTitle: "Trip to Lisbon",
		},
		{
			name:      "no destination",
			in:        domain.FlightDates{DepartureDate: date(2025, 6, 1), ReturnDate: date(2025, 6, 8)},
			wantTitle: "Itinerary",
		},
		{
			name:      "explicit title wins",
			in:        domain.FlightDates{DepartureDate: date(2025, 6, 1), ReturnDate: date(2025, 6, 1), Title: "Day trip", Destination: "Porto"},
			wantTitle: "Day trip",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewItineraryService(echoCreate(), nil)

			got, err := svc.CreateFromFlightDates(context.Background(), tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, got.Title)
			assert.Equal(t, tc.in.DepartureDate, got.DepartureDate)
		})
	}
}

func TestItineraryService_CreateFromFlightDates_DatesRequired(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{}, nil)

	_, err := svc.CreateFromFlightDates(context.Background(), domain.FlightDates{DepartureDate: date(2025, 6, 1)})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_CreateFromFlightDates_ReturnBeforeDeparture(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{}, nil)

	_, err := svc.CreateFromFlightDates(context.Background(), domain.FlightDates{
		DepartureDate: date(2025, 6, 8),
		ReturnDate:    date(2025, 6, 1),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Read / Update / Delete ------------------------------------------------

func TestItineraryService_GetByID_NotFound(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{
		getByID: func(_ context.Context, _ int64) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}, nil)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryService_ListPaged_NilBecomesEmpty(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.Itinerary, int64, error) {
			return nil, 0, nil
		},
	}, nil)

	got, total, err := svc.ListPaged(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Zero(t, total)
}

func TestItineraryService_Update_TitleRequired(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{}, nil)

	_, err := svc.Update(context.Background(), domain.Itinerary{ID: 1, Title: "  "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Update_OK(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{
		update: func(_ context.Context, it domain.Itinerary) (domain.Itinerary, error) {
			return it, nil
		},
	}, nil)

	got, err := svc.Update(context.Background(), domain.Itinerary{ID: 1, Title: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestItineraryService_Delete_NotFound(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{
		delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	}, nil)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- SaveItems -------------------------------------------------------------

func TestItineraryService_SaveItems_Summary(t *testing.T) {
	var gotFlights []domain.SavedFlight
	svc := service.NewItineraryService(existing(), echoSaveAll(nil, &gotFlights))

	items := []domain.ItineraryItem{
		{Name: "Hotel A", Price: 120, Kind: domain.ItemKindHotel},
		{Name: "Belém Tower", Price: 0, Kind: domain.ItemKindAttraction},
	}
	flights := []json.RawMessage{
		json.RawMessage(`{"airline":"TP","price":"$1,250.50"}`),
		json.RawMessage(`{"airline":"FR"}`),
	}

	sum, err := svc.SaveItems(context.Background(), 3, items, flights)

	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.ItineraryID)
	assert.Equal(t, 2, sum.ItemsSaved)
	assert.Equal(t, 2, sum.FlightsSaved)
	assert.InDelta(t, 1370.50, sum.TotalCost, 0.001)
	require.Len(t, gotFlights, 2)
	assert.JSONEq(t, `{"airline":"TP","price":"$1,250.50"}`, string(gotFlights[0].Data))
	assert.Zero(t, gotFlights[1].Price)
}

func TestItineraryService_SaveItems_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.ItineraryItem
		flights []json.RawMessage
	}{
		{name: "nothing to save"},
		{name: "blank name", items: []domain.ItineraryItem{{Name: " ", Kind: domain.ItemKindHotel}}},
		{name: "unknown kind", items: []domain.ItineraryItem{{Name: "X", Kind: "flight"}}},
		{name: "negative price", items: []domain.ItineraryItem{{Name: "X", Kind: domain.ItemKindHotel, Price: -1}}},
		{name: "flight not an object", flights: []json.RawMessage{json.RawMessage(`[1,2]`)}},
		{name: "flight null", flights: []json.RawMessage{json.RawMessage(`null`)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewItineraryService(&mockItineraryRepo{}, &mockItemRepo{})

			_, err := svc.SaveItems(context.Background(), 1, tc.items, tc.flights)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestItineraryService_SaveItems_ItineraryNotFound(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{
		getByID: func(_ context.Context, _ int64) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}, &mockItemRepo{})

	_, err := svc.SaveItems(context.Background(), 1, []domain.ItineraryItem{{Name: "X", Kind: domain.ItemKindHotel}}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryService_SaveItems_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := service.NewItineraryService(existing(), &mockItemRepo{
		saveAll: func(_ context.Context, _ int64, _ []domain.ItineraryItem, _ []domain.SavedFlight) ([]domain.ItineraryItem, []domain.SavedFlight, error) {
			return nil, nil, boom
		},
	})

	_, err := svc.SaveItems(context.Background(), 1, []domain.ItineraryItem{{Name: "X", Kind: domain.ItemKindHotel}}, nil)

	assert.ErrorIs(t, err, boom)
}

// ---- Items / Budget --------------------------------------------------------

func TestItineraryService_Budget(t *testing.T) {
	svc := service.NewItineraryService(existing(), &mockItemRepo{
		listItems: func(_ context.Context, id int64) ([]domain.ItineraryItem, error) {
			return []domain.ItineraryItem{
				{ID: uuid.New(), ItineraryID: id, Name: "Hotel A", Price: 120, Kind: domain.ItemKindHotel},
				{ID: uuid.New(), ItineraryID: id, Name: "Museum", Price: 15.5, Kind: domain.ItemKindAttraction},
			}, nil
		},
		listFlights: func(_ context.Context, id int64) ([]domain.SavedFlight, error) {
			return []domain.SavedFlight{{ID: uuid.New(), ItineraryID: id, Price: 300}}, nil
		},
	})

	b, err := svc.Budget(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), b.ItineraryID)
	assert.InDelta(t, 135.5, b.Items, 0.001)
	assert.InDelta(t, 300, b.Flights, 0.001)
	assert.InDelta(t, 435.5, b.Total, 0.001)
}

func TestItineraryService_Items_EmptySlices(t *testing.T) {
	svc := service.NewItineraryService(existing(), &mockItemRepo{
		listItems:   func(_ context.Context, _ int64) ([]domain.ItineraryItem, error) { return nil, nil },
		listFlights: func(_ context.Context, _ int64) ([]domain.SavedFlight, error) { return nil, nil },
	})

	got, err := svc.Items(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Title)
	assert.NotNil(t, got.Items)
	assert.NotNil(t, got.Flights)
}

func TestItineraryService_Budget_NotFound(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{
		getByID: func(_ context.Context, _ int64) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}, &mockItemRepo{})

	_, err := svc.Budget(context.Background(), 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
