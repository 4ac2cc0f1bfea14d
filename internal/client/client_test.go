package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/client"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

func newClient(t *testing.T, h http.Handler) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreateItinerary_SendsNoBody(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/itineraries", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		writeJSON(w, http.StatusCreated, map[string]any{"itinerary_id": 12, "title": ""})
	}))

	it, err := c.CreateItinerary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), it.ID)
}

func TestCreateItineraryFromFlightDates(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/itineraries/from-flight-dates", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-06-01", body["departure_date"])
		assert.Equal(t, "2025-06-08", body["return_date"])
		assert.NotContains(t, body, "origin")
		writeJSON(w, http.StatusCreated, map[string]any{
			"itinerary_id": 3, "title": "Trip to Lisbon", "departure_date": "2025-06-01", "return_date": "2025-06-08",
		})
	}))

	it, err := c.CreateItineraryFromFlightDates(context.Background(), planner.FlightDatesRequest{
		DepartureDate: "2025-06-01", ReturnDate: "2025-06-08",
	})

	require.NoError(t, err)
	assert.Equal(t, planner.Itinerary{ID: 3, Title: "Trip to Lisbon", DepartureDate: "2025-06-01", ReturnDate: "2025-06-08"}, it)
}

func TestSaveItineraryItems(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/itineraries/7/save", r.URL.Path)
		var body struct {
			Flights []map[string]any `json:"flights"`
			Items   []map[string]any `json:"items"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Flights, 1)
		assert.Equal(t, []map[string]any{{"name": "Hotel A", "price": 120.0, "type": "hotel"}}, body.Items)
		writeJSON(w, http.StatusOK, map[string]any{"itinerary_id": 7, "items_saved": 1, "flights_saved": 1, "total_cost": 430})
	}))

	resp, err := c.SaveItineraryItems(context.Background(), 7, planner.SavePayload{
		Flights: []record.Record{{"airline": "TP"}},
		Items:   []planner.SaveItem{{Name: "Hotel A", Price: 120, Type: planner.ItemHotel}},
	})

	require.NoError(t, err)
	assert.EqualValues(t, 430, resp["total_cost"])
}

func TestAPIError_Envelopes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
	}{
		{"structured", 404, `{"error":{"code":"not_found","message":"itinerary not found"}}`, "itinerary not found", "not_found"},
		{"flat error", 400, `{"error":"Missing title"}`, "Missing title", ""},
		{"msg field", 500, `{"msg":"Database error"}`, "Database error", ""},
		{"not json", 502, `<html>bad gateway</html>`, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))

			_, err := c.CreateItinerary(context.Background())

			var apiErr *client.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMsg, apiErr.ServiceMessage())
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}

func TestSearchAttractions_MissingListIsNil(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Lisbon", r.URL.Query().Get("location"))
		writeJSON(w, http.StatusOK, map[string]any{"results": []any{}})
	}))

	resp, err := c.SearchAttractions(context.Background(), "Lisbon")

	require.NoError(t, err)
	assert.Nil(t, resp.Attractions)
}

func TestSearchAttractions_UnexpectedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "attractions is an object", body: `{"attractions":{"a":1}}`},
		{name: "attractions is a string", body: `{"attractions":"none"}`},
		{name: "bare array", body: `[]`},
		{name: "attractions is null", body: `{"attractions":null}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, tc.body)
			}))

			resp, err := c.SearchAttractions(context.Background(), "Paris")
			require.NoError(t, err)
			assert.Nil(t, resp.Attractions)

			res, err := planner.NewSearcher(c, nil).Attractions(context.Background(), "Paris")
			require.NoError(t, err)
			assert.Equal(t, planner.NoticeShapeMismatch, res.Notice)
			assert.Empty(t, res.Attractions)
		})
	}
}

func TestSearchAttractions_EmptyListAndMsg(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"attractions":[],"count":0,"msg":"No attractions found."}`)
	}))

	resp, err := c.SearchAttractions(context.Background(), "Paris")

	require.NoError(t, err)
	require.NotNil(t, resp.Attractions)
	assert.Empty(t, resp.Attractions)
	assert.Equal(t, "No attractions found.", resp.Msg)
}

func TestSearchHotelsAndActivities(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/hotels", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025-06-01", q.Get("check_in"))
		assert.Equal(t, "2025-06-05", q.Get("check_out"))
		writeJSON(w, http.StatusOK, map[string]any{"hotels": []any{map[string]any{"hotel_id": "h1", "name": "A"}}, "count": 1})
	})
	mux.HandleFunc("/search/activities", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "38.7", q.Get("lat"))
		assert.Equal(t, "-9.1", q.Get("lon"))
		assert.Empty(t, q.Get("radius"))
		writeJSON(w, http.StatusOK, map[string]any{"activities": []any{map[string]any{"id": "A1"}}, "count": 1})
	})
	c := newClient(t, mux)

	hotels, err := c.SearchHotels(context.Background(), planner.HotelQuery{Location: "Lisbon", CheckIn: "2025-06-01", CheckOut: "2025-06-05"})
	require.NoError(t, err)
	require.Len(t, hotels, 1)

	acts, err := c.NearbyActivities(context.Background(), 38.7, -9.1, 0)
	require.NoError(t, err)
	require.Len(t, acts, 1)
}

func TestListItineraries(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data":       []any{map[string]any{"itinerary_id": 1, "title": "A"}},
			"pagination": map[string]any{"page": 2, "limit": 20, "total": 21},
		})
	}))

	page, err := c.ListItineraries(context.Background(), 2, 0)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 21, page.Pagination.Total)
}

// TestReconcilerAgainstClient drives a full save through the real client:
// the creation error message from the server reaches the user unchanged.
func TestReconcilerAgainstClient(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{"code": "validation_error", "message": "return_date must not be before departure_date"},
		})
	}))
	store := localstore.NewMemory()
	pending := planner.NewPendingStore(store, nil)
	require.NoError(t, pending.Add(context.Background(), planner.PendingItem{Type: planner.ItemHotel, Data: record.Record{"name": "A"}}))
	rec := planner.NewReconciler(pending, planner.NewDraftStore(store, nil), c, nil)

	_, err := rec.SaveAll(context.Background(), nil, &planner.CurrentItinerary{DepartureDate: "2025-06-08", ReturnDate: "2025-06-01"})

	require.ErrorIs(t, err, planner.ErrItineraryCreationFailed)
	assert.Equal(t, "return_date must not be before departure_date", planner.Message(err))
	assert.Len(t, pending.List(context.Background()), 1)
}

func TestAttractionDetail_EscapesID(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/attractions/W%2F1", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]any{"xid": "W/1", "name": "Tower"})
	}))

	rec, err := c.AttractionDetail(context.Background(), "W/1")

	require.NoError(t, err)
	assert.Equal(t, "Tower", rec["name"])
}

func TestExportItinerary_ReturnsRawBody(t *testing.T) {
	const body = "itinerary_id,itinerary_title\n3,Lisbon\n"
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/itineraries/3/export", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, body)
	}))

	got, err := c.ExportItinerary(context.Background(), 3, "csv")

	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestExportItinerary_NotFound(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{"code": "not_found", "message": "itinerary not found"},
		})
	}))

	_, err := c.ExportItinerary(context.Background(), 9, "json")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "itinerary not found", planner.Message(err))
}

func TestSearchDestinations(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/destinations", r.URL.Path)
		assert.Equal(t, "São Paulo", r.URL.Query().Get("query"))
		writeJSON(w, http.StatusOK, map[string]any{
			"destinations": []any{map[string]any{"name": "São Paulo", "country": "BR", "type": "city"}},
			"count":        1,
		})
	}))

	recs, err := c.SearchDestinations(context.Background(), "São Paulo")

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "city", recs[0]["type"])
}

func TestHotelDetail(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/hotels/g1-d1" {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error": map[string]any{"code": "not_found", "message": "hotel not found"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"hotel_id": "g1-d1", "name": "Hotel Avenida", "price_per_night": 120})
	}))

	rec, err := c.HotelDetail(context.Background(), "g1-d1")
	require.NoError(t, err)
	assert.Equal(t, "Hotel Avenida", rec["name"])

	_, err = planner.NewSearcher(c, nil).HotelDetail(context.Background(), "g1-d9")
	require.ErrorIs(t, err, planner.ErrSearchFailed)
	assert.Equal(t, "hotel not found", planner.Message(err))
}

func TestHotelPricing_Query(t *testing.T) {
	var got []map[string][]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/hotels/g1-d1/pricing", r.URL.Path)
		got = append(got, r.URL.Query())
		writeJSON(w, http.StatusOK, map[string]any{"hotel_key": "g1-d1", "best_rate": map[string]any{"rate": 126.5}})
	}))

	_, err := c.HotelPricing(context.Background(), planner.PricingQuery{
		HotelKey: "g1-d1", CheckIn: "2025-06-01", CheckOut: "2025-06-05",
	})
	require.NoError(t, err)
	rec, err := c.HotelPricing(context.Background(), planner.PricingQuery{
		HotelKey: "g1-d1", CheckIn: "2025-06-01", CheckOut: "2025-06-05", Guests: 3, Rooms: 2, Currency: "EUR",
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, map[string][]string{"check_in": {"2025-06-01"}, "check_out": {"2025-06-05"}}, got[0])
	assert.Equal(t, []string{"3"}, got[1]["guests"])
	assert.Equal(t, []string{"2"}, got[1]["rooms"])
	assert.Equal(t, []string{"EUR"}, got[1]["currency"])
	assert.Equal(t, "g1-d1", rec["hotel_key"])
}
