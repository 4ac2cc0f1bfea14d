package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler/gen"
)

// mockSearchServicer is a test double for handler.SearchServicer.
type mockSearchServicer struct {
	attractions      func(ctx context.Context, q domain.AttractionQuery) ([]domain.Attraction, error)
	attractionDetail func(ctx context.Context, xid string) (domain.AttractionDetail, error)
	destinations     func(ctx context.Context, query string) ([]domain.Destination, error)
	hotels           func(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error)
	hotelDetail      func(ctx context.Context, key string) (domain.Hotel, error)
	hotelPricing     func(ctx context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error)
	activities       func(ctx context.Context, q domain.ActivityQuery) ([]domain.Activity, error)
}

func (m *mockSearchServicer) Attractions(ctx context.Context, q domain.AttractionQuery) ([]domain.Attraction, error) {
	return m.attractions(ctx, q)
}
func (m *mockSearchServicer) AttractionDetail(ctx context.Context, xid string) (domain.AttractionDetail, error) {
	return m.attractionDetail(ctx, xid)
}
func (m *mockSearchServicer) Destinations(ctx context.Context, query string) ([]domain.Destination, error) {
	return m.destinations(ctx, query)
}
func (m *mockSearchServicer) Hotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	return m.hotels(ctx, q)
}
func (m *mockSearchServicer) HotelDetail(ctx context.Context, key string) (domain.Hotel, error) {
	return m.hotelDetail(ctx, key)
}
func (m *mockSearchServicer) HotelPricing(ctx context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error) {
	return m.hotelPricing(ctx, q)
}
func (m *mockSearchServicer) Activities(ctx context.Context, q domain.ActivityQuery) ([]domain.Activity, error) {
	return m.activities(ctx, q)
}

var _ handler.SearchServicer = (*mockSearchServicer)(nil)

func f64(v float64) *float64 { return &v }

// ---- GET /search/attractions -----------------------------------------------

func TestSearchAttractions_200(t *testing.T) {
	var got domain.AttractionQuery
	svc := &mockSearchServicer{
		attractions: func(_ context.Context, q domain.AttractionQuery) ([]domain.Attraction, error) {
			got = q
			return []domain.Attraction{{XID: "W1", Name: "Belém Tower", Lat: f64(38.69), Lon: f64(-9.21), Rate: 3}}, nil
		},
	}

	rec := do(t, newHTTPHandler(nil, svc), http.MethodGet, "/search/attractions?location=Lisbon&radius=2000&category=museums", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AttractionQuery{Location: "Lisbon", Radius: 2000, Category: "museums"}, got)
	var resp gen.AttractionSearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Nil(t, resp.Msg)
	require.Len(t, resp.Attractions, 1)
	assert.Equal(t, "W1", resp.Attractions[0].Xid)
	assert.Nil(t, resp.Attractions[0].ImageUrl)
}

func TestSearchAttractions_200_EmptyHasMessage(t *testing.T) {
	svc := &mockSearchServicer{
		attractions: func(_ context.Context, _ domain.AttractionQuery) ([]domain.Attraction, error) {
			return []domain.Attraction{}, nil
		},
	}

	rec := do(t, newHTTPHandler(nil, svc), http.MethodGet, "/search/attractions?lat=38.7&lon=-9.1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.AttractionSearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Attractions)
	require.NotNil(t, resp.Msg)
	assert.Contains(t, *resp.Msg, "No attractions found")
}

func TestSearchAttractions_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"validation", fmt.Errorf("%w: location or lat/lon is required", domain.ErrValidation), http.StatusUnprocessableEntity, "validation_error"},
		{"upstream", fmt.Errorf("provider.OpenTripMap: %w: status 500", domain.ErrUpstream), http.StatusBadGateway, "upstream_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockSearchServicer{
				attractions: func(_ context.Context, _ domain.AttractionQuery) ([]domain.Attraction, error) {
					return nil, tc.err
				},
			}

			rec := do(t, newHTTPHandler(nil, svc), http.MethodGet, "/search/attractions", nil)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantErr, decodeError(t, rec).Error.Code)
		})
	}
}

func TestSearchAttractions_400_BadLat(t *testing.T) {
	rec := do(t, newHTTPHandler(nil, &mockSearchServicer{}), http.MethodGet, "/search/attractions?lat=north", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /search/attractions/{xid} -----------------------------------------

func TestGetAttraction(t *testing.T) {
	svc := &mockSearchServicer{
		attractionDetail: func(_ context.Context, xid string) (domain.AttractionDetail, error) {
			switch xid {
			case "W1":
				return domain.AttractionDetail{
					Attraction: domain.Attraction{XID: "W1", Name: "Belém Tower", Description: "A fortified tower."},
					Address:    "Av. Brasília, Lisbon",
				}, nil
			case "W2":
				return domain.AttractionDetail{}, domain.ErrUpstream
			}
			return domain.AttractionDetail{}, domain.ErrNotFound
		},
	}
	h := newHTTPHandler(nil, svc)

	rec := do(t, h, http.MethodGet, "/search/attractions/W1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.AttractionDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Belém Tower", resp.Name)
	require.NotNil(t, resp.Address)
	assert.Equal(t, "Av. Brasília, Lisbon", *resp.Address)
	assert.NotNil(t, resp.Categories)

	assert.Equal(t, http.StatusBadGateway, do(t, h, http.MethodGet, "/search/attractions/W2", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/search/attractions/W9", nil).Code)
}

// ---- GET /search/hotels ----------------------------------------------------

func TestSearchHotels_200(t *testing.T) {
	var got domain.HotelQuery
	svc := &mockSearchServicer{
		hotels: func(_ context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
			got = q
			return []domain.Hotel{{HotelID: "h1", Name: "Hotel A", PricePerNight: 110, PriceMin: 100, PriceMax: 120}}, nil
		},
	}

	rec := do(t, newHTTPHandler(nil, svc), http.MethodGet,
		"/search/hotels?location=Lisbon&check_in=2025-06-01&check_out=2025-06-05&guests=2&max_price=150", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-06-01", got.CheckIn)
	assert.Equal(t, 2, got.Guests)
	require.NotNil(t, got.MaxPrice)
	assert.InDelta(t, 150, *got.MaxPrice, 0.001)
	assert.Nil(t, got.MinPrice)

	var resp gen.HotelSearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Hotels, 1)
	assert.InDelta(t, 110, resp.Hotels[0].PricePerNight, 0.001)
	assert.Nil(t, resp.Msg)
}

func TestSearchHotels_EmptyAndInvalid(t *testing.T) {
	svc := &mockSearchServicer{
		hotels: func(_ context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
			if q.CheckIn == "" {
				return nil, fmt.Errorf("%w: check_in is required", domain.ErrValidation)
			}
			return nil, nil
		},
	}
	h := newHTTPHandler(nil, svc)

	rec := do(t, h, http.MethodGet, "/search/hotels?location=Lisbon", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "check_in is required", decodeError(t, rec).Error.Message)

	rec = do(t, h, http.MethodGet, "/search/hotels?location=Lisbon&check_in=2025-06-01&check_out=2025-06-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.HotelSearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Hotels)
	require.NotNil(t, resp.Msg)
	assert.Contains(t, *resp.Msg, "No hotels found")
}

// ---- GET /search/destinations ----------------------------------------------

func TestSearchDestinations(t *testing.T) {
	var got string
	svc := &mockSearchServicer{
		destinations: func(_ context.Context, query string) ([]domain.Destination, error) {
			got = query
			switch query {
			case "":
				return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
			case "Down":
				return nil, domain.ErrUpstream
			}
			return []domain.Destination{{Name: "Lisbon", Country: "PT", Lat: f64(38.72), Lon: f64(-9.14), Type: "city"}}, nil
		},
	}
	h := newHTTPHandler(nil, svc)

	rec := do(t, h, http.MethodGet, "/search/destinations?query=Lisbon", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lisbon", got)
	var resp gen.DestinationSearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Destinations, 1)
	assert.Equal(t, "city", resp.Destinations[0].Type)
	require.NotNil(t, resp.Destinations[0].Country)
	assert.Equal(t, "PT", *resp.Destinations[0].Country)

	rec = do(t, h, http.MethodGet, "/search/destinations", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "query is required", decodeError(t, rec).Error.Message)

	assert.Equal(t, http.StatusBadGateway, do(t, h, http.MethodGet, "/search/destinations?query=Down", nil).Code)
}

// ---- GET /search/hotels/{hotelKey} -----------------------------------------

func TestGetHotel(t *testing.T) {
	svc := &mockSearchServicer{
		hotelDetail: func(_ context.Context, key string) (domain.Hotel, error) {
			switch key {
			case "g1-d1":
				return domain.Hotel{HotelID: key, Name: "Hotel Avenida", PricePerNight: 120, Rating: 4.5}, nil
			case "g1-d2":
				return domain.Hotel{}, domain.ErrUpstream
			}
			return domain.Hotel{}, domain.ErrNotFound
		},
	}
	h := newHTTPHandler(nil, svc)

	rec := do(t, h, http.MethodGet, "/search/hotels/g1-d1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Hotel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "g1-d1", resp.HotelId)
	assert.InDelta(t, 120, resp.PricePerNight, 0.001)

	assert.Equal(t, http.StatusBadGateway, do(t, h, http.MethodGet, "/search/hotels/g1-d2", nil).Code)
	rec = do(t, h, http.MethodGet, "/search/hotels/g1-d9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "hotel not found", decodeError(t, rec).Error.Message)
}

// ---- GET /search/hotels/{hotelKey}/pricing ---------------------------------

func TestGetHotelPricing_200(t *testing.T) {
	var got domain.HotelRateQuery
	ts := int64(1760000000)
	svc := &mockSearchServicer{
		hotelPricing: func(_ context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error) {
			got = q
			rates := []domain.HotelRate{{Code: "A", Name: "Agoda", Rate: 131}, {Code: "E", Name: "Expedia", Rate: 126.5}}
			q.Guests, q.Rooms, q.Currency = 3, 2, "EUR"
			return domain.HotelPricing{HotelRateQuery: q, Rates: rates, Best: rates[1], Timestamp: &ts}, nil
		},
	}

	rec := do(t, newHTTPHandler(nil, svc), http.MethodGet,
		"/search/hotels/g1-d1/pricing?check_in=2025-06-01&check_out=2025-06-05&guests=3&rooms=2&currency=eur", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.HotelRateQuery{
		HotelKey: "g1-d1", CheckIn: "2025-06-01", CheckOut: "2025-06-05", Guests: 3, Rooms: 2, Currency: "eur",
	}, got)

	var resp gen.HotelPricing
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "g1-d1", resp.HotelKey)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Len(t, resp.Rates, 2)
	assert.Equal(t, gen.HotelRate{Code: "E", Name: "Expedia", Rate: 126.5}, resp.BestRate)
	require.NotNil(t, resp.Timestamp)
	assert.Equal(t, ts, *resp.Timestamp)
}

func TestGetHotelPricing_Errors(t *testing.T) {
	svc := &mockSearchServicer{
		hotelPricing: func(_ context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error) {
			switch q.HotelKey {
			case "invalid":
				return domain.HotelPricing{}, fmt.Errorf("%w: check_in and check_out are required", domain.ErrValidation)
			case "down":
				return domain.HotelPricing{}, domain.ErrUpstream
			}
			return domain.HotelPricing{}, domain.ErrNotFound
		},
	}
	h := newHTTPHandler(nil, svc)

	rec := do(t, h, http.MethodGet, "/search/hotels/invalid/pricing", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "check_in and check_out are required", decodeError(t, rec).Error.Message)

	rec = do(t, h, http.MethodGet, "/search/hotels/g1-d1/pricing?check_in=2025-06-01&check_out=2025-06-05", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "pricing not available", decodeError(t, rec).Error.Message)

	assert.Equal(t, http.StatusBadGateway,
		do(t, h, http.MethodGet, "/search/hotels/down/pricing?check_in=2025-06-01&check_out=2025-06-05", nil).Code)

	rec = do(t, h, http.MethodGet, "/search/hotels/g1-d1/pricing?guests=two", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /search/activities ------------------------------------------------

func TestSearchActivities_200(t *testing.T) {
	var got domain.ActivityQuery
	svc := &mockSearchServicer{
		activities: func(_ context.Context, q domain.ActivityQuery) ([]domain.Activity, error) {
			got = q
			return []domain.Activity{{ID: "A1", Name: "Tram 28 tour", Price: 25, Currency: "EUR"}}, nil
		},
	}

	rec := do(t, newHTTPHandler(nil, svc), http.MethodGet, "/search/activities?lat=38.7&lon=-9.1&radius=3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ActivityQuery{Lat: 38.7, Lon: -9.1, Radius: 3}, got)
	var resp gen.ActivitySearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Activities, 1)
	require.NotNil(t, resp.Activities[0].Currency)
	assert.Equal(t, "EUR", *resp.Activities[0].Currency)
}

func TestSearchActivities_400_MissingLat(t *testing.T) {
	rec := do(t, newHTTPHandler(nil, &mockSearchServicer{}), http.MethodGet, "/search/activities?lon=-9.1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Error.Code)
}

func TestSearchActivities_502(t *testing.T) {
	svc := &mockSearchServicer{
		activities: func(_ context.Context, _ domain.ActivityQuery) ([]domain.Activity, error) {
			return nil, fmt.Errorf("provider.Amadeus: %w: token request failed", domain.ErrUpstream)
		},
	}

	rec := do(t, newHTTPHandler(nil, svc), http.MethodGet, "/search/activities?lat=1&lon=2", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "token request failed", decodeError(t, rec).Error.Message)
}
