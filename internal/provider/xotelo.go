package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

const (
	xoteloBaseURL = "https://data.xotelo.com/api"

	// DefaultXoteloLocationKey is the TripAdvisor location key used when no
	// mapping from the free-text location is configured.
	DefaultXoteloLocationKey = "g294197"

	xoteloMaxLimit = 100

	// Limits of the /rates endpoint.
	xoteloMaxAdults = 32
	xoteloMaxRooms  = 8
)

// Xotelo lists hotels for a TripAdvisor location key.
type Xotelo struct {
	c           *httpClient
	locationKey string
}

// NewXotelo constructs a Xotelo client. Xotelo needs no API key.
func NewXotelo(locationKey string, opts Options) *Xotelo {
	if locationKey == "" {
		locationKey = DefaultXoteloLocationKey
	}
	return &Xotelo{c: newHTTPClient("xotelo", xoteloBaseURL, opts), locationKey: locationKey}
}

type xoteloListResponse struct {
	Error  any `json:"error"`
	Result *struct {
		List []xoteloHotel `json:"list"`
	} `json:"result"`
}

type xoteloHotel struct {
	Key               string `json:"key"`
	Name              string `json:"name"`
	URL               string `json:"url"`
	Image             string `json:"image"`
	AccommodationType string `json:"accommodation_type"`
	PriceRanges       struct {
		Minimum float64 `json:"minimum"`
		Maximum float64 `json:"maximum"`
	} `json:"price_ranges"`
	ReviewSummary struct {
		Rating float64 `json:"rating"`
		Count  int     `json:"count"`
	} `json:"review_summary"`
	Geo *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geo"`
}

// SearchHotels lists hotels sorted by best value. The nightly price of each
// hotel is the midpoint of its price range (zero when either bound is
// missing); MinPrice/MaxPrice filter on that midpoint.
func (x *Xotelo) SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	limit := q.Limit
	if limit <= 0 || limit > xoteloMaxLimit {
		limit = xoteloMaxLimit
	}

	params := url.Values{
		"location_key": {x.locationKey},
		"limit":        {strconv.Itoa(limit)},
		"offset":       {"0"},
		"sort":         {"best_value"},
	}

	var resp xoteloListResponse
	if err := x.c.getJSON(ctx, "/list", params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("%s: %w: %v", x.c.name, domain.ErrUpstream, resp.Error)
	}
	if resp.Result == nil {
		return nil, nil
	}

	out := make([]domain.Hotel, 0, len(resp.Result.List))
	for _, h := range resp.Result.List {
		lo, hi := h.PriceRanges.Minimum, h.PriceRanges.Maximum
		var nightly float64
		if lo > 0 && hi > 0 {
			nightly = (lo + hi) / 2
		}
		if q.MinPrice != nil && nightly < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && nightly > *q.MaxPrice {
			continue
		}

		hotel := domain.Hotel{
			HotelID:           h.Key,
			Name:              h.Name,
			Location:          q.Location,
			Rating:            h.ReviewSummary.Rating,
			ReviewCount:       h.ReviewSummary.Count,
			PricePerNight:     nightly,
			PriceMin:          lo,
			PriceMax:          hi,
			ImageURL:          h.Image,
			URL:               h.URL,
			AccommodationType: h.AccommodationType,
		}
		if hotel.Name == "" {
			hotel.Name = "Unknown"
		}
		if hotel.AccommodationType == "" {
			hotel.AccommodationType = "Hotel"
		}
		if h.Geo != nil {
			lat, lon := h.Geo.Latitude, h.Geo.Longitude
			hotel.Lat, hotel.Lon = &lat, &lon
		}
		out = append(out, hotel)
	}
	return out, nil
}

// HotelDetail returns the hotel with the given key. Xotelo has no detail
// endpoint, so the key is looked up in the location's best-value list.
func (x *Xotelo) HotelDetail(ctx context.Context, key string) (domain.Hotel, error) {
	hotels, err := x.SearchHotels(ctx, domain.HotelQuery{Limit: xoteloMaxLimit})
	if err != nil {
		return domain.Hotel{}, err
	}
	for _, h := range hotels {
		if h.HotelID == key {
			return h, nil
		}
	}
	return domain.Hotel{}, fmt.Errorf("%s: hotel %q: %w", x.c.name, key, domain.ErrNotFound)
}

type xoteloRatesResponse struct {
	Error     any    `json:"error"`
	Timestamp *int64 `json:"timestamp"`
	Result    *struct {
		Rates []struct {
			Code string  `json:"code"`
			Name string  `json:"name"`
			Rate float64 `json:"rate"`
		} `json:"rates"`
	} `json:"result"`
}

// HotelRates returns the live rates for a stay. Guests and rooms are capped
// at the provider's limits. A hotel with no rates for the dates wraps
// domain.ErrNotFound.
func (x *Xotelo) HotelRates(ctx context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error) {
	q.Guests = min(q.Guests, xoteloMaxAdults)
	q.Rooms = min(q.Rooms, xoteloMaxRooms)

	params := url.Values{
		"hotel_key": {q.HotelKey},
		"chk_in":    {q.CheckIn},
		"chk_out":   {q.CheckOut},
		"adults":    {strconv.Itoa(q.Guests)},
		"rooms":     {strconv.Itoa(q.Rooms)},
		"currency":  {q.Currency},
	}

	var resp xoteloRatesResponse
	if err := x.c.getJSON(ctx, "/rates", params, &resp); err != nil {
		return domain.HotelPricing{}, err
	}
	if resp.Error != nil {
		return domain.HotelPricing{}, fmt.Errorf("%s: %w: %v", x.c.name, domain.ErrUpstream, resp.Error)
	}
	if resp.Result == nil || len(resp.Result.Rates) == 0 {
		return domain.HotelPricing{}, fmt.Errorf("%s: no rates for %q: %w", x.c.name, q.HotelKey, domain.ErrNotFound)
	}

	out := domain.HotelPricing{
		HotelRateQuery: q,
		Rates:          make([]domain.HotelRate, len(resp.Result.Rates)),
		Timestamp:      resp.Timestamp,
	}
	for i, r := range resp.Result.Rates {
		out.Rates[i] = domain.HotelRate{Code: r.Code, Name: r.Name, Rate: r.Rate}
		if i == 0 || r.Rate < out.Best.Rate {
			out.Best = out.Rates[i]
		}
	}
	return out, nil
}
