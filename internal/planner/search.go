package planner

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

// AttractionsResponse is the decoded attractions search body. Attractions is
// nil when the body had no attractions list.
type AttractionsResponse struct {
	Attractions []record.Record `json:"attractions"`
	Msg         string          `json:"msg,omitempty"`
}

// HotelQuery selects hotels for a stay. Dates are "2006-01-02".
type HotelQuery struct {
	Location string
	CheckIn  string
	CheckOut string
}

// PricingQuery selects live rates for one hotel. Zero Guests, Rooms and an
// empty Currency leave the server defaults.
type PricingQuery struct {
	HotelKey string
	CheckIn  string
	CheckOut string
	Guests   int
	Rooms    int
	Currency string
}

// SearchAPI is the search service as seen by the Searcher.
type SearchAPI interface {
	SearchAttractions(ctx context.Context, location string) (AttractionsResponse, error)
	SearchHotels(ctx context.Context, q HotelQuery) ([]record.Record, error)
	AttractionDetail(ctx context.Context, id string) (record.Record, error)
	NearbyActivities(ctx context.Context, lat, lon float64, radius int) ([]record.Record, error)
	SearchDestinations(ctx context.Context, query string) ([]record.Record, error)
	HotelDetail(ctx context.Context, key string) (record.Record, error)
	HotelPricing(ctx context.Context, q PricingQuery) (record.Record, error)
}

// Notice explains an empty result set to the user.
type Notice string

const (
	NoticeNone          Notice = ""
	NoticeNoResults     Notice = "No results found. Try a different location."
	NoticeAllFiltered   Notice = "Results were returned, but none of them were attractions."
	NoticeShapeMismatch Notice = "The attractions service returned an unexpected response."
)

// Err returns the error kind behind n, or nil.
func (n Notice) Err() error {
	if n == NoticeShapeMismatch {
		return ErrAttractionsShapeMismatch
	}
	return nil
}

// AttractionResults is a normalized attractions search.
type AttractionResults struct {
	Attractions []record.Attraction
	// Dropped counts server records removed by normalization.
	Dropped int
	Notice  Notice
}

// HotelResults is a normalized hotel search.
type HotelResults struct {
	Hotels  []record.Hotel
	Dropped int
	Notice  Notice
}

// Searcher runs the search flows and normalizes their results.
type Searcher struct {
	api SearchAPI
	log *slog.Logger
}

// NewSearcher returns a Searcher backed by api.
func NewSearcher(api SearchAPI, log *slog.Logger) *Searcher {
	if log == nil {
		log = slog.Default()
	}
	return &Searcher{api: api, log: log}
}

// Attractions searches attractions near location. Hotel-like records are
// dropped. An empty server result, a result emptied by filtering, and a body
// without an attractions list are reported as distinct notices, not errors.
func (s *Searcher) Attractions(ctx context.Context, location string) (AttractionResults, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return AttractionResults{}, &Error{Kind: ErrSearchFailed, Msg: "Please enter a location"}
	}

	resp, err := s.api.SearchAttractions(ctx, location)
	if err != nil {
		return AttractionResults{}, wrap(ErrSearchFailed, "Failed to search attractions", err)
	}
	if resp.Attractions == nil {
		s.log.WarnContext(ctx, "attractions response without attractions list", "location", location)
		return AttractionResults{Attractions: []record.Attraction{}, Notice: NoticeShapeMismatch}, nil
	}
	if len(resp.Attractions) == 0 {
		return AttractionResults{Attractions: []record.Attraction{}, Notice: NoticeNoResults}, nil
	}

	set := record.NormalizeAttractions(resp.Attractions)
	out := AttractionResults{
		Attractions: set.Attractions,
		Dropped:     set.HotelLike + set.Invalid,
	}
	if out.Dropped > 0 {
		s.log.DebugContext(ctx, "attractions filtered", "hotel_like", set.HotelLike, "invalid", set.Invalid)
	}
	if len(out.Attractions) == 0 {
		out.Attractions = []record.Attraction{}
		out.Notice = NoticeAllFiltered
	}
	return out, nil
}

// Hotels searches hotels for a stay.
func (s *Searcher) Hotels(ctx context.Context, q HotelQuery) (HotelResults, error) {
	q.Location = strings.TrimSpace(q.Location)
	if q.Location == "" || q.CheckIn == "" || q.CheckOut == "" {
		return HotelResults{}, &Error{Kind: ErrSearchFailed, Msg: "Please enter a location, check-in and check-out date"}
	}

	recs, err := s.api.SearchHotels(ctx, q)
	if err != nil {
		return HotelResults{}, wrap(ErrSearchFailed, "Failed to search hotels", err)
	}
	hotels, dropped := record.NormalizeHotels(recs)
	out := HotelResults{Hotels: hotels, Dropped: dropped}
	if len(hotels) == 0 {
		out.Hotels = []record.Hotel{}
		out.Notice = NoticeNoResults
	}
	return out, nil
}

// AttractionDetail fetches the expanded view of one attraction.
func (s *Searcher) AttractionDetail(ctx context.Context, id string) (record.Attraction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return record.Attraction{}, &Error{Kind: ErrSearchFailed, Msg: "An attraction id is required"}
	}
	rec, err := s.api.AttractionDetail(ctx, id)
	if err != nil {
		return record.Attraction{}, wrap(ErrSearchFailed, "Failed to load attraction details", err)
	}
	a, err := record.ParseAttraction(rec)
	if err != nil {
		return record.Attraction{}, &Error{Kind: ErrSearchFailed, Msg: "Failed to load attraction details", Err: err}
	}
	return a, nil
}

// NearbyActivities lists activities within radius km of a point.
func (s *Searcher) NearbyActivities(ctx context.Context, lat, lon float64, radius int) ([]record.Record, error) {
	recs, err := s.api.NearbyActivities(ctx, lat, lon, radius)
	if err != nil {
		return nil, wrap(ErrSearchFailed, "Failed to load nearby activities", err)
	}
	if recs == nil {
		recs = []record.Record{}
	}
	return recs, nil
}

// Destinations resolves a place name to at most one destination record.
func (s *Searcher) Destinations(ctx context.Context, query string) ([]record.Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &Error{Kind: ErrSearchFailed, Msg: "Please enter a destination"}
	}
	recs, err := s.api.SearchDestinations(ctx, query)
	if err != nil {
		return nil, wrap(ErrSearchFailed, "Failed to search destinations", err)
	}
	if recs == nil {
		recs = []record.Record{}
	}
	return recs, nil
}

// HotelDetail fetches one hotel by its key.
func (s *Searcher) HotelDetail(ctx context.Context, key string) (record.Hotel, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return record.Hotel{}, &Error{Kind: ErrSearchFailed, Msg: "A hotel id is required"}
	}
	rec, err := s.api.HotelDetail(ctx, key)
	if err != nil {
		return record.Hotel{}, wrap(ErrSearchFailed, "Failed to load hotel details", err)
	}
	h, err := record.ParseHotel(rec)
	if err != nil {
		return record.Hotel{}, &Error{Kind: ErrSearchFailed, Msg: "Failed to load hotel details", Err: err}
	}
	return h, nil
}

// HotelPricing fetches the live rates for a stay at one hotel.
func (s *Searcher) HotelPricing(ctx context.Context, q PricingQuery) (record.Record, error) {
	q.HotelKey = strings.TrimSpace(q.HotelKey)
	if q.HotelKey == "" || q.CheckIn == "" || q.CheckOut == "" {
		return nil, &Error{Kind: ErrSearchFailed, Msg: "Please enter a hotel, check-in and check-out date"}
	}
	rec, err := s.api.HotelPricing(ctx, q)
	if err != nil {
		return nil, wrap(ErrSearchFailed, "Failed to load hotel pricing", err)
	}
	return rec, nil
}
