package planner_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingStore wraps a Memory store and counts writes.
type countingStore struct {
	*localstore.Memory
	mu     sync.Mutex
	sets    int
	getErr  error
	lockErr error
}

func newCountingStore() *countingStore {
	return &countingStore{Memory: localstore.NewMemory()}
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.Memory.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.sets++
	c.mu.Unlock()
	return c.Memory.Set(ctx, key, value)
}

func (c *countingStore) Lock(ctx context.Context, name string, ttl time.Duration) (func(context.Context) error, error) {
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	return c.Memory.Lock(ctx, name, ttl)
}

func (c *countingStore) writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

var _ localstore.Store = (*countingStore)(nil)

// serviceError mimics a collaborator error carrying the service's message.
type serviceError struct {
	status int
	msg    string
}

func (e *serviceError) Error() string          { return "api: " + e.msg }
func (e *serviceError) ServiceMessage() string { return e.msg }

// mockItineraryAPI is a func-field test double for planner.ItineraryAPI.
type mockItineraryAPI struct {
	mu sync.Mutex

	create     func(ctx context.Context) (planner.Itinerary, error)
	createFrom func(ctx context.Context, req planner.FlightDatesRequest) (planner.Itinerary, error)
	save       func(ctx context.Context, id int64, p planner.SavePayload) (map[string]any, error)

	calls []string
}

func (m *mockItineraryAPI) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *mockItineraryAPI) CreateItinerary(ctx context.Context) (planner.Itinerary, error) {
	m.record("create")
	if m.create == nil {
		return planner.Itinerary{}, errors.New("unexpected create")
	}
	return m.create(ctx)
}

func (m *mockItineraryAPI) CreateItineraryFromFlightDates(ctx context.Context, req planner.FlightDatesRequest) (planner.Itinerary, error) {
	m.record("create_from_flight_dates")
	if m.createFrom == nil {
		return planner.Itinerary{}, errors.New("unexpected create from flight dates")
	}
	return m.createFrom(ctx, req)
}

func (m *mockItineraryAPI) SaveItineraryItems(ctx context.Context, id int64, p planner.SavePayload) (map[string]any, error) {
	m.record("save")
	if m.save == nil {
		return nil, errors.New("unexpected save")
	}
	return m.save(ctx, id, p)
}

func (m *mockItineraryAPI) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

var _ planner.ItineraryAPI = (*mockItineraryAPI)(nil)

// mockSearchAPI is a func-field test double for planner.SearchAPI.
type mockSearchAPI struct {
	attractions func(ctx context.Context, location string) (planner.AttractionsResponse, error)
	hotels      func(ctx context.Context, q planner.HotelQuery) ([]record.Record, error)
	detail      func(ctx context.Context, id string) (record.Record, error)
	activities  func(ctx context.Context, lat, lon float64, radius int) ([]record.Record, error)
	places      func(ctx context.Context, query string) ([]record.Record, error)
	hotel       func(ctx context.Context, key string) (record.Record, error)
	pricing     func(ctx context.Context, q planner.PricingQuery) (record.Record, error)
}

func (m *mockSearchAPI) SearchAttractions(ctx context.Context, location string) (planner.AttractionsResponse, error) {
	return m.attractions(ctx, location)
}
func (m *mockSearchAPI) SearchHotels(ctx context.Context, q planner.HotelQuery) ([]record.Record, error) {
	return m.hotels(ctx, q)
}
func (m *mockSearchAPI) AttractionDetail(ctx context.Context, id string) (record.Record, error) {
	return m.detail(ctx, id)
}
func (m *mockSearchAPI) NearbyActivities(ctx context.Context, lat, lon float64, radius int) ([]record.Record, error) {
	return m.activities(ctx, lat, lon, radius)
}
func (m *mockSearchAPI) SearchDestinations(ctx context.Context, query string) ([]record.Record, error) {
	return m.places(ctx, query)
}
func (m *mockSearchAPI) HotelDetail(ctx context.Context, key string) (record.Record, error) {
	return m.hotel(ctx, key)
}
func (m *mockSearchAPI) HotelPricing(ctx context.Context, q planner.PricingQuery) (record.Record, error) {
	return m.pricing(ctx, q)
}

var _ planner.SearchAPI = (*mockSearchAPI)(nil)

func ptr[T any](v T) *T { return &v }
