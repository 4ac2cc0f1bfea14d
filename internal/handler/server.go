// Package handler implements the HTTP handlers for the plan-it-ahead API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, itinerary.go, export.go, search.go)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	CreateFromFlightDates(ctx context.Context, in domain.FlightDates) (domain.Itinerary, error)
	GetByID(ctx context.Context, id int64) (domain.Itinerary, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error)
	Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	Delete(ctx context.Context, id int64) error
	SaveItems(ctx context.Context, id int64, items []domain.ItineraryItem, flights []json.RawMessage) (domain.SaveSummary, error)
	Items(ctx context.Context, id int64) (domain.ItineraryDetail, error)
	Budget(ctx context.Context, id int64) (domain.Budget, error)
	Export(ctx context.Context, id int64) ([]domain.ExportRow, error)
}

// SearchServicer defines the search operations the search handlers depend on.
type SearchServicer interface {
	Attractions(ctx context.Context, q domain.AttractionQuery) ([]domain.Attraction, error)
	AttractionDetail(ctx context.Context, xid string) (domain.AttractionDetail, error)
	Destinations(ctx context.Context, query string) ([]domain.Destination, error)
	Hotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error)
	HotelDetail(ctx context.Context, key string) (domain.Hotel, error)
	HotelPricing(ctx context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error)
	Activities(ctx context.Context, q domain.ActivityQuery) ([]domain.Activity, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, handler.StrictOptions(logger)).
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	itineraries ItineraryServicer
	search      SearchServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer, search SearchServicer) *Server {
	return &Server{itineraries: itineraries, search: search}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
