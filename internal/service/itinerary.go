// Package service contains the business logic for the plan-it-ahead API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// provider calls. No SQL lives here; services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/repo"
)

// flightPriceKeys are the fields a raw flight record may carry its fare in.
var flightPriceKeys = []string{"price", "total_price", "totalPrice", "amount"}

// ItineraryService implements business logic for itineraries and the items
// saved into them.
type ItineraryService struct {
	itineraries repo.ItineraryRepo
	items       repo.ItemRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(itineraries repo.ItineraryRepo, items repo.ItemRepo) *ItineraryService {
	return &ItineraryService{itineraries: itineraries, items: items}
}

// Create persists a new itinerary. Every field may be empty; an itinerary
// without dates is the target of a save that has no trip context yet.
// Returns domain.ErrValidation if the return date precedes the departure date.
func (s *ItineraryService) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	it = trimItinerary(it)
	if err := validateDates(it.DepartureDate, it.ReturnDate); err != nil {
		return domain.Itinerary{}, err
	}
	result, err := s.itineraries.Create(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return result, nil
}

// CreateFromFlightDates creates an itinerary spanning the given flight dates.
// Both dates are required. The title defaults to "Trip to <destination>", or
// "Itinerary" when no destination is known.
func (s *ItineraryService) CreateFromFlightDates(ctx context.Context, in domain.FlightDates) (domain.Itinerary, error) {
	if in.DepartureDate == nil || in.ReturnDate == nil {
		return domain.Itinerary{}, fmt.Errorf("%w: departure_date and return_date are required", domain.ErrValidation)
	}
	it := trimItinerary(domain.Itinerary{
		Title:         in.Title,
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate,
		ReturnDate:    in.ReturnDate,
	})
	if err := validateDates(it.DepartureDate, it.ReturnDate); err != nil {
		return domain.Itinerary{}, err
	}
	if it.Title == "" {
		it.Title = "Itinerary"
		if it.Destination != "" {
			it.Title = "Trip to " + it.Destination
		}
	}
	result, err := s.itineraries.Create(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.CreateFromFlightDates: %w", err)
	}
	return result, nil
}

// GetByID returns a single itinerary.
// Returns domain.ErrNotFound if it does not exist.
func (s *ItineraryService) GetByID(ctx context.Context, id int64) (domain.Itinerary, error) {
	result, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of itineraries and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	its, total, err := s.itineraries.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.ListPaged: %w", err)
	}
	if its == nil {
		its = []domain.Itinerary{}
	}
	return its, total, nil
}

// Update validates and persists changes to an existing itinerary.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// itinerary does not exist.
func (s *ItineraryService) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	it = trimItinerary(it)
	if it.Title == "" {
		return domain.Itinerary{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if err := validateDates(it.DepartureDate, it.ReturnDate); err != nil {
		return domain.Itinerary{}, err
	}
	result, err := s.itineraries.Update(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an itinerary and everything saved into it.
// Returns domain.ErrNotFound if it does not exist.
func (s *ItineraryService) Delete(ctx context.Context, id int64) error {
	if err := s.itineraries.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// SaveItems appends hotels, attractions and raw flight records to an
// itinerary in one transaction.
//
// At least one entry is required. Items need a non-blank name, a known kind
// and a non-negative price. Flights must be JSON objects; their price is read
// from the first of price/total_price/totalPrice/amount present, else zero.
func (s *ItineraryService) SaveItems(ctx context.Context, id int64, items []domain.ItineraryItem, flights []json.RawMessage) (domain.SaveSummary, error) {
	if len(items) == 0 && len(flights) == 0 {
		return domain.SaveSummary{}, fmt.Errorf("%w: at least one item or flight is required", domain.ErrValidation)
	}

	clean := make([]domain.ItineraryItem, 0, len(items))
	for i, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		switch {
		case it.Name == "":
			return domain.SaveSummary{}, fmt.Errorf("%w: items[%d].name is required", domain.ErrValidation, i)
		case !it.Kind.Valid():
			return domain.SaveSummary{}, fmt.Errorf("%w: items[%d].type must be hotel or attraction", domain.ErrValidation, i)
		case it.Price < 0:
			return domain.SaveSummary{}, fmt.Errorf("%w: items[%d].price must not be negative", domain.ErrValidation, i)
		}
		clean = append(clean, it)
	}

	saved := make([]domain.SavedFlight, 0, len(flights))
	for i, raw := range flights {
		var rec record.Record
		if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
			return domain.SaveSummary{}, fmt.Errorf("%w: flights[%d] must be a JSON object", domain.ErrValidation, i)
		}
		price := record.NumberOr(rec, 0, flightPriceKeys...)
		if price < 0 {
			return domain.SaveSummary{}, fmt.Errorf("%w: flights[%d].price must not be negative", domain.ErrValidation, i)
		}
		saved = append(saved, domain.SavedFlight{Data: raw, Price: price})
	}

	if _, err := s.itineraries.GetByID(ctx, id); err != nil {
		return domain.SaveSummary{}, fmt.Errorf("service.ItineraryService.SaveItems: %w", err)
	}
	gotItems, gotFlights, err := s.items.SaveAll(ctx, id, clean, saved)
	if err != nil {
		return domain.SaveSummary{}, fmt.Errorf("service.ItineraryService.SaveItems: %w", err)
	}

	sum := domain.SaveSummary{ItineraryID: id, ItemsSaved: len(gotItems), FlightsSaved: len(gotFlights)}
	for _, it := range gotItems {
		sum.TotalCost += it.Price
	}
	for _, f := range gotFlights {
		sum.TotalCost += f.Price
	}
	return sum, nil
}

// Items returns the itinerary with its saved items and flights.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (s *ItineraryService) Items(ctx context.Context, id int64) (domain.ItineraryDetail, error) {
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.ItineraryDetail{}, fmt.Errorf("service.ItineraryService.Items: %w", err)
	}
	items, err := s.items.ListItems(ctx, id)
	if err != nil {
		return domain.ItineraryDetail{}, fmt.Errorf("service.ItineraryService.Items: %w", err)
	}
	flights, err := s.items.ListFlights(ctx, id)
	if err != nil {
		return domain.ItineraryDetail{}, fmt.Errorf("service.ItineraryService.Items: %w", err)
	}
	if items == nil {
		items = []domain.ItineraryItem{}
	}
	if flights == nil {
		flights = []domain.SavedFlight{}
	}
	return domain.ItineraryDetail{Itinerary: it, Items: items, Flights: flights}, nil
}

// Budget sums the prices of everything saved into the itinerary.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (s *ItineraryService) Budget(ctx context.Context, id int64) (domain.Budget, error) {
	detail, err := s.Items(ctx, id)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("service.ItineraryService.Budget: %w", err)
	}
	b := domain.Budget{ItineraryID: id}
	for _, it := range detail.Items {
		b.Items += it.Price
	}
	for _, f := range detail.Flights {
		b.Flights += f.Price
	}
	b.Total = b.Items + b.Flights
	return b, nil
}

func trimItinerary(it domain.Itinerary) domain.Itinerary {
	it.Title = strings.TrimSpace(it.Title)
	it.Origin = strings.TrimSpace(it.Origin)
	it.Destination = strings.TrimSpace(it.Destination)
	return it
}

// validateDates rejects a return date before the departure date. Either may be nil.
func validateDates(departure, ret *time.Time) error {
	if departure != nil && ret != nil && ret.Before(*departure) {
		return fmt.Errorf("%w: return_date must not be before departure_date", domain.ErrValidation)
	}
	return nil
}
