package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler/gen"
)

const itineraryNotFound = "itinerary not found"

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListItineraries(ctx context.Context, req gen.ListItinerariesRequestObject) (gen.ListItinerariesResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	its, total, err := s.itineraries.ListPaged(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Itinerary, len(its))
	for i, it := range its {
		data[i] = itineraryToResponse(it)
	}
	return gen.ListItineraries200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// CreateItinerary handles POST /itineraries. The body is optional.
func (s *Server) CreateItinerary(ctx context.Context, req gen.CreateItineraryRequestObject) (gen.CreateItineraryResponseObject, error) {
	var it domain.Itinerary
	if b := req.Body; b != nil {
		it = domain.Itinerary{
			Title:         deref(b.Title),
			Origin:        deref(b.Origin),
			Destination:   deref(b.Destination),
			DepartureDate: fromDate(b.DepartureDate),
			ReturnDate:    fromDate(b.ReturnDate),
		}
	}

	created, err := s.itineraries.Create(ctx, it)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateItinerary422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateItinerary201JSONResponse(itineraryToResponse(created)), nil
}

// CreateItineraryFromFlightDates handles POST /itineraries/from-flight-dates.
func (s *Server) CreateItineraryFromFlightDates(ctx context.Context, req gen.CreateItineraryFromFlightDatesRequestObject) (gen.CreateItineraryFromFlightDatesResponseObject, error) {
	if req.Body == nil {
		return gen.CreateItineraryFromFlightDates422JSONResponse(requestBody("request body is required")), nil
	}
	b := req.Body
	created, err := s.itineraries.CreateFromFlightDates(ctx, domain.FlightDates{
		DepartureDate: fromDate(b.DepartureDate),
		ReturnDate:    fromDate(b.ReturnDate),
		Title:         deref(b.Title),
		Origin:        deref(b.Origin),
		Destination:   deref(b.Destination),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateItineraryFromFlightDates422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateItineraryFromFlightDates201JSONResponse(itineraryToResponse(created)), nil
}

// GetItinerary handles GET /itineraries/{itineraryId}.
func (s *Server) GetItinerary(ctx context.Context, req gen.GetItineraryRequestObject) (gen.GetItineraryResponseObject, error) {
	it, err := s.itineraries.GetByID(ctx, req.ItineraryId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItinerary404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		return nil, err
	}
	return gen.GetItinerary200JSONResponse(itineraryToResponse(it)), nil
}

// UpdateItinerary handles PUT /itineraries/{itineraryId}.
func (s *Server) UpdateItinerary(ctx context.Context, req gen.UpdateItineraryRequestObject) (gen.UpdateItineraryResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateItinerary422JSONResponse(requestBody("request body is required")), nil
	}
	b := req.Body
	updated, err := s.itineraries.Update(ctx, domain.Itinerary{
		ID:            req.ItineraryId,
		Title:         b.Title,
		Origin:        deref(b.Origin),
		Destination:   deref(b.Destination),
		DepartureDate: fromDate(b.DepartureDate),
		ReturnDate:    fromDate(b.ReturnDate),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateItinerary404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateItinerary422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateItinerary200JSONResponse(itineraryToResponse(updated)), nil
}

// DeleteItinerary handles DELETE /itineraries/{itineraryId}.
func (s *Server) DeleteItinerary(ctx context.Context, req gen.DeleteItineraryRequestObject) (gen.DeleteItineraryResponseObject, error) {
	if err := s.itineraries.Delete(ctx, req.ItineraryId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteItinerary404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		return nil, err
	}
	return gen.DeleteItinerary204Response{}, nil
}

// SaveItineraryItems handles POST /itineraries/{itineraryId}/save.
// Flights are stored verbatim; items arrive already projected to {name, price, type}.
func (s *Server) SaveItineraryItems(ctx context.Context, req gen.SaveItineraryItemsRequestObject) (gen.SaveItineraryItemsResponseObject, error) {
	items, flights, err := requestToEntries(req.Body)
	if err != nil {
		return gen.SaveItineraryItems422JSONResponse(requestBody(err.Error())), nil
	}

	sum, err := s.itineraries.SaveItems(ctx, req.ItineraryId, items, flights)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SaveItineraryItems404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.SaveItineraryItems422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.SaveItineraryItems200JSONResponse{
		ItineraryId:  sum.ItineraryID,
		ItemsSaved:   sum.ItemsSaved,
		FlightsSaved: sum.FlightsSaved,
		TotalCost:    sum.TotalCost,
	}, nil
}

// GetItineraryItems handles GET /itineraries/{itineraryId}/items.
func (s *Server) GetItineraryItems(ctx context.Context, req gen.GetItineraryItemsRequestObject) (gen.GetItineraryItemsResponseObject, error) {
	detail, err := s.itineraries.Items(ctx, req.ItineraryId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItineraryItems404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		return nil, err
	}

	resp := gen.GetItineraryItems200JSONResponse{
		Itinerary: itineraryToResponse(detail.Itinerary),
		Items:     make([]gen.ItineraryItem, len(detail.Items)),
		Flights:   make([]gen.SavedFlight, len(detail.Flights)),
	}
	for i, it := range detail.Items {
		resp.Items[i] = gen.ItineraryItem{
			Id:        it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Type:      gen.ItemType(it.Kind),
			CreatedAt: it.CreatedAt,
		}
	}
	for i, f := range detail.Flights {
		var data map[string]interface{}
		if err := json.Unmarshal(f.Data, &data); err != nil {
			return nil, fmt.Errorf("handler.GetItineraryItems: flight %s: %w", f.ID, err)
		}
		resp.Flights[i] = gen.SavedFlight{
			Id:        f.ID,
			Data:      data,
			Price:     f.Price,
			CreatedAt: f.CreatedAt,
		}
	}
	return resp, nil
}

// GetItineraryBudget handles GET /itineraries/{itineraryId}/budget.
func (s *Server) GetItineraryBudget(ctx context.Context, req gen.GetItineraryBudgetRequestObject) (gen.GetItineraryBudgetResponseObject, error) {
	b, err := s.itineraries.Budget(ctx, req.ItineraryId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItineraryBudget404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		return nil, err
	}
	return gen.GetItineraryBudget200JSONResponse{
		ItineraryId:     b.ItineraryID,
		ItemsTotal:      b.Items,
		FlightsTotal:    b.Flights,
		EstimatedBudget: b.Total,
	}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToEntries converts a save body into domain items and raw flights.
func requestToEntries(body *gen.SaveItemsRequest) ([]domain.ItineraryItem, []json.RawMessage, error) {
	if body == nil {
		return nil, nil, errors.New("request body is required")
	}
	var items []domain.ItineraryItem
	if body.Items != nil {
		items = make([]domain.ItineraryItem, len(*body.Items))
		for i, it := range *body.Items {
			items[i] = domain.ItineraryItem{Name: it.Name, Price: it.Price, Kind: domain.ItemKind(it.Type)}
		}
	}
	var flights []json.RawMessage
	if body.Flights != nil {
		flights = make([]json.RawMessage, len(*body.Flights))
		for i, f := range *body.Flights {
			raw, err := json.Marshal(f)
			if err != nil {
				return nil, nil, fmt.Errorf("flights[%d]: %w", i, err)
			}
			flights[i] = raw
		}
	}
	return items, flights, nil
}

// itineraryToResponse converts a domain.Itinerary into the generated gen.Itinerary type.
func itineraryToResponse(it domain.Itinerary) gen.Itinerary {
	resp := gen.Itinerary{
		ItineraryId: it.ID,
		Title:       it.Title,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
		Origin:      optional(it.Origin),
		Destination: optional(it.Destination),
	}
	if it.DepartureDate != nil {
		resp.DepartureDate = &openapi_types.Date{Time: *it.DepartureDate}
	}
	if it.ReturnDate != nil {
		resp.ReturnDate = &openapi_types.Date{Time: *it.ReturnDate}
	}
	return resp
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional returns nil for the zero value so the field is omitted from JSON.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
