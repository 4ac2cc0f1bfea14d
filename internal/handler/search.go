package handler

import (
	"context"
	"errors"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler/gen"
)

const (
	noAttractionsMsg = "No attractions found. Try a different location or increase the search radius."
	noHotelsMsg      = "No hotels found. Try adjusting your search criteria."
)

// SearchAttractions handles GET /search/attractions.
// An empty result is a 200 with a hint in msg, not an error.
func (s *Server) SearchAttractions(ctx context.Context, req gen.SearchAttractionsRequestObject) (gen.SearchAttractionsResponseObject, error) {
	p := req.Params
	out, err := s.search.Attractions(ctx, domain.AttractionQuery{
		Location: deref(p.Location),
		Lat:      p.Lat,
		Lon:      p.Lon,
		Radius:   derefInt(p.Radius),
		Limit:    derefInt(p.Limit),
		Category: deref(p.Category),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.SearchAttractions422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.SearchAttractions502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	resp := gen.SearchAttractions200JSONResponse{
		Attractions: make([]gen.Attraction, len(out)),
		Count:       len(out),
	}
	for i, a := range out {
		resp.Attractions[i] = attractionToResponse(a)
	}
	if len(out) == 0 {
		msg := noAttractionsMsg
		resp.Msg = &msg
	}
	return resp, nil
}

// GetAttraction handles GET /search/attractions/{xid}.
func (s *Server) GetAttraction(ctx context.Context, req gen.GetAttractionRequestObject) (gen.GetAttractionResponseObject, error) {
	d, err := s.search.AttractionDetail(ctx, req.Xid)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
			return gen.GetAttraction404JSONResponse(notFoundBody("attraction not found")), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.GetAttraction502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	categories := d.Categories
	if categories == nil {
		categories = []string{}
	}
	return gen.GetAttraction200JSONResponse{
		Xid:         d.XID,
		Name:        d.Name,
		Category:    optional(d.Category),
		Categories:  categories,
		Description: optional(d.Description),
		Address:     optional(d.Address),
		Lat:         d.Lat,
		Lon:         d.Lon,
		Rate:        optional(d.Rate),
		ImageUrl:    optional(d.ImageURL),
		Url:         optional(d.URL),
		Wikipedia:   optional(d.Wikipedia),
	}, nil
}

// SearchDestinations handles GET /search/destinations.
func (s *Server) SearchDestinations(ctx context.Context, req gen.SearchDestinationsRequestObject) (gen.SearchDestinationsResponseObject, error) {
	out, err := s.search.Destinations(ctx, deref(req.Params.Query))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.SearchDestinations422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.SearchDestinations502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	resp := gen.SearchDestinations200JSONResponse{
		Destinations: make([]gen.Destination, len(out)),
		Count:        len(out),
	}
	for i, d := range out {
		resp.Destinations[i] = gen.Destination{
			Name:    d.Name,
			Country: optional(d.Country),
			Lat:     d.Lat,
			Lon:     d.Lon,
			Type:    d.Type,
		}
	}
	return resp, nil
}

// SearchHotels handles GET /search/hotels.
func (s *Server) SearchHotels(ctx context.Context, req gen.SearchHotelsRequestObject) (gen.SearchHotelsResponseObject, error) {
	p := req.Params
	out, err := s.search.Hotels(ctx, domain.HotelQuery{
		Location: deref(p.Location),
		CheckIn:  deref(p.CheckIn),
		CheckOut: deref(p.CheckOut),
		Guests:   derefInt(p.Guests),
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
		Limit:    derefInt(p.Limit),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.SearchHotels422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.SearchHotels502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	resp := gen.SearchHotels200JSONResponse{
		Hotels: make([]gen.Hotel, len(out)),
		Count:  len(out),
	}
	for i, h := range out {
		resp.Hotels[i] = hotelToResponse(h)
	}
	if len(out) == 0 {
		msg := noHotelsMsg
		resp.Msg = &msg
	}
	return resp, nil
}

// GetHotel handles GET /search/hotels/{hotelKey}.
func (s *Server) GetHotel(ctx context.Context, req gen.GetHotelRequestObject) (gen.GetHotelResponseObject, error) {
	h, err := s.search.HotelDetail(ctx, req.HotelKey)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
			return gen.GetHotel404JSONResponse(notFoundBody("hotel not found")), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.GetHotel502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}
	return gen.GetHotel200JSONResponse(hotelToResponse(h)), nil
}

// GetHotelPricing handles GET /search/hotels/{hotelKey}/pricing.
func (s *Server) GetHotelPricing(ctx context.Context, req gen.GetHotelPricingRequestObject) (gen.GetHotelPricingResponseObject, error) {
	p := req.Params
	out, err := s.search.HotelPricing(ctx, domain.HotelRateQuery{
		HotelKey: req.HotelKey,
		CheckIn:  deref(p.CheckIn),
		CheckOut: deref(p.CheckOut),
		Guests:   derefInt(p.Guests),
		Rooms:    derefInt(p.Rooms),
		Currency: deref(p.Currency),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.GetHotelPricing422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.GetHotelPricing404JSONResponse(notFoundBody("pricing not available")), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.GetHotelPricing502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	resp := gen.GetHotelPricing200JSONResponse{
		HotelKey:  out.HotelKey,
		CheckIn:   out.CheckIn,
		CheckOut:  out.CheckOut,
		Guests:    out.Guests,
		Rooms:     out.Rooms,
		Currency:  out.Currency,
		Rates:     make([]gen.HotelRate, len(out.Rates)),
		BestRate:  gen.HotelRate(out.Best),
		Timestamp: out.Timestamp,
	}
	for i, r := range out.Rates {
		resp.Rates[i] = gen.HotelRate(r)
	}
	return resp, nil
}

// SearchActivities handles GET /search/activities.
func (s *Server) SearchActivities(ctx context.Context, req gen.SearchActivitiesRequestObject) (gen.SearchActivitiesResponseObject, error) {
	p := req.Params
	out, err := s.search.Activities(ctx, domain.ActivityQuery{
		Lat:    p.Lat,
		Lon:    p.Lon,
		Radius: derefInt(p.Radius),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.SearchActivities422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.SearchActivities502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	resp := gen.SearchActivities200JSONResponse{
		Activities: make([]gen.Activity, len(out)),
		Count:      len(out),
	}
	for i, a := range out {
		resp.Activities[i] = gen.Activity{
			Id:          a.ID,
			Name:        a.Name,
			Description: optional(a.Description),
			Price:       optional(a.Price),
			Currency:    optional(a.Currency),
			ImageUrl:    optional(a.ImageURL),
			BookingLink: optional(a.BookingLink),
			Lat:         a.Lat,
			Lon:         a.Lon,
		}
	}
	return resp, nil
}

func hotelToResponse(h domain.Hotel) gen.Hotel {
	return gen.Hotel{
		HotelId:           h.HotelID,
		Name:              h.Name,
		Location:          optional(h.Location),
		Rating:            h.Rating,
		ReviewCount:       h.ReviewCount,
		PricePerNight:     h.PricePerNight,
		PriceMin:          optional(h.PriceMin),
		PriceMax:          optional(h.PriceMax),
		ImageUrl:          optional(h.ImageURL),
		Url:               optional(h.URL),
		AccommodationType: optional(h.AccommodationType),
		Lat:               h.Lat,
		Lon:               h.Lon,
	}
}

func attractionToResponse(a domain.Attraction) gen.Attraction {
	return gen.Attraction{
		Xid:         a.XID,
		Name:        a.Name,
		Category:    optional(a.Category),
		Description: optional(a.Description),
		Lat:         a.Lat,
		Lon:         a.Lon,
		Distance:    optional(a.Distance),
		Rate:        optional(a.Rate),
		ImageUrl:    optional(a.ImageURL),
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
