package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

const (
	defaultAttractionRadius = 5000
	maxAttractionRadius     = 50000
	defaultSearchLimit      = 20
	maxSearchLimit          = 100
	defaultActivityRadius   = 1
	maxActivityRadius       = 20
	defaultPricingGuests    = 2
	defaultPricingRooms     = 1
	defaultCurrency         = "USD"

	// imageLookups bounds concurrent image enrichment calls.
	imageLookups = 4
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// AttractionProvider is the consumer-defined interface over the attractions source.
type AttractionProvider interface {
	SearchAttractions(ctx context.Context, q domain.AttractionQuery) ([]domain.Attraction, error)
	AttractionDetail(ctx context.Context, xid string) (domain.AttractionDetail, error)
	SearchDestinations(ctx context.Context, query string) ([]domain.Destination, error)
}

// HotelProvider is the consumer-defined interface over the hotels source.
type HotelProvider interface {
	SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error)
	HotelDetail(ctx context.Context, key string) (domain.Hotel, error)
	HotelRates(ctx context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error)
}

// ActivityProvider is the consumer-defined interface over the activities source.
type ActivityProvider interface {
	SearchActivities(ctx context.Context, q domain.ActivityQuery) ([]domain.Activity, error)
}

// ImageFinder looks up a representative image for a place.
// It returns "" when nothing suitable is found.
type ImageFinder interface {
	FindImage(ctx context.Context, query, near string) (string, error)
}

// SearchService validates search queries and forwards them to the providers.
type SearchService struct {
	attractions AttractionProvider
	hotels      HotelProvider
	activities  ActivityProvider
	images      ImageFinder
	log         *slog.Logger
}

// NewSearchService constructs a SearchService. images may be nil, in which
// case attractions are returned without image enrichment.
func NewSearchService(a AttractionProvider, h HotelProvider, act ActivityProvider, images ImageFinder, log *slog.Logger) *SearchService {
	if log == nil {
		log = slog.Default()
	}
	return &SearchService{attractions: a, hotels: h, activities: act, images: images, log: log}
}

// Attractions searches points of interest by location name or coordinate.
// Attractions without an image get one from the ImageFinder; lookup failures
// leave the image empty and never fail the search.
func (s *SearchService) Attractions(ctx context.Context, q domain.AttractionQuery) ([]domain.Attraction, error) {
	q.Location = strings.TrimSpace(q.Location)
	q.Category = strings.TrimSpace(q.Category)
	hasPoint := q.Lat != nil && q.Lon != nil
	if q.Location == "" && !hasPoint {
		return nil, fmt.Errorf("%w: location or lat/lon is required", domain.ErrValidation)
	}
	if hasPoint {
		if err := validatePoint(*q.Lat, *q.Lon); err != nil {
			return nil, err
		}
	}
	var err error
	if q.Radius, err = bounded("radius", q.Radius, defaultAttractionRadius, maxAttractionRadius); err != nil {
		return nil, err
	}
	if q.Limit, err = bounded("limit", q.Limit, defaultSearchLimit, maxSearchLimit); err != nil {
		return nil, err
	}

	out, err := s.attractions.SearchAttractions(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Attractions: %w", err)
	}
	if out == nil {
		return []domain.Attraction{}, nil
	}
	s.enrichImages(ctx, out, q.Location)
	return out, nil
}

// enrichImages fills missing ImageURLs in place. Each goroutine writes only
// its own index.
func (s *SearchService) enrichImages(ctx context.Context, out []domain.Attraction, near string) {
	if s.images == nil {
		return
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageLookups)
	for i := range out {
		if out[i].ImageURL != "" || out[i].Name == "" {
			continue
		}
		i := i
		g.Go(func() error {
			img, err := s.images.FindImage(gctx, out[i].Name, near)
			if err != nil {
				s.log.WarnContext(ctx, "image lookup failed", "name", out[i].Name, "err", err)
				return nil
			}
			out[i].ImageURL = img
			return nil
		})
	}
	_ = g.Wait()
}

// AttractionDetail returns the expanded record for one attraction.
// Returns domain.ErrNotFound if the provider does not know the id.
func (s *SearchService) AttractionDetail(ctx context.Context, xid string) (domain.AttractionDetail, error) {
	xid = strings.TrimSpace(xid)
	if xid == "" {
		return domain.AttractionDetail{}, fmt.Errorf("%w: xid is required", domain.ErrValidation)
	}
	d, err := s.attractions.AttractionDetail(ctx, xid)
	if err != nil {
		return domain.AttractionDetail{}, fmt.Errorf("service.SearchService.AttractionDetail: %w", err)
	}
	return d, nil
}

// Destinations resolves a free-text place name.
func (s *SearchService) Destinations(ctx context.Context, query string) ([]domain.Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	out, err := s.attractions.SearchDestinations(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Destinations: %w", err)
	}
	if out == nil {
		return []domain.Destination{}, nil
	}
	return out, nil
}

// Hotels searches accommodation for a stay. Location and both dates are
// required; check_out must be after check_in.
func (s *SearchService) Hotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	q.Location = strings.TrimSpace(q.Location)
	if q.Location == "" || q.CheckIn == "" || q.CheckOut == "" {
		return nil, fmt.Errorf("%w: location, check_in and check_out are required", domain.ErrValidation)
	}
	if err := validateStay(q.CheckIn, q.CheckOut); err != nil {
		return nil, err
	}
	if q.Guests == 0 {
		q.Guests = 1
	}
	if q.Guests < 0 {
		return nil, fmt.Errorf("%w: guests must be positive", domain.ErrValidation)
	}
	if (q.MinPrice != nil && *q.MinPrice < 0) || (q.MaxPrice != nil && *q.MaxPrice < 0) {
		return nil, fmt.Errorf("%w: prices must not be negative", domain.ErrValidation)
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, fmt.Errorf("%w: min_price must not exceed max_price", domain.ErrValidation)
	}
	var err error
	if q.Limit, err = bounded("limit", q.Limit, defaultSearchLimit, maxSearchLimit); err != nil {
		return nil, err
	}

	hotels, err := s.hotels.SearchHotels(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Hotels: %w", err)
	}
	if hotels == nil {
		return []domain.Hotel{}, nil
	}
	return hotels, nil
}

// HotelDetail returns one hotel by its provider key.
// Returns domain.ErrNotFound if the provider does not list it.
func (s *SearchService) HotelDetail(ctx context.Context, key string) (domain.Hotel, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Hotel{}, fmt.Errorf("%w: hotel key is required", domain.ErrValidation)
	}
	h, err := s.hotels.HotelDetail(ctx, key)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.SearchService.HotelDetail: %w", err)
	}
	return h, nil
}

// HotelPricing returns the live rates for a stay at one hotel. Guests default
// to 2, rooms to 1 and currency to USD.
func (s *SearchService) HotelPricing(ctx context.Context, q domain.HotelRateQuery) (domain.HotelPricing, error) {
	q.HotelKey = strings.TrimSpace(q.HotelKey)
	if q.HotelKey == "" {
		return domain.HotelPricing{}, fmt.Errorf("%w: hotel key is required", domain.ErrValidation)
	}
	if err := validateStay(q.CheckIn, q.CheckOut); err != nil {
		return domain.HotelPricing{}, err
	}
	var err error
	if q.Guests, err = bounded("guests", q.Guests, defaultPricingGuests, math.MaxInt); err != nil {
		return domain.HotelPricing{}, err
	}
	if q.Rooms, err = bounded("rooms", q.Rooms, defaultPricingRooms, math.MaxInt); err != nil {
		return domain.HotelPricing{}, err
	}
	q.Currency = strings.ToUpper(strings.TrimSpace(q.Currency))
	if q.Currency == "" {
		q.Currency = defaultCurrency
	}
	if !currencyCode.MatchString(q.Currency) {
		return domain.HotelPricing{}, fmt.Errorf("%w: currency must be a three-letter code", domain.ErrValidation)
	}

	p, err := s.hotels.HotelRates(ctx, q)
	if err != nil {
		return domain.HotelPricing{}, fmt.Errorf("service.SearchService.HotelPricing: %w", err)
	}
	return p, nil
}

// Activities returns tours and activities within q.Radius km of a coordinate.
func (s *SearchService) Activities(ctx context.Context, q domain.ActivityQuery) ([]domain.Activity, error) {
	if err := validatePoint(q.Lat, q.Lon); err != nil {
		return nil, err
	}
	var err error
	if q.Radius, err = bounded("radius", q.Radius, defaultActivityRadius, maxActivityRadius); err != nil {
		return nil, err
	}
	acts, err := s.activities.SearchActivities(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Activities: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}

// validateStay checks a check_in/check_out pair of YYYY-MM-DD dates.
func validateStay(checkIn, checkOut string) error {
	if checkIn == "" || checkOut == "" {
		return fmt.Errorf("%w: check_in and check_out are required", domain.ErrValidation)
	}
	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return fmt.Errorf("%w: check_in must be YYYY-MM-DD", domain.ErrValidation)
	}
	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return fmt.Errorf("%w: check_out must be YYYY-MM-DD", domain.ErrValidation)
	}
	if !out.After(in) {
		return fmt.Errorf("%w: check_out must be after check_in", domain.ErrValidation)
	}
	return nil
}

func validatePoint(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: lat/lon out of range", domain.ErrValidation)
	}
	return nil
}

// bounded applies def to a zero value and rejects negatives. Values above
// limit are capped.
func bounded(name string, v, def, limit int) (int, error) {
	switch {
	case v == 0:
		return def, nil
	case v < 0:
		return 0, fmt.Errorf("%w: %s must be positive", domain.ErrValidation, name)
	case v > limit:
		return limit, nil
	}
	return v, nil
}
