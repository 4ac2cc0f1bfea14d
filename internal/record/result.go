package record

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned by Parse when a record lacks a field its variant requires.
var ErrInvalid = errors.New("invalid search record")

// Kind discriminates the Result variants.
type Kind string

const (
	KindAttraction Kind = "attraction"
	KindHotel      Kind = "hotel"
)

// Attraction is the normalized attraction variant.
type Attraction struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	Rate        float64  `json:"rate,omitempty"`
	Raw         Record   `json:"-"`
}

// Hotel is the normalized hotel variant.
type Hotel struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name" validate:"required"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	Rating        float64  `json:"rating,omitempty" validate:"gte=0"`
	Address       string   `json:"address,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lon           *float64 `json:"lon,omitempty"`
	Raw           Record   `json:"-"`
}

// Result is a search record parsed into exactly one variant. Exactly one of
// Attraction or Hotel is set, matching Kind.
type Result struct {
	Kind       Kind
	Attraction *Attraction
	Hotel      *Hotel
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsHotelLike reports whether r carries any hotel marker field: a hotel id,
// a nightly price, a rating, or an address.
func IsHotelLike(r Record) bool {
	return Has(r, hotelMarkerKeys...)
}

// Classify returns the variant r should be parsed as.
func Classify(r Record) Kind {
	if IsHotelLike(r) {
		return KindHotel
	}
	return KindAttraction
}

// Parse classifies r and builds the matching variant, validating its
// required fields. Errors wrap ErrInvalid.
func Parse(r Record) (Result, error) {
	switch Classify(r) {
	case KindHotel:
		h, err := ParseHotel(r)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindHotel, Hotel: &h}, nil
	default:
		a, err := ParseAttraction(r)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindAttraction, Attraction: &a}, nil
	}
}

// ParseAttraction reads r as an attraction regardless of its markers.
func ParseAttraction(r Record) (Attraction, error) {
	a := Attraction{
		ID:          String(r, AttractionIDKeys...),
		Name:        String(r, NameKeys...),
		Category:    String(r, "category", "type", "kinds"),
		Description: String(r, "description"),
		ImageURL:    String(r, ImageKeys...),
		Lat:         OptionalNumber(r, LatKeys...),
		Lon:         OptionalNumber(r, LonKeys...),
		Rate:        NumberOr(r, 0, "rate"),
		Raw:         r,
	}
	if err := check(a); err != nil {
		return Attraction{}, err
	}
	return a, nil
}

// ParseHotel reads r as a hotel regardless of its markers.
func ParseHotel(r Record) (Hotel, error) {
	h := Hotel{
		ID:            String(r, HotelIDKeys...),
		Name:          String(r, NameKeys...),
		PricePerNight: NumberOr(r, 0, PriceKeys...),
		Rating:        NumberOr(r, 0, "rating"),
		Address:       String(r, "address", "location"),
		ImageURL:      String(r, ImageKeys...),
		Lat:           OptionalNumber(r, LatKeys...),
		Lon:           OptionalNumber(r, LonKeys...),
		Raw:           r,
	}
	if err := check(h); err != nil {
		return Hotel{}, err
	}
	return h, nil
}

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// AttractionSet is the outcome of normalizing an attractions response.
type AttractionSet struct {
	Attractions []Attraction
	// HotelLike counts records dropped because they looked like hotels.
	HotelLike int
	// Invalid counts records dropped because they had no usable name.
	Invalid int
}

// NormalizeAttractions parses every record as an attraction, dropping
// hotel-like records and records that fail validation. Order is preserved.
func NormalizeAttractions(recs []Record) AttractionSet {
	var set AttractionSet
	for _, r := range recs {
		if IsHotelLike(r) {
			set.HotelLike++
			continue
		}
		a, err := ParseAttraction(r)
		if err != nil {
			set.Invalid++
			continue
		}
		set.Attractions = append(set.Attractions, a)
	}
	return set
}

// NormalizeHotels parses every record as a hotel, dropping records that fail
// validation. It returns the survivors and the number dropped.
func NormalizeHotels(recs []Record) ([]Hotel, int) {
	var (
		out     []Hotel
		invalid int
	)
	for _, r := range recs {
		h, err := ParseHotel(r)
		if err != nil {
			invalid++
			continue
		}
		out = append(out, h)
	}
	return out, invalid
}
