// Package record turns the loosely shaped JSON objects returned by search
// providers into typed values.
//
// Providers disagree on field names ("name" vs "title", "price_per_night" vs
// "price"), so every field is read through an ordered list of candidate keys:
// the first candidate that is present and usable wins.
package record

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Record is a single JSON object as decoded by encoding/json.
type Record map[string]any

// Candidate key lists, in priority order.
var (
	NameKeys         = []string{"name", "title"}
	PriceKeys        = []string{"price_per_night", "nightly_price", "price"}
	ImageKeys        = []string{"image_url", "image", "thumbnail", "photo"}
	AttractionIDKeys = []string{"xid", "id"}
	HotelIDKeys      = []string{"hotel_id", "hotel_key", "id"}
	LatKeys          = []string{"lat", "latitude"}
	LonKeys          = []string{"lon", "lng", "longitude"}

	// hotelMarkerKeys are the fields whose presence marks a record as hotel-like.
	hotelMarkerKeys = []string{"hotel_id", "price_per_night", "rating", "address"}
)

// String returns the first candidate that holds a non-blank string or a
// number, trimmed and NFC-normalized. Numbers are formatted without a
// trailing ".0" so numeric ids read naturally. Returns "" when no candidate
// matches.
func String(r Record, keys ...string) string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return norm.NFC.String(s)
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}

// Number returns the first candidate that holds a number or a numeric
// string. Strings may carry a leading currency sign and thousands separators
// ("$1,200.50"). ok is false when no candidate matches.
func Number(r Record, keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := toFloat(r[k]); ok {
			return f, true
		}
	}
	return 0, false
}

// NumberOr is Number with a default for the no-match case.
func NumberOr(r Record, def float64, keys ...string) float64 {
	if f, ok := Number(r, keys...); ok {
		return f
	}
	return def
}

// OptionalNumber is Number returning nil instead of ok=false.
func OptionalNumber(r Record, keys ...string) *float64 {
	if f, ok := Number(r, keys...); ok {
		return &f
	}
	return nil
}

// Has reports whether any of keys is present with a non-null value.
func Has(r Record, keys ...string) bool {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return true
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimLeft(s, "$€£")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}
