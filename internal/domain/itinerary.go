// Package domain contains the core data types for the plan-it-ahead API.
// This package has no dependencies beyond uuid and is imported by every other
// server-side package (repo, service, handler, provider).
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Itinerary is the server-persisted record of a planned trip.
// Dates are nil until the traveller has picked flights.
type Itinerary struct {
	ID            int64
	Title         string
	Origin        string
	Destination   string
	DepartureDate *time.Time
	ReturnDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemKind names the non-flight entries an itinerary can hold.
type ItemKind string

const (
	ItemKindHotel      ItemKind = "hotel"
	ItemKindAttraction ItemKind = "attraction"
)

// Valid reports whether k is one of the known item kinds.
func (k ItemKind) Valid() bool {
	return k == ItemKindHotel || k == ItemKindAttraction
}

// ItineraryItem is a hotel or attraction saved into an itinerary in the
// normalized {name, price, type} shape.
type ItineraryItem struct {
	ID          uuid.UUID
	ItineraryID int64
	Name        string
	Price       float64
	Kind        ItemKind
	CreatedAt   time.Time
}

// SavedFlight is a flight record saved verbatim. Price is extracted from the
// raw record at save time so budgets can be computed without re-parsing.
type SavedFlight struct {
	ID          uuid.UUID
	ItineraryID int64
	Data        json.RawMessage
	Price       float64
	CreatedAt   time.Time
}

// SaveSummary is returned after a batch of items and flights is persisted.
type SaveSummary struct {
	ItineraryID  int64
	ItemsSaved   int
	FlightsSaved int
	TotalCost    float64
}

// Budget is the estimated cost of an itinerary: the sum of every saved
// item and flight price.
type Budget struct {
	ItineraryID int64
	Items       float64
	Flights     float64
	Total       float64
}

// ItineraryDetail is an itinerary together with everything saved into it.
type ItineraryDetail struct {
	Itinerary
	Items   []ItineraryItem
	Flights []SavedFlight
}

// FlightDates is the input for creating an itinerary from the dates of the
// flights the traveller picked. Title, Origin and Destination are optional.
type FlightDates struct {
	DepartureDate *time.Time
	ReturnDate    *time.Time
	Title         string
	Origin        string
	Destination   string
}
