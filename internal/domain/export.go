package domain

import "time"

// ExportKindFlight is the ExportRow.Kind of a saved flight. Items use their
// ItemKind.
const ExportKindFlight = "flight"

// ExportRow is a single row in an itinerary export.
// It is a flat, denormalized view: one row per saved item or flight, with the
// itinerary fields repeated on every row. An itinerary with nothing saved
// yields one row with zero values for the entry fields.
type ExportRow struct {
	// Itinerary fields, repeated for every entry.
	ItineraryID    int64
	ItineraryTitle string
	DepartureDate  string // "2006-01-02", empty when unset
	ReturnDate     string

	// Entry fields.
	Kind    string
	Name    string
	Price   float64
	SavedAt *time.Time
}
