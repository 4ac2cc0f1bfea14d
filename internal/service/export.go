package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

// flightNameKeys label a raw flight record in an export.
var flightNameKeys = []string{"flight_number", "name", "airline", "id"}

// Export returns one ExportRow per saved item, then one per saved flight.
// An itinerary with nothing saved contributes one row with empty entry fields.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (s *ItineraryService) Export(ctx context.Context, id int64) ([]domain.ExportRow, error) {
	detail, err := s.Items(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Export: %w", err)
	}

	base := domain.ExportRow{
		ItineraryID:    detail.ID,
		ItineraryTitle: detail.Title,
		DepartureDate:  formatDate(detail.DepartureDate),
		ReturnDate:     formatDate(detail.ReturnDate),
	}
	if len(detail.Items) == 0 && len(detail.Flights) == 0 {
		return []domain.ExportRow{base}, nil
	}

	rows := make([]domain.ExportRow, 0, len(detail.Items)+len(detail.Flights))
	for _, it := range detail.Items {
		row := base
		row.Kind = string(it.Kind)
		row.Name = it.Name
		row.Price = it.Price
		row.SavedAt = &it.CreatedAt
		rows = append(rows, row)
	}
	for _, f := range detail.Flights {
		var rec record.Record
		// Unreadable flight data still exports, just without a name.
		_ = json.Unmarshal(f.Data, &rec)
		row := base
		row.Kind = domain.ExportKindFlight
		row.Name = record.String(rec, flightNameKeys...)
		row.Price = f.Price
		row.SavedAt = &f.CreatedAt
		rows = append(rows, row)
	}
	return rows, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
