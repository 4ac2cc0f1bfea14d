// export.go implements GET /itineraries/{itineraryId}/export.
// Returns every saved item and flight of one itinerary as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).

package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"itinerary_id", "itinerary_title", "departure_date", "return_date",
	"kind", "name", "price", "saved_at",
}

// ExportItinerary implements GET /itineraries/{itineraryId}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportItinerary(ctx context.Context, req gen.ExportItineraryRequestObject) (gen.ExportItineraryResponseObject, error) {
	rows, err := s.itineraries.Export(ctx, req.ItineraryId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ExportItinerary404JSONResponse(notFoundBody(itineraryNotFound)), nil
		}
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		return buildCSVResponse(req.ItineraryId, rows), nil
	}
	return buildJSONResponse(rows), nil
}

func buildJSONResponse(rows []domain.ExportRow) gen.ExportItinerary200JSONResponse {
	out := make(gen.ExportItinerary200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes rows as CSV behind a header row, served as the
// download itinerary-<id>.csv.
func buildCSVResponse(id int64, rows []domain.ExportRow) gen.ExportItinerary200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.ExportItinerary200TextcsvResponse{
		Body: &buf,
		Headers: gen.ExportItinerary200ResponseHeaders{
			ContentDisposition: `attachment; filename="itinerary-` + strconv.FormatInt(id, 10) + `.csv"`,
		},
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a row to the generated type. Empty entry fields
// become nil pointers so the empty-itinerary row carries only itinerary fields.
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	row := gen.ExportRow{
		ItineraryId:    r.ItineraryID,
		ItineraryTitle: r.ItineraryTitle,
		DepartureDate:  parseDate(r.DepartureDate),
		ReturnDate:     parseDate(r.ReturnDate),
		SavedAt:        r.SavedAt,
	}
	if r.Kind != "" {
		row.Kind = &r.Kind
		row.Name = &r.Name
		row.Price = &r.Price
	}
	return row
}

func domainRowToCSVRecord(r domain.ExportRow) []string {
	price := ""
	if r.Kind != "" {
		price = strconv.FormatFloat(r.Price, 'f', 2, 64)
	}
	return []string{
		strconv.FormatInt(r.ItineraryID, 10),
		r.ItineraryTitle,
		r.DepartureDate,
		r.ReturnDate,
		r.Kind,
		r.Name,
		price,
		formatOptionalTime(r.SavedAt),
	}
}

// parseDate returns nil for "" and for anything that is not a date.
func parseDate(s string) *openapi_types.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &openapi_types.Date{Time: t}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
