package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

func TestString_FirstPresentCandidateWins(t *testing.T) {
	r := record.Record{"title": "Secondary", "name": "Primary"}

	assert.Equal(t, "Primary", record.String(r, record.NameKeys...))
}

func TestString_FallsBackPastBlankValues(t *testing.T) {
	r := record.Record{"name": "   ", "title": "Belém Tower"}

	assert.Equal(t, "Belém Tower", record.String(r, record.NameKeys...))
}

func TestString_NormalizesToNFC(t *testing.T) {
	// "e" followed by a combining acute accent.
	r := record.Record{"name": "Cafe\u0301"}

	assert.Equal(t, "Caf\u00e9", record.String(r, "name"))
}

func TestString_FormatsNumbers(t *testing.T) {
	r := record.Record{"id": float64(42)}

	assert.Equal(t, "42", record.String(r, record.AttractionIDKeys...))
}

func TestString_NoMatch(t *testing.T) {
	assert.Equal(t, "", record.String(record.Record{}, "name"))
}

func TestNumber_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		want float64
		ok   bool
	}{
		{"nightly price first", record.Record{"price_per_night": 120.0, "price": 99.0}, 120, true},
		{"second candidate", record.Record{"nightly_price": 80.0}, 80, true},
		{"generic price", record.Record{"price": 55.5}, 55.5, true},
		{"numeric string", record.Record{"price": "$1,200.50"}, 1200.5, true},
		{"json number", record.Record{"price": json.Number("17")}, 17, true},
		{"skips unparseable", record.Record{"price_per_night": "n/a", "price": 10.0}, 10, true},
		{"none present", record.Record{"name": "x"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := record.Number(tt.rec, record.PriceKeys...)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestNumberOr_Default(t *testing.T) {
	assert.Equal(t, 0.0, record.NumberOr(record.Record{}, 0, record.PriceKeys...))
}

func TestHas_IgnoresNull(t *testing.T) {
	r := record.Record{"rating": nil}

	assert.False(t, record.Has(r, "rating"))
	assert.True(t, record.Has(record.Record{"rating": 0.0}, "rating"))
}
