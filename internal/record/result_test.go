package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

func TestIsHotelLike(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		want bool
	}{
		{"hotel id", record.Record{"name": "x", "hotel_id": "g1-d2"}, true},
		{"nightly price", record.Record{"name": "x", "price_per_night": 90.0}, true},
		{"rating", record.Record{"name": "x", "rating": 4.5}, true},
		{"address", record.Record{"name": "x", "address": "1 Main St"}, true},
		{"plain attraction", record.Record{"xid": "W123", "name": "Castle", "rate": 3.0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.IsHotelLike(tt.rec))
		})
	}
}

func TestParse_Attraction(t *testing.T) {
	r := record.Record{"xid": "N1", "name": "Castle", "thumbnail": "https://img/c.jpg", "lat": 38.7, "lon": -9.1}

	res, err := record.Parse(r)

	require.NoError(t, err)
	assert.Equal(t, record.KindAttraction, res.Kind)
	require.NotNil(t, res.Attraction)
	assert.Nil(t, res.Hotel)
	assert.Equal(t, "N1", res.Attraction.ID)
	assert.Equal(t, "https://img/c.jpg", res.Attraction.ImageURL)
	require.NotNil(t, res.Attraction.Lat)
	assert.InDelta(t, 38.7, *res.Attraction.Lat, 0.0001)
}

func TestParse_Hotel(t *testing.T) {
	r := record.Record{"hotel_key": "g1-d2", "title": "Hotel A", "nightly_price": "120", "photo": "p.jpg"}

	res, err := record.Parse(r)

	// nightly_price alone is not a hotel marker; price_per_night is.
	require.NoError(t, err)
	assert.Equal(t, record.KindAttraction, res.Kind)

	r["price_per_night"] = 130.0
	res, err = record.Parse(r)

	require.NoError(t, err)
	assert.Equal(t, record.KindHotel, res.Kind)
	require.NotNil(t, res.Hotel)
	assert.Equal(t, "g1-d2", res.Hotel.ID)
	assert.Equal(t, "Hotel A", res.Hotel.Name)
	assert.InDelta(t, 130, res.Hotel.PricePerNight, 0.0001)
	assert.Equal(t, "p.jpg", res.Hotel.ImageURL)
}

func TestParse_MissingName(t *testing.T) {
	_, err := record.Parse(record.Record{"xid": "N1"})

	assert.ErrorIs(t, err, record.ErrInvalid)
}

func TestParseHotel_NegativePriceRejected(t *testing.T) {
	_, err := record.ParseHotel(record.Record{"name": "Hotel A", "price_per_night": -5.0})

	assert.ErrorIs(t, err, record.ErrInvalid)
}

func TestNormalizeAttractions_DropsHotelLike(t *testing.T) {
	recs := []record.Record{
		{"xid": "N1", "name": "Castle"},
		{"hotel_id": "h1", "name": "Hotel A", "price_per_night": 120.0},
		{"xid": "N2"},
		{"id": 7.0, "title": "Museum", "image": "m.jpg"},
	}

	set := record.NormalizeAttractions(recs)

	require.Len(t, set.Attractions, 2)
	assert.Equal(t, "Castle", set.Attractions[0].Name)
	assert.Equal(t, "Museum", set.Attractions[1].Name)
	assert.Equal(t, "7", set.Attractions[1].ID)
	assert.Equal(t, 1, set.HotelLike)
	assert.Equal(t, 1, set.Invalid)
}

func TestNormalizeHotels(t *testing.T) {
	recs := []record.Record{
		{"hotel_id": "h1", "name": "Hotel A", "price_per_night": 120.0},
		{"hotel_id": "h2"},
	}

	hotels, invalid := record.NormalizeHotels(recs)

	require.Len(t, hotels, 1)
	assert.Equal(t, "h1", hotels[0].ID)
	assert.Equal(t, 1, invalid)
}
