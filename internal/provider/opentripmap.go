package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

const openTripMapBaseURL = "https://api.opentripmap.com/0.1/en"

// descriptionLimit caps the description carried in search results; the
// detail endpoint returns the full text.
const descriptionLimit = 200

// OpenTripMap searches points of interest.
type OpenTripMap struct {
	c      *httpClient
	apiKey string
}

// NewOpenTripMap constructs an OpenTripMap client. An empty apiKey yields a
// client whose calls fail with domain.ErrUpstream.
func NewOpenTripMap(apiKey string, opts Options) *OpenTripMap {
	return &OpenTripMap{c: newHTTPClient("opentripmap", openTripMapBaseURL, opts), apiKey: apiKey}
}

type otmGeoname struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Fcode   string   `json:"fcode"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Status  string   `json:"status"`
}

type otmPreview struct {
	Source string `json:"source"`
}

type otmExtracts struct {
	Text string `json:"text"`
}

type otmFeatureCollection struct {
	Features []struct {
		Properties struct {
			XID      string       `json:"xid"`
			Name     string       `json:"name"`
			Kinds    string       `json:"kinds"`
			Dist     float64      `json:"dist"`
			Rate     float64      `json:"rate"`
			Preview  *otmPreview  `json:"preview"`
			Extracts *otmExtracts `json:"wikipedia_extracts"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

type otmDetail struct {
	XID     string `json:"xid"`
	Name    string `json:"name"`
	Kinds   string `json:"kinds"`
	Rate    any    `json:"rate"`
	URL     string `json:"url"`
	Address *struct {
		Display string `json:"display"`
	} `json:"address"`
	Point *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"point"`
	Preview   *otmPreview  `json:"preview"`
	Extracts  *otmExtracts `json:"wikipedia_extracts"`
	Wikipedia string       `json:"wikipedia"`
}

// SearchAttractions returns points of interest around q.Lat/q.Lon, or around
// the geocoded q.Location when no coordinate is given.
func (o *OpenTripMap) SearchAttractions(ctx context.Context, q domain.AttractionQuery) ([]domain.Attraction, error) {
	if o.apiKey == "" {
		return nil, notConfigured(o.c.name)
	}

	lat, lon := q.Lat, q.Lon
	if lat == nil || lon == nil {
		var geo otmGeoname
		if err := o.c.getJSON(ctx, "/places/geoname", url.Values{"name": {q.Location}, "apikey": {o.apiKey}}, &geo); err != nil {
			return nil, err
		}
		if geo.Lat == nil || geo.Lon == nil {
			// Unknown place names are answered with status NOT_FOUND and no point.
			return nil, nil
		}
		lat, lon = geo.Lat, geo.Lon
	}

	params := url.Values{
		"radius": {strconv.Itoa(q.Radius)},
		"lat":    {strconv.FormatFloat(*lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(*lon, 'f', -1, 64)},
		"limit":  {strconv.Itoa(q.Limit)},
		"format": {"geojson"},
		"apikey": {o.apiKey},
	}
	if q.Category != "" {
		params.Set("kinds", q.Category)
	}

	var fc otmFeatureCollection
	if err := o.c.getJSON(ctx, "/places/radius", params, &fc); err != nil {
		return nil, err
	}

	out := make([]domain.Attraction, 0, len(fc.Features))
	for _, f := range fc.Features {
		p := f.Properties
		a := domain.Attraction{
			XID:      p.XID,
			Name:     p.Name,
			Category: firstKind(p.Kinds),
			Distance: p.Dist,
			Rate:     p.Rate,
		}
		if a.Name == "" {
			a.Name = "Unknown"
		}
		if p.Extracts != nil {
			a.Description = truncate(p.Extracts.Text, descriptionLimit)
		}
		if p.Preview != nil {
			a.ImageURL = p.Preview.Source
		}
		if c := f.Geometry.Coordinates; len(c) >= 2 {
			lon, lat := c[0], c[1]
			a.Lat, a.Lon = &lat, &lon
		}
		out = append(out, a)
	}
	return out, nil
}

// SearchDestinations resolves a place name. OpenTripMap answers with at most
// one match; an unknown name yields no destinations.
func (o *OpenTripMap) SearchDestinations(ctx context.Context, query string) ([]domain.Destination, error) {
	if o.apiKey == "" {
		return nil, notConfigured(o.c.name)
	}

	var geo otmGeoname
	if err := o.c.getJSON(ctx, "/places/geoname", url.Values{"name": {query}, "apikey": {o.apiKey}}, &geo); err != nil {
		return nil, err
	}
	if geo.Lat == nil || geo.Lon == nil {
		return nil, nil
	}

	d := domain.Destination{
		Name:    geo.Name,
		Country: geo.Country,
		Lat:     geo.Lat,
		Lon:     geo.Lon,
		Type:    "location",
	}
	if d.Name == "" {
		d.Name = query
	}
	// GeoNames feature codes PPL, PPLA, PPLC... are populated places.
	if strings.HasPrefix(geo.Fcode, "PPL") {
		d.Type = "city"
	}
	return []domain.Destination{d}, nil
}

// AttractionDetail returns the expanded record for one point of interest.
func (o *OpenTripMap) AttractionDetail(ctx context.Context, xid string) (domain.AttractionDetail, error) {
	if o.apiKey == "" {
		return domain.AttractionDetail{}, notConfigured(o.c.name)
	}

	var d otmDetail
	if err := o.c.getJSON(ctx, "/places/xid/"+url.PathEscape(xid), url.Values{"apikey": {o.apiKey}}, &d); err != nil {
		return domain.AttractionDetail{}, err
	}
	if d.XID == "" {
		return domain.AttractionDetail{}, fmt.Errorf("%s: %w", o.c.name, domain.ErrNotFound)
	}

	out := domain.AttractionDetail{
		Attraction: domain.Attraction{
			XID:      d.XID,
			Name:     d.Name,
			Category: firstKind(d.Kinds),
			Rate:     parseRate(d.Rate),
		},
		URL:       d.URL,
		Wikipedia: d.Wikipedia,
	}
	if out.Name == "" {
		out.Name = "Unknown"
	}
	if d.Kinds != "" {
		out.Categories = strings.Split(d.Kinds, ",")
	}
	if d.Address != nil {
		out.Address = d.Address.Display
	}
	if d.Point != nil {
		lat, lon := d.Point.Lat, d.Point.Lon
		out.Lat, out.Lon = &lat, &lon
	}
	if d.Preview != nil {
		out.ImageURL = d.Preview.Source
	}
	if d.Extracts != nil {
		out.Description = d.Extracts.Text
	}
	return out, nil
}

func firstKind(kinds string) string {
	if kinds == "" {
		return ""
	}
	return strings.SplitN(kinds, ",", 2)[0]
}

// parseRate accepts the detail endpoint's rate, which is either a number or
// a string such as "3h".
func parseRate(v any) float64 {
	switch r := v.(type) {
	case float64:
		return r
	case string:
		f, _ := strconv.ParseFloat(strings.TrimRight(r, "h"), 64)
		return f
	}
	return 0
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
