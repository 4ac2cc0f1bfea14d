// Package client is the HTTP client for the plan-it-ahead API. It implements
// the collaborator interfaces of the planner package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 30 * time.Second

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// ServiceMessage returns the message from the response body.
func (e *APIError) ServiceMessage() string { return e.Message }

// Client talks to the API at a base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New returns a Client for baseURL. A nil httpClient gets DefaultTimeout.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient, log: log}
}

var (
	_ planner.ItineraryAPI = (*Client)(nil)
	_ planner.SearchAPI    = (*Client)(nil)
)

// ---- itineraries -----------------------------------------------------------

// ItineraryPage is one page of GET /itineraries.
type ItineraryPage struct {
	Data       []planner.Itinerary `json:"data"`
	Pagination struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
	} `json:"pagination"`
}

// ListItineraries returns one page of itineraries, newest first.
func (c *Client) ListItineraries(ctx context.Context, page, limit int) (ItineraryPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out ItineraryPage
	if err := c.do(ctx, http.MethodGet, "/itineraries", q, nil, &out); err != nil {
		return ItineraryPage{}, fmt.Errorf("client.ListItineraries: %w", err)
	}
	if out.Data == nil {
		out.Data = []planner.Itinerary{}
	}
	return out, nil
}

// CreateItinerary creates an itinerary with no body.
func (c *Client) CreateItinerary(ctx context.Context) (planner.Itinerary, error) {
	var out planner.Itinerary
	if err := c.do(ctx, http.MethodPost, "/itineraries", nil, nil, &out); err != nil {
		return planner.Itinerary{}, fmt.Errorf("client.CreateItinerary: %w", err)
	}
	return out, nil
}

// CreateItineraryFromFlightDates creates an itinerary spanning the flight dates.
func (c *Client) CreateItineraryFromFlightDates(ctx context.Context, req planner.FlightDatesRequest) (planner.Itinerary, error) {
	var out planner.Itinerary
	if err := c.do(ctx, http.MethodPost, "/itineraries/from-flight-dates", nil, req, &out); err != nil {
		return planner.Itinerary{}, fmt.Errorf("client.CreateItineraryFromFlightDates: %w", err)
	}
	return out, nil
}

// SaveItineraryItems posts the payload to the itinerary's save endpoint and
// returns the response body as a loose object.
func (c *Client) SaveItineraryItems(ctx context.Context, id int64, payload planner.SavePayload) (map[string]any, error) {
	out := map[string]any{}
	path := "/itineraries/" + strconv.FormatInt(id, 10) + "/save"
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &out); err != nil {
		return nil, fmt.Errorf("client.SaveItineraryItems: %w", err)
	}
	return out, nil
}

// ItineraryBudget returns GET /itineraries/{id}/budget as a loose object.
func (c *Client) ItineraryBudget(ctx context.Context, id int64) (map[string]any, error) {
	out := map[string]any{}
	if err := c.do(ctx, http.MethodGet, "/itineraries/"+strconv.FormatInt(id, 10)+"/budget", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("client.ItineraryBudget: %w", err)
	}
	return out, nil
}

// ExportItinerary returns GET /itineraries/{id}/export in the given format
// ("json" or "csv") as raw bytes.
func (c *Client) ExportItinerary(ctx context.Context, id int64, format string) ([]byte, error) {
	var out []byte
	q := url.Values{"format": {format}}
	if err := c.do(ctx, http.MethodGet, "/itineraries/"+strconv.FormatInt(id, 10)+"/export", q, nil, &out); err != nil {
		return nil, fmt.Errorf("client.ExportItinerary: %w", err)
	}
	return out, nil
}

// ---- search ----------------------------------------------------------------

// SearchAttractions searches attractions by location name. Attractions is
// left nil when the body has no attractions list: the key is absent, null or
// not an array, or the body is not an object at all.
func (c *Client) SearchAttractions(ctx context.Context, location string) (planner.AttractionsResponse, error) {
	var raw []byte
	q := url.Values{"location": {location}}
	if err := c.do(ctx, http.MethodGet, "/search/attractions", q, nil, &raw); err != nil {
		return planner.AttractionsResponse{}, fmt.Errorf("client.SearchAttractions: %w", err)
	}

	var out planner.AttractionsResponse
	var body struct {
		Attractions json.RawMessage `json:"attractions"`
		Msg         json.RawMessage `json:"msg"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		c.log.DebugContext(ctx, "attractions body is not an object", "error", err)
		return out, nil
	}
	_ = json.Unmarshal(body.Msg, &out.Msg)
	if len(body.Attractions) > 0 {
		if err := json.Unmarshal(body.Attractions, &out.Attractions); err != nil {
			c.log.DebugContext(ctx, "attractions is not a list", "error", err)
			out.Attractions = nil
		}
	}
	return out, nil
}

// SearchHotels searches hotels for a stay.
func (c *Client) SearchHotels(ctx context.Context, hq planner.HotelQuery) ([]record.Record, error) {
	var out struct {
		Hotels []record.Record `json:"hotels"`
	}
	q := url.Values{
		"location":  {hq.Location},
		"check_in":  {hq.CheckIn},
		"check_out": {hq.CheckOut},
	}
	if err := c.do(ctx, http.MethodGet, "/search/hotels", q, nil, &out); err != nil {
		return nil, fmt.Errorf("client.SearchHotels: %w", err)
	}
	return out.Hotels, nil
}

// AttractionDetail fetches one attraction by id.
func (c *Client) AttractionDetail(ctx context.Context, id string) (record.Record, error) {
	var out record.Record
	if err := c.do(ctx, http.MethodGet, "/search/attractions/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("client.AttractionDetail: %w", err)
	}
	return out, nil
}

// NearbyActivities lists activities within radius km of a point. A
// non-positive radius leaves the server default.
func (c *Client) NearbyActivities(ctx context.Context, lat, lon float64, radius int) ([]record.Record, error) {
	var out struct {
		Activities []record.Record `json:"activities"`
	}
	q := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
	if radius > 0 {
		q.Set("radius", strconv.Itoa(radius))
	}
	if err := c.do(ctx, http.MethodGet, "/search/activities", q, nil, &out); err != nil {
		return nil, fmt.Errorf("client.NearbyActivities: %w", err)
	}
	return out.Activities, nil
}

// SearchDestinations resolves a place name.
func (c *Client) SearchDestinations(ctx context.Context, query string) ([]record.Record, error) {
	var out struct {
		Destinations []record.Record `json:"destinations"`
	}
	if err := c.do(ctx, http.MethodGet, "/search/destinations", url.Values{"query": {query}}, nil, &out); err != nil {
		return nil, fmt.Errorf("client.SearchDestinations: %w", err)
	}
	return out.Destinations, nil
}

// HotelDetail fetches one hotel by key.
func (c *Client) HotelDetail(ctx context.Context, key string) (record.Record, error) {
	var out record.Record
	if err := c.do(ctx, http.MethodGet, "/search/hotels/"+url.PathEscape(key), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("client.HotelDetail: %w", err)
	}
	return out, nil
}

// HotelPricing fetches the live rates for a stay. Zero guests and rooms and
// an empty currency are left to the server defaults.
func (c *Client) HotelPricing(ctx context.Context, pq planner.PricingQuery) (record.Record, error) {
	q := url.Values{
		"check_in":  {pq.CheckIn},
		"check_out": {pq.CheckOut},
	}
	if pq.Guests > 0 {
		q.Set("guests", strconv.Itoa(pq.Guests))
	}
	if pq.Rooms > 0 {
		q.Set("rooms", strconv.Itoa(pq.Rooms))
	}
	if pq.Currency != "" {
		q.Set("currency", pq.Currency)
	}
	var out record.Record
	if err := c.do(ctx, http.MethodGet, "/search/hotels/"+url.PathEscape(pq.HotelKey)+"/pricing", q, nil, &out); err != nil {
		return nil, fmt.Errorf("client.HotelPricing: %w", err)
	}
	return out, nil
}

// ---- transport -------------------------------------------------------------

// do sends one request. A nil body sends no body; out may be nil, and a
// *[]byte out receives the raw response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	c.log.DebugContext(ctx, "api call",
		"method", method, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if p, ok := out.(*[]byte); ok {
		*p = raw
		return nil
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// decodeAPIError reads the message from either error envelope the API may
// use: {"error":{"code","message"}}, {"error":"..."} or {"msg":"..."}.
func decodeAPIError(status int, raw []byte) *APIError {
	e := &APIError{Status: status}
	var env struct {
		Error json.RawMessage `json:"error"`
		Msg   string          `json:"msg"`
	}
	if json.Unmarshal(raw, &env) != nil {
		return e
	}
	var detail struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	var s string
	switch {
	case json.Unmarshal(env.Error, &detail) == nil && detail.Message != "":
		e.Code, e.Message = detail.Code, detail.Message
	case json.Unmarshal(env.Error, &s) == nil && s != "":
		e.Message = s
	default:
		e.Message = env.Msg
	}
	return e
}
