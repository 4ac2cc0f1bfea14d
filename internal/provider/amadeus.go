package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

const (
	amadeusTestBaseURL       = "https://test.api.amadeus.com"
	amadeusProductionBaseURL = "https://api.amadeus.com"

	// tokenSkew renews the access token slightly before it expires.
	tokenSkew = 60 * time.Second
)

// Amadeus searches tours and activities. It authenticates with the OAuth2
// client-credentials grant and caches the access token until shortly before
// it expires.
type Amadeus struct {
	c            *httpClient
	clientID     string
	clientSecret string
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewAmadeus constructs an Amadeus client. env selects the endpoint:
// "production" uses the live API, anything else the free test API.
func NewAmadeus(clientID, clientSecret, env string, opts Options) *Amadeus {
	base := amadeusTestBaseURL
	if env == "production" {
		base = amadeusProductionBaseURL
	}
	return &Amadeus{
		c:            newHTTPClient("amadeus", base, opts),
		clientID:     clientID,
		clientSecret: clientSecret,
		now:          time.Now,
	}
}

type amadeusToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type amadeusActivities struct {
	Data []struct {
		ID               string   `json:"id"`
		Name             string   `json:"name"`
		ShortDescription string   `json:"shortDescription"`
		BookingLink      string   `json:"bookingLink"`
		Pictures         []string `json:"pictures"`
		Price            struct {
			Amount       string `json:"amount"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"price"`
		GeoCode *struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"geoCode"`
	} `json:"data"`
}

// SearchActivities returns activities within q.Radius km of the coordinate.
func (a *Amadeus) SearchActivities(ctx context.Context, q domain.ActivityQuery) ([]domain.Activity, error) {
	token, err := a.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"latitude":  {strconv.FormatFloat(q.Lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(q.Lon, 'f', -1, 64)},
		"radius":    {strconv.Itoa(q.Radius)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.c.baseURL+"/v1/shopping/activities?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp amadeusActivities
	if err := a.c.do(req, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.Activity, 0, len(resp.Data))
	for _, d := range resp.Data {
		act := domain.Activity{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.ShortDescription,
			Currency:    d.Price.CurrencyCode,
			BookingLink: d.BookingLink,
		}
		act.Price, _ = strconv.ParseFloat(d.Price.Amount, 64)
		if len(d.Pictures) > 0 {
			act.ImageURL = d.Pictures[0]
		}
		if d.GeoCode != nil {
			lat, lon := d.GeoCode.Latitude, d.GeoCode.Longitude
			act.Lat, act.Lon = &lat, &lon
		}
		out = append(out, act)
	}
	return out, nil
}

func (a *Amadeus) accessToken(ctx context.Context) (string, error) {
	if a.clientID == "" || a.clientSecret == "" {
		return "", notConfigured(a.c.name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.now().Before(a.tokenExpiry) {
		return a.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {a.clientID},
		"client_secret": {a.clientSecret},
	}
	var tok amadeusToken
	if err := a.c.postForm(ctx, "/v1/security/oauth2/token", form, &tok); err != nil {
		return "", err
	}

	a.token = tok.AccessToken
	a.tokenExpiry = a.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenSkew)
	return a.token, nil
}
