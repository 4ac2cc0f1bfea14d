package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/provider"
)

func TestAmadeus_SearchActivities_CachesToken(t *testing.T) {
	var tokenCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":1799}`))
	})
	mux.HandleFunc("/v1/shopping/activities", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"A1","name":"Tram 28 tour","shortDescription":"Ride",
			"price":{"amount":"25.00","currencyCode":"EUR"},"pictures":["https://img.example/t.jpg"],
			"geoCode":{"latitude":38.71,"longitude":-9.13}}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	a := provider.NewAmadeus("id", "secret", "test", provider.Options{BaseURL: srv.URL})
	q := domain.ActivityQuery{Lat: 38.71, Lon: -9.13, Radius: 5}

	got, err := a.SearchActivities(context.Background(), q)
	require.NoError(t, err)
	_, err = a.SearchActivities(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Tram 28 tour", got[0].Name)
	assert.InDelta(t, 25, got[0].Price, 0.001)
	assert.Equal(t, "EUR", got[0].Currency)
	assert.Equal(t, "https://img.example/t.jpg", got[0].ImageURL)
	assert.Equal(t, int32(1), tokenCalls.Load(), "token should be reused while valid")
}

func TestAmadeus_MissingCredentials(t *testing.T) {
	a := provider.NewAmadeus("", "", "test", provider.Options{})

	_, err := a.SearchActivities(context.Background(), domain.ActivityQuery{Lat: 1, Lon: 1, Radius: 1})

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
