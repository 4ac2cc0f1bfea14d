package provider

import (
	"context"
	"net/url"
	"strings"
)

const serpAPIBaseURL = "https://serpapi.com"

// SerpAPI looks up representative images through Google Images.
type SerpAPI struct {
	c      *httpClient
	apiKey string
}

// NewSerpAPI constructs a SerpAPI client. With an empty apiKey every lookup
// returns "" without a network call.
func NewSerpAPI(apiKey string, opts Options) *SerpAPI {
	return &SerpAPI{c: newHTTPClient("serpapi", serpAPIBaseURL, opts), apiKey: apiKey}
}

type serpImages struct {
	ImagesResults []struct {
		Thumbnail string `json:"thumbnail"`
		Original  string `json:"original"`
		Link      string `json:"link"`
	} `json:"images_results"`
}

// FindImage returns the first absolute http(s) image URL for "query near",
// preferring thumbnails. It returns "" when nothing usable is found.
func (s *SerpAPI) FindImage(ctx context.Context, query, near string) (string, error) {
	if s.apiKey == "" {
		return "", nil
	}

	params := url.Values{
		"api_key": {s.apiKey},
		"engine":  {"google_images"},
		"q":       {strings.TrimSpace(query + " " + near)},
		"num":     {"3"},
		"safe":    {"active"},
	}

	var resp serpImages
	if err := s.c.getJSON(ctx, "/search", params, &resp); err != nil {
		return "", err
	}
	for _, img := range resp.ImagesResults {
		for _, candidate := range []string{img.Thumbnail, img.Original, img.Link} {
			if strings.HasPrefix(candidate, "http") {
				return candidate, nil
			}
		}
	}
	return "", nil
}
