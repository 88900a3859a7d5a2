package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/narbehner/Movie-Watchlist/models"
)

type OMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOMDBClient(apiKey, baseURL string) *OMDBClient {
	return &OMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// Enabled reports whether an API key was configured.
func (c *OMDBClient) Enabled() bool {
	return c.apiKey != ""
}

// FetchMovie looks up a title on OMDB and maps the response onto the
// add-movie prefill shape. OMDB reports years for series as ranges
// ("2008-2013"); only the first year is kept.
func (c *OMDBClient) FetchMovie(ctx context.Context, title string) (*models.MovieLookupResult, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("OMDB API key not configured")
	}

	reqURL := fmt.Sprintf("%s?apikey=%s&t=%s", c.baseURL, c.apiKey, url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to OMDB API: %w", err)
	}
	defer resp.Body.Close()

	var omdbResp models.OmdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&omdbResp); err != nil {
		return nil, fmt.Errorf("error decoding OMDB response: %w", err)
	}

	if omdbResp.Response != "True" {
		return nil, fmt.Errorf("OMDB lookup failed: %s", omdbResp.Error)
	}

	yearStr, _, _ := strings.Cut(omdbResp.Year, "-")
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return nil, fmt.Errorf("error converting year: %w", err)
	}

	result := &models.MovieLookupResult{
		Title:       omdbResp.Title,
		Director:    omdbResp.Director,
		Year:        year,
		Description: omdbResp.Plot,
	}
	if omdbResp.Actors != "" {
		for _, actor := range strings.Split(omdbResp.Actors, ",") {
			result.Cast = append(result.Cast, strings.TrimSpace(actor))
		}
	}

	return result, nil
}
