package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client is a minimal reverse-geocoding client for the Nominatim API.
// Nominatim's usage policy requires an identifying User-Agent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ReverseResult is the subset of the Nominatim reverse response the
// directory consumes.
type ReverseResult struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		userAgent:  userAgent,
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	clone := *c
	clone.baseURL = baseURL
	return &clone
}

func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*ReverseResult, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))
	query.Set("zoom", "18")
	query.Set("addressdetails", "1")
	query.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var result ReverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("nominatim: failed to decode response: %w", err)
	}

	return &result, nil
}
