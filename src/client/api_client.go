package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"placedir/src/domain"
	"placedir/src/domain/entities"
)

// APIClient talks to the directory service over HTTP. It implements
// ListingSource for the cache.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		// No explicit timeout on the listing fetch; cancellation is
		// up to the caller's context.
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

func (c *APIClient) FetchListing(ctx context.Context) ([]entities.Establishment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/establishments", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing request returned status %d", resp.StatusCode)
	}

	var records []entities.Establishment
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	return records, nil
}

// CreateEstablishment submits a new draft. Writes bypass the cache:
// an open client does not see them until it restarts.
func (c *APIClient) CreateEstablishment(ctx context.Context, draft domain.EstablishmentDraft) (entities.Establishment, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return entities.Establishment{}, fmt.Errorf("failed to encode draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/establishments", bytes.NewReader(body))
	if err != nil {
		return entities.Establishment{}, fmt.Errorf("failed to build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Establishment{}, fmt.Errorf("create request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return entities.Establishment{}, fmt.Errorf("create request returned status %d", resp.StatusCode)
	}

	var record entities.Establishment
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return entities.Establishment{}, fmt.Errorf("failed to decode created record: %w", err)
	}

	return record, nil
}
