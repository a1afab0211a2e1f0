package collector

import (
	"context"
	"encoding/json"
	"fmt"
)

// PreOpenFetcher pulls the community pre-open F&O snapshot endpoint. The
// payload shape is provider-dependent; the gap package resolves it.
type PreOpenFetcher struct {
	URL    string
	Client *HTTPClient
}

// FetchSnapshot returns the decoded payload, or an error when the endpoint
// is unavailable or not JSON. Callers treat any error as absence.
func (f *PreOpenFetcher) FetchSnapshot(ctx context.Context) (any, error) {
	body, err := f.Client.Get(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch pre-open snapshot: %w", err)
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode pre-open snapshot: %w", err)
	}
	return payload, nil
}
