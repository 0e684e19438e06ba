// Package ports declares the narrow interfaces the jagriti packages depend on,
// so the cache and search service can be tested without a live upstream.
package ports

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks Fetcher

// Fetcher executes one upstream call and returns the envelope's data.
// Implemented by upstream.Client.
type Fetcher interface {
	Fetch(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}
