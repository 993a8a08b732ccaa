// Package source contains the per-source fetchers that supply raw
// conference records to the pipeline. Each fetcher normalizes its feed into
// the common record shape; deduplication, classification, and geocoding all
// happen downstream.
package source

import (
	"context"

	"github.com/confscout/confscout/internal/conference"
)

// Source fetches raw conference records from one external feed. A
// well-behaved Source returns an empty slice together with its error on
// total failure; the pipeline isolates failures either way.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]*conference.Conference, error)
}
