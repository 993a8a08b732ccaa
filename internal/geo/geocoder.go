package geo

import (
	"context"

	"github.com/rs/zerolog"
)

// resolver is the external geocoding dependency; satisfied by
// NominatimClient and by fakes in tests.
type resolver interface {
	Geocode(ctx context.Context, city, country string) (Coordinates, bool, error)
}

// Geocoder resolves locations through three layers: the persistent cache,
// the static tables, and optionally an external API. API failures degrade
// to "no coordinates" rather than failing the caller.
type Geocoder struct {
	cache  *Cache
	api    resolver
	logger zerolog.Logger
}

// NewGeocoder creates a Geocoder over an injected cache. api may be nil to
// disable external lookups entirely.
func NewGeocoder(cache *Cache, api resolver, logger zerolog.Logger) *Geocoder {
	return &Geocoder{cache: cache, api: api, logger: logger}
}

// Resolve returns coordinates for a location, or false when it cannot be
// resolved by any layer. Both successful lookups and misses are cached.
func (g *Geocoder) Resolve(ctx context.Context, city, country string) (Coordinates, bool) {
	if city == "" && country == "" {
		return Coordinates{}, false
	}

	if coords, ok := g.cache.Get(city, country); ok {
		if coords == nil {
			return Coordinates{}, false
		}
		return *coords, true
	}

	if coords, ok := LookupStatic(city, country); ok {
		g.cache.Set(city, country, coords)
		return coords, true
	}

	if g.api != nil && city != "" && country != "" {
		coords, found, err := g.api.Geocode(ctx, city, country)
		if err != nil {
			g.logger.Warn().Err(err).Str("city", city).Str("country", country).
				Msg("geocoding API lookup failed")
			return Coordinates{}, false
		}
		if found {
			g.cache.Set(city, country, coords)
			return coords, true
		}
	}

	g.cache.SetMiss(city, country)
	return Coordinates{}, false
}
