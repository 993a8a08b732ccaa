package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/config"
	"github.com/confscout/confscout/internal/dedupe"
	"github.com/confscout/confscout/internal/geo"
	"github.com/confscout/confscout/internal/logging"
	"github.com/confscout/confscout/internal/pipeline"
	"github.com/confscout/confscout/internal/source"
)

// app carries the wired-up dependencies shared by the pipeline commands.
type app struct {
	cfg     *config.Config
	sources *config.Sources
	logger  zerolog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	sources, err := config.LoadSources(cfg.SourcesPath, time.Now())
	if err != nil {
		return nil, fmt.Errorf("loading sources: %w", err)
	}

	return &app{cfg: cfg, sources: sources, logger: logger}, nil
}

// buildDriver assembles the pipeline from the source config. The returned
// cleanup persists the geocode cache and must run after the pipeline.
func (a *app) buildDriver() (*pipeline.Driver, func(), error) {
	var srcs []source.Source
	if a.sources.ConfsTech.Enabled {
		srcs = append(srcs, source.NewConfsTech(a.sources.ConfsTech.Years, a.sources.ConfsTech.Topics, a.logger))
	}
	if a.sources.DBLP.Enabled {
		srcs = append(srcs, source.NewDBLP(a.sources.DBLP.SearchTerms, a.logger))
	}
	if a.sources.Sessionize.Enabled {
		srcs = append(srcs, source.NewSessionize(a.sources.Sessionize.URLs, a.logger))
	}
	if len(srcs) == 0 {
		return nil, nil, fmt.Errorf("no sources enabled in %s", a.cfg.SourcesPath)
	}

	engine := dedupe.NewWithPriorities(a.sources.Priorities)

	cache := geo.LoadCache(a.cfg.GeoCachePath)
	var api *geo.NominatimClient
	if a.cfg.GeocodeAPI {
		api = geo.NewNominatimClient()
	}
	geocoder := newGeocoder(cache, api, a.logger)

	cleanup := func() {
		if err := cache.Save(); err != nil {
			a.logger.Warn().Err(err).Msg("saving geocode cache failed")
		}
	}

	return pipeline.New(srcs, engine, geocoder, a.logger), cleanup, nil
}

// newGeocoder keeps the nil-API case out of buildDriver. A typed nil
// pointer must not reach the resolver interface.
func newGeocoder(cache *geo.Cache, api *geo.NominatimClient, logger zerolog.Logger) *geo.Geocoder {
	if api == nil {
		return geo.NewGeocoder(cache, nil, logger)
	}
	return geo.NewGeocoder(cache, api, logger)
}
