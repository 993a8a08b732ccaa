// Package pipeline drives an aggregation run: fetch, deduplicate, filter,
// enrich, and count.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/classify"
	"github.com/confscout/confscout/internal/conference"
	"github.com/confscout/confscout/internal/dedupe"
	"github.com/confscout/confscout/internal/geo"
	"github.com/confscout/confscout/internal/source"
)

// StageCounts records how many records survived each pipeline stage.
type StageCounts struct {
	Raw      int `json:"raw"`
	Deduped  int `json:"deduped"`
	Filtered int `json:"filtered"`
	Final    int `json:"final"`
}

// Result is the outcome of one aggregation run.
type Result struct {
	Conferences []*conference.Conference
	Stages      StageCounts
	BySource    map[string]int
	Failed      []string
}

// Driver wires the pipeline stages together. Geocoder may be nil to skip
// coordinate resolution entirely.
type Driver struct {
	sources  []source.Source
	engine   *dedupe.Engine
	geocoder *geo.Geocoder
	logger   zerolog.Logger
	now      func() time.Time
}

// New creates a Driver.
func New(sources []source.Source, engine *dedupe.Engine, geocoder *geo.Geocoder, logger zerolog.Logger) *Driver {
	return &Driver{
		sources:  sources,
		engine:   engine,
		geocoder: geocoder,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one aggregation pass. A failing source contributes zero
// records and is reported in Result.Failed; the run continues with the
// rest. The output order is deterministic for identical inputs.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	result := &Result{BySource: make(map[string]int)}
	now := d.now()

	var all []*conference.Conference
	for _, src := range d.sources {
		confs, err := src.Fetch(ctx)
		if err != nil {
			d.logger.Error().Err(err).Str("source", src.Name()).Msg("source fetch failed")
			result.Failed = append(result.Failed, src.Name())
			continue
		}
		d.logger.Info().Str("source", src.Name()).Int("count", len(confs)).Msg("source fetched")
		result.BySource[src.Name()] = len(confs)
		all = append(all, confs...)
	}
	result.Stages.Raw = len(all)

	deduped := d.engine.Deduplicate(all)
	result.Stages.Deduped = len(deduped)

	var upcoming []*conference.Conference
	for _, c := range deduped {
		if c.IsUpcoming(now) {
			upcoming = append(upcoming, c)
		}
	}
	result.Stages.Filtered = len(upcoming)

	for _, c := range upcoming {
		d.enrich(ctx, c, now)
		c.ID = conference.GenerateID(c.Name, c.StartDate, c.URL)
	}
	result.Conferences = upcoming
	result.Stages.Final = len(upcoming)

	d.logger.Info().
		Int("raw", result.Stages.Raw).
		Int("deduped", result.Stages.Deduped).
		Int("filtered", result.Stages.Filtered).
		Int("final", result.Stages.Final).
		Msg("aggregation complete")

	return result, nil
}

// enrich fills classification, tags, financial aid, continent, coordinates,
// and CFP state. Fetcher-provided values are never overwritten.
func (d *Driver) enrich(ctx context.Context, c *conference.Conference, now time.Time) {
	if c.Domain == "" {
		c.Domain, c.SubDomains = classify.Classify(c.Name, c.Description)
	}
	if len(c.Tags) == 0 {
		c.Tags = classify.ExtractTags(c.Name, c.Description)
	}
	if c.FinancialAid == nil {
		if aid := classify.DetectFinancialAid(c.Name, c.Description); aid.Available {
			c.FinancialAid = &conference.FinancialAid{Available: true, Types: aid.Types}
		}
	}
	if c.Continent == "" && c.Location.Country != "" {
		c.Continent = geo.Continent(c.Location.Country)
	}

	if d.geocoder != nil && !c.HasCoordinates() && (c.Location.City != "" || c.Location.Country != "") {
		if coords, ok := d.geocoder.Resolve(ctx, c.Location.City, c.Location.Country); ok {
			lat, lng := coords.Lat, coords.Lng
			c.Location.Lat = &lat
			c.Location.Lng = &lng
		}
	}

	if c.CFP != nil && c.CFP.EndDate != "" {
		if days, ok := conference.DaysUntil(c.CFP.EndDate, now); ok {
			if days >= 0 {
				c.CFP.Status = conference.CFPOpen
				c.CFP.DaysRemaining = days
			} else {
				c.CFP.Status = conference.CFPClosed
				c.CFP.DaysRemaining = 0
			}
		}
	}
}
