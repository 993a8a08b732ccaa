// Package dedupe implements the multi-source record deduplication and merge
// engine: fuzzy name matching, priority-based field reconciliation, and
// greedy candidate grouping. The engine is a pure batch transform; it
// performs no I/O and is safe to call from tests without any setup.
package dedupe

import (
	"sort"

	"github.com/confscout/confscout/internal/conference"
)

// Engine groups and merges duplicate conference records according to a
// source priority table.
type Engine struct {
	priorities map[string]int
}

// New creates an Engine with the default source priority table.
func New() *Engine {
	return NewWithPriorities(nil)
}

// NewWithPriorities creates an Engine with the default table plus per-source
// overrides. Overrides for unknown sources simply register them.
func NewWithPriorities(overrides map[string]int) *Engine {
	priorities := make(map[string]int, len(defaultPriorities)+len(overrides))
	for source, p := range defaultPriorities {
		priorities[source] = p
	}
	for source, p := range overrides {
		priorities[source] = p
	}
	return &Engine{priorities: priorities}
}

// Deduplicate groups the input into duplicate sets and merges each set into
// a single enriched record. Deterministic: identical input sequences produce
// identical output sequences.
func (e *Engine) Deduplicate(confs []*conference.Conference) []*conference.Conference {
	groups := e.Group(confs)
	result := make([]*conference.Conference, 0, len(groups))
	for _, group := range groups {
		result = append(result, e.Merge(group))
	}
	return result
}

// Group partitions records into duplicate sets. Records are first bucketed
// by a fixed-length prefix of their normalized name; within each bucket a
// greedy scan sorted by descending source priority collects, for each
// not-yet-consumed anchor, every later unconsumed record that IsDuplicate
// matches against the anchor.
//
// The clustering is deliberately non-transitive: a record matched to the
// anchor is not re-tested against other matched records, which under-merges
// in rare transitive-similarity chains. Downstream ID stability depends on
// this exact behavior; do not replace it with transitive closure.
//
// Output order is deterministic: buckets in first-seen order, anchors in
// priority-then-first-seen order within each bucket.
func (e *Engine) Group(confs []*conference.Conference) [][]*conference.Conference {
	buckets := make(map[string][]*conference.Conference)
	var order []string

	for _, conf := range confs {
		key := conference.Normalize(conf.Name)
		if len(key) > bucketPrefixLen {
			key = key[:bucketPrefixLen]
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], conf)
	}

	var groups [][]*conference.Conference

	for _, key := range order {
		bucket := buckets[key]
		if len(bucket) == 1 {
			groups = append(groups, bucket)
			continue
		}

		// Stable so that equal-priority records keep first-seen order.
		sort.SliceStable(bucket, func(i, j int) bool {
			return e.Priority(bucket[i].Source) > e.Priority(bucket[j].Source)
		})

		used := make([]bool, len(bucket))
		for i, anchor := range bucket {
			if used[i] {
				continue
			}
			group := []*conference.Conference{anchor}
			for j := i + 1; j < len(bucket); j++ {
				if used[j] {
					continue
				}
				if e.IsDuplicate(anchor, bucket[j]) {
					group = append(group, bucket[j])
					used[j] = true
				}
			}
			groups = append(groups, group)
		}
	}

	return groups
}

// Merge collapses a non-empty duplicate set into one record. A single-
// element group is returned unchanged. Otherwise the highest-
// priority member becomes the base (deep-copied, inputs are never mutated);
// lower-priority members only fill fields the base left empty. A populated
// value is never overwritten. Sources on the result is the set of distinct
// non-empty Source values among all members, in priority order.
func (e *Engine) Merge(group []*conference.Conference) *conference.Conference {
	if len(group) == 0 {
		return nil
	}
	if len(group) == 1 {
		return group[0]
	}

	sorted := make([]*conference.Conference, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return e.Priority(sorted[i].Source) > e.Priority(sorted[j].Source)
	})

	base := sorted[0].Clone()

	for _, dup := range sorted[1:] {
		fillMissing(base, dup)
	}

	base.Sources = collectSources(sorted)
	return base
}

// fillMissing copies values from dup into base only where base is empty.
func fillMissing(base, dup *conference.Conference) {
	if base.StartDate == "" && dup.StartDate != "" {
		base.StartDate = dup.StartDate
	}
	if base.EndDate == "" && dup.EndDate != "" {
		base.EndDate = dup.EndDate
	}
	if base.CFP == nil && dup.CFP != nil {
		cfp := *dup.CFP
		base.CFP = &cfp
	}
	if base.Twitter == "" && dup.Twitter != "" {
		base.Twitter = dup.Twitter
	}
	if base.Description == "" && dup.Description != "" {
		base.Description = dup.Description
	}
	if base.URL == "" && dup.URL != "" {
		base.URL = dup.URL
	}
	if base.Location.City == "" && dup.Location.City != "" {
		base.Location.City = dup.Location.City
	}
	if base.Location.Country == "" && dup.Location.Country != "" {
		base.Location.Country = dup.Location.Country
	}
	if base.Location.Raw == "" && dup.Location.Raw != "" {
		base.Location.Raw = dup.Location.Raw
	}
	if base.Location.Lat == nil && dup.Location.Lat != nil {
		lat := *dup.Location.Lat
		base.Location.Lat = &lat
	}
	if base.Location.Lng == nil && dup.Location.Lng != nil {
		lng := *dup.Location.Lng
		base.Location.Lng = &lng
	}
}

// collectSources returns the distinct non-empty Source values in order.
func collectSources(group []*conference.Conference) []string {
	seen := make(map[string]bool, len(group))
	sources := make([]string, 0, len(group))
	for _, conf := range group {
		if conf.Source == "" || seen[conf.Source] {
			continue
		}
		seen[conf.Source] = true
		sources = append(sources, conf.Source)
	}
	return sources
}
