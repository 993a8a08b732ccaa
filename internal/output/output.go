// Package output builds and writes the published JSON documents: the
// month-grouped conference listing and the flat catalog.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/confscout/confscout/internal/conference"
)

// Stats summarizes a month-grouped document.
type Stats struct {
	Total        int            `json:"total"`
	OpenCFPs     int            `json:"openCfps"`
	WithLocation int            `json:"withLocation"`
	ByDomain     map[string]int `json:"byDomain"`
}

// MonthGroup is one month's worth of conferences. Key is a display key such
// as "March 2026", or "TBD" for undated records.
type MonthGroup struct {
	Key         string
	Conferences []*conference.Conference
}

// MonthsDocument is the month-grouped output file.
type MonthsDocument struct {
	LastUpdated string       `json:"lastUpdated"`
	Stats       Stats        `json:"stats"`
	Months      []MonthGroup `json:"months"`
}

// BuildStats computes document statistics.
func BuildStats(confs []*conference.Conference) Stats {
	stats := Stats{ByDomain: make(map[string]int)}
	for _, c := range confs {
		stats.Total++
		if c.HasOpenCFP() {
			stats.OpenCFPs++
		}
		if c.HasCoordinates() || c.Location.City != "" {
			stats.WithLocation++
		}
		if c.Domain != "" {
			stats.ByDomain[c.Domain]++
		}
	}
	return stats
}

// GroupByMonth groups conferences under display month keys, months in
// chronological order with TBD last, and records within a month by start
// date ascending. Undated records inside a month sort last; ties keep input
// order.
func GroupByMonth(confs []*conference.Conference) []MonthGroup {
	byKey := make(map[string][]*conference.Conference)
	var order []string
	for _, c := range confs {
		key := conference.MonthKey(c.StartDate)
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return conference.MonthSortKey(order[i]) < conference.MonthSortKey(order[j])
	})

	groups := make([]MonthGroup, 0, len(order))
	for _, key := range order {
		group := byKey[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortDate() < group[j].SortDate()
		})
		groups = append(groups, MonthGroup{Key: key, Conferences: group})
	}
	return groups
}

// MarshalJSON renders the months as a JSON object in slice order. A plain
// map would lose the chronological ordering.
func (d *MonthsDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"lastUpdated":`)
	if err := encodeTo(&buf, d.LastUpdated); err != nil {
		return nil, err
	}
	buf.WriteString(`,"stats":`)
	if err := encodeTo(&buf, d.Stats); err != nil {
		return nil, err
	}
	buf.WriteString(`,"months":{`)
	for i, g := range d.Months {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeTo(&buf, g.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTo(&buf, g.Conferences); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func encodeTo(buf *bytes.Buffer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document part: %w", err)
	}
	buf.Write(data)
	return nil
}
