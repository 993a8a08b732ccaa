package output

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/confscout/confscout/internal/conference"
)

// LoadPreviousIDs reads the previous month-grouped document and returns the
// set of conference IDs it contained, for run-over-run change detection. A
// missing file means a first run and yields an empty set; a corrupt file is
// an error so a bad deploy does not re-announce everything.
func LoadPreviousIDs(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("reading previous output: %w", err)
	}

	var doc struct {
		Months map[string][]*conference.Conference `json:"months"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing previous output: %w", err)
	}

	ids := make(map[string]bool)
	for _, confs := range doc.Months {
		for _, c := range confs {
			if c.ID != "" {
				ids[c.ID] = true
			}
		}
	}
	return ids, nil
}

// LoadConferences reads a month-grouped document back into a flat slice,
// months in chronological order. Used by the list and calendar commands.
func LoadConferences(path string) ([]*conference.Conference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc struct {
		Months map[string][]*conference.Conference `json:"months"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	keys := make([]string, 0, len(doc.Months))
	for key := range doc.Months {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return conference.MonthSortKey(keys[i]) < conference.MonthSortKey(keys[j])
	})

	var confs []*conference.Conference
	for _, key := range keys {
		confs = append(confs, doc.Months[key]...)
	}
	return confs, nil
}
