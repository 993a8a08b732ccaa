package cli

import (
	"sort"
	"strings"

	"github.com/confscout/confscout/internal/conference"
)

// SortOrder represents the available sorting options for the list command.
type SortOrder string

const (
	SortByDate    SortOrder = "date"
	SortByName    SortOrder = "name"
	SortByCountry SortOrder = "country"
)

func parseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(s)
	switch order {
	case SortByDate, SortByName, SortByCountry:
		return order, nil
	}
	return "", errInvalidSort(s)
}

type errInvalidSort string

func (e errInvalidSort) Error() string {
	return "invalid sort order: " + string(e) + " (must be 'date', 'name', or 'country')"
}

// sortConferences sorts in place. All orders are total, so the output is
// deterministic for identical inputs.
func sortConferences(confs []*conference.Conference, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(confs, func(i, j int) bool {
			return compareByDate(confs[i], confs[j])
		})
	case SortByName:
		sort.SliceStable(confs, func(i, j int) bool {
			ni, nj := strings.ToLower(confs[i].Name), strings.ToLower(confs[j].Name)
			if ni != nj {
				return ni < nj
			}
			return compareByDate(confs[i], confs[j])
		})
	case SortByCountry:
		sort.SliceStable(confs, func(i, j int) bool {
			if confs[i].Location.Country != confs[j].Location.Country {
				return confs[i].Location.Country < confs[j].Location.Country
			}
			return compareByDate(confs[i], confs[j])
		})
	}
}

// compareByDate orders dated records chronologically and undated ones last.
func compareByDate(a, b *conference.Conference) bool {
	if a.SortDate() != b.SortDate() {
		return a.SortDate() < b.SortDate()
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
