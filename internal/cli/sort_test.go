package cli

import (
	"testing"

	"github.com/confscout/confscout/internal/conference"
)

func sortable() []*conference.Conference {
	return []*conference.Conference{
		{Name: "Zulu Conf", StartDate: "2026-03-01", Location: conference.Location{Country: "Germany"}},
		{Name: "alpha conf", StartDate: "2026-01-01", Location: conference.Location{Country: "France"}},
		{Name: "Mike Conf", Location: conference.Location{Country: "France"}},
	}
}

func TestSortByDate(t *testing.T) {
	confs := sortable()
	sortConferences(confs, SortByDate)

	want := []string{"alpha conf", "Zulu Conf", "Mike Conf"}
	for i, name := range want {
		if confs[i].Name != name {
			t.Errorf("confs[%d] = %q, want %q (undated last)", i, confs[i].Name, name)
		}
	}
}

func TestSortByName(t *testing.T) {
	confs := sortable()
	sortConferences(confs, SortByName)

	want := []string{"alpha conf", "Mike Conf", "Zulu Conf"}
	for i, name := range want {
		if confs[i].Name != name {
			t.Errorf("confs[%d] = %q, want %q (case-insensitive)", i, confs[i].Name, name)
		}
	}
}

func TestSortByCountry(t *testing.T) {
	confs := sortable()
	sortConferences(confs, SortByCountry)

	if confs[0].Location.Country != "France" || confs[2].Location.Country != "Germany" {
		t.Errorf("country order wrong: %v, %v, %v", confs[0].Name, confs[1].Name, confs[2].Name)
	}
	// Within France, dated before undated.
	if confs[0].Name != "alpha conf" {
		t.Errorf("confs[0] = %q", confs[0].Name)
	}
}

func TestParseSortOrder(t *testing.T) {
	for _, valid := range []string{"date", "name", "country"} {
		if _, err := parseSortOrder(valid); err != nil {
			t.Errorf("parseSortOrder(%q) error = %v", valid, err)
		}
	}
	if _, err := parseSortOrder("price"); err == nil {
		t.Error("parseSortOrder should reject unknown orders")
	}
}
