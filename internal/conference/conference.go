package conference

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Conference is the unit of data throughout the pipeline. Fetchers produce
// them, the dedupe engine merges them, enrichment fills in classification and
// coordinates, and the output writers serialize them.
//
// Optional date fields use the empty string for "absent"; fetchers trim
// whitespace at ingestion so empty always means missing.
type Conference struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	URL          string        `json:"url"`
	StartDate    string        `json:"startDate,omitempty"`
	EndDate      string        `json:"endDate,omitempty"`
	Location     Location      `json:"location"`
	Continent    string        `json:"continent,omitempty"`
	Online       bool          `json:"online"`
	Hybrid       bool          `json:"hybrid"`
	CFP          *CFP          `json:"cfp,omitempty"`
	FinancialAid *FinancialAid `json:"financialAid,omitempty"`
	Domain       string        `json:"domain,omitempty"`
	SubDomains   []string      `json:"subDomains,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Description  string        `json:"description,omitempty"`
	Twitter      string        `json:"twitter,omitempty"`

	// Source is the single-source provenance set by the fetcher. After a
	// merge, Sources carries the union of all contributing sources.
	Source  string   `json:"source,omitempty"`
	Sources []string `json:"sources,omitempty"`
}

// Location holds the venue location. Lat/Lng are pointers so that "not
// geocoded" is distinguishable from coordinates at the origin.
type Location struct {
	City    string   `json:"city"`
	Country string   `json:"country"`
	Raw     string   `json:"raw"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// CFP describes a call-for-papers window. DaysRemaining and Status are
// computed by the pipeline relative to the run date.
type CFP struct {
	URL           string `json:"url"`
	EndDate       string `json:"endDate"`
	DaysRemaining int    `json:"daysRemaining"`
	Status        string `json:"status"`
}

// CFP status values.
const (
	CFPOpen   = "open"
	CFPClosed = "closed"
)

// FinancialAid describes speaker support detected from conference text.
type FinancialAid struct {
	Available bool     `json:"available"`
	Types     []string `json:"types"`
	URL       string   `json:"url,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// GenerateID creates a deterministic ID from the identity triple. The triple
// is case- and whitespace-normalized first, so records that differ only in
// casing hash identically. Stable across runs; used both as a dedup fallback
// key and for change detection against the previous output.
func GenerateID(name, startDate, url string) string {
	data := strings.ToLower(strings.TrimSpace(name)) + "|" +
		strings.TrimSpace(startDate) + "|" +
		strings.ToLower(strings.TrimSpace(url))
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])[:12]
}

// Clone returns a deep copy. The merge engine clones its base so that merged
// records never alias fetcher output.
func (c *Conference) Clone() *Conference {
	out := *c
	if c.Location.Lat != nil {
		lat := *c.Location.Lat
		out.Location.Lat = &lat
	}
	if c.Location.Lng != nil {
		lng := *c.Location.Lng
		out.Location.Lng = &lng
	}
	if c.CFP != nil {
		cfp := *c.CFP
		out.CFP = &cfp
	}
	if c.FinancialAid != nil {
		aid := *c.FinancialAid
		aid.Types = append([]string(nil), c.FinancialAid.Types...)
		out.FinancialAid = &aid
	}
	out.SubDomains = append([]string(nil), c.SubDomains...)
	out.Tags = append([]string(nil), c.Tags...)
	out.Sources = append([]string(nil), c.Sources...)
	return &out
}

// HasCoordinates reports whether the record has been geocoded.
func (c *Conference) HasCoordinates() bool {
	return c.Location.Lat != nil && c.Location.Lng != nil
}

// HasOpenCFP reports whether the record carries a CFP in the open state.
func (c *Conference) HasOpenCFP() bool {
	return c.CFP != nil && c.CFP.Status == CFPOpen
}
