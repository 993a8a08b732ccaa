package pipeline

import "github.com/confscout/confscout/internal/conference"

// NewCFPs returns conferences with an open CFP whose ID was absent from the
// previous run's output.
func NewCFPs(confs []*conference.Conference, previousIDs map[string]bool) []*conference.Conference {
	var out []*conference.Conference
	for _, c := range confs {
		if c.HasOpenCFP() && !previousIDs[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// ClosingSoon returns conferences whose open CFP closes within windowDays.
// A CFP closing today (zero days remaining) still counts.
func ClosingSoon(confs []*conference.Conference, windowDays int) []*conference.Conference {
	var out []*conference.Conference
	for _, c := range confs {
		if c.HasOpenCFP() && c.CFP.DaysRemaining <= windowDays {
			out = append(out, c)
		}
	}
	return out
}
