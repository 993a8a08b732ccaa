package dedupe

import (
	"github.com/confscout/confscout/internal/conference"
)

const (
	// similarityThreshold is the minimum normalized-name similarity for two
	// records to be considered the same event. Tunable design constant.
	similarityThreshold = 0.75

	// dateWindowDays is the maximum start-date distance between duplicates.
	// Listings of the same event disagree by a day or two when sources
	// record workshop days differently; a week absorbs that without
	// conflating separate editions.
	dateWindowDays = 7

	// bucketPrefixLen is the normalized-name prefix used as the grouping
	// bucket key.
	bucketPrefixLen = 20
)

// Similarity computes a longest-common-subsequence ratio between two strings
// in [0,1]: 2*LCS(a,b) / (len(a)+len(b)). Two empty strings are identical
// (1); an empty string never resembles a non-empty one (0).
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return 2 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

// lcsLength computes the longest common subsequence length with a two-row
// dynamic program.
func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// IsDuplicate decides whether two records denote the same event. This is a
// heuristic, not a proof of identity: normalized names must reach the
// similarity threshold, and when both records carry parseable start dates
// those dates must fall within the date window. A missing or unparseable
// date on either side never disqualifies a match. Total over well-formed
// input; absent optional fields never cause a failure.
func (e *Engine) IsDuplicate(a, b *conference.Conference) bool {
	if a == nil || b == nil {
		return false
	}

	similarity := Similarity(conference.Normalize(a.Name), conference.Normalize(b.Name))
	if similarity < similarityThreshold {
		return false
	}

	if a.StartDate != "" && b.StartDate != "" {
		if conference.DaysBetween(a.StartDate, b.StartDate) > dateWindowDays {
			return false
		}
	}

	return true
}
