package dedupe

// defaultPriorities ranks known sources; higher wins when merging duplicates.
// Unknown sources get the zero value, so a newly added fetcher participates
// in merging without any change here.
var defaultPriorities = map[string]int{
	"developers.events": 100,
	"dblp":              90,
	"ieee":              85,
	"tech-conferences":  80,
	"scraly":            70,
	"papercall":         60,
	"confs.tech":        55,
	"github-issues":     50,
	"sessionize":        40,
}

// Priority returns the merge priority for a source identifier. Unknown
// sources map to 0, the lowest rank. Never fails.
func (e *Engine) Priority(source string) int {
	return e.priorities[source]
}
