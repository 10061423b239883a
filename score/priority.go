package score

import "github.com/ai4health/triage-api/schema"

const (
	MinPriority = 1
	MaxPriority = 5
)

// Priority converts a severity result into the 1-5 dispatch priority.
// Mild results land on 1-2, moderate on 3-4 and severe on 5.
func Priority(r schema.SeverityResult) int {
	switch {
	case r.Score >= SevereThreshold:
		return 5
	case r.Score >= 45:
		return 4
	case r.Score >= ModerateThreshold:
		return 3
	case r.Score >= 15:
		return 2
	default:
		return 1
	}
}

// ValidPriority reports whether p is in the accepted 1-5 range
func ValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}
