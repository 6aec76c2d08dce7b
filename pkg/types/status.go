package types

// Per-goal statuses. Each goal on a weekly entry carries exactly one.
const (
	StatusAchieved    = "achieved"
	StatusPartial     = "partial"
	StatusNotAchieved = "not_achieved"
)

// validGoalStatuses is the set of recognized per-goal status values.
var validGoalStatuses = map[string]bool{
	StatusAchieved:    true,
	StatusPartial:     true,
	StatusNotAchieved: true,
}

// ValidGoalStatus reports whether s is a recognized per-goal status.
func ValidGoalStatus(s string) bool {
	return validGoalStatuses[s]
}

// DeriveOverallStatus collapses a list of per-goal statuses into the overall
// status for the week. Empty list derives to not_achieved; all achieved
// derives to achieved; none achieved derives to not_achieved; any mixture
// derives to partial. Pure and order-independent. Overall status is always
// recomputed from the status list, never accepted as input.
func DeriveOverallStatus(statuses []string) string {
	if len(statuses) == 0 {
		return StatusNotAchieved
	}
	achieved := 0
	for _, s := range statuses {
		if s == StatusAchieved {
			achieved++
		}
	}
	switch achieved {
	case len(statuses):
		return StatusAchieved
	case 0:
		return StatusNotAchieved
	default:
		return StatusPartial
	}
}
