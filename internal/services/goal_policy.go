package services

type GoalStatus string

const (
	GoalWithin   GoalStatus = "within"
	GoalExceeded GoalStatus = "exceeded"
)

// EvaluateGoal classifies a consumed total against the base daily goal scaled
// by the period multiplier. A nil total means the range held no entries and
// counts as zero consumed, so it is always within goal.
func EvaluateGoal(total *int64, goal int, multiplier int) GoalStatus {
	if total == nil {
		return GoalWithin
	}
	if *total <= int64(goal)*int64(multiplier) {
		return GoalWithin
	}
	return GoalExceeded
}
