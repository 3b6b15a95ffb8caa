// Package valueobject defines immutable domain value types and pure
// domain calculations shared across use cases.
package valueobject

// HealthStatus classifies a goal's health relative to its timeline.
type HealthStatus string

const (
	HealthOverdue HealthStatus = "overdue"
	HealthUrgent  HealthStatus = "urgent"
	HealthBehind  HealthStatus = "behind"
	HealthAhead   HealthStatus = "ahead"
	HealthOnTrack HealthStatus = "on_track"
)

const (
	urgentWindowDays = 3
	behindToleration = 20
	aheadThreshold   = 10
)

// GoalPace carries the inputs of the deadline classification. ExpectedProgress
// is only meaningful when HasExpected is true (a goal without a positive
// duration has no pace to compare against).
type GoalPace struct {
	DaysRemaining      int
	ProgressPercentage float64
	ExpectedProgress   float64
	HasExpected        bool
}

// ClassifyGoalHealth applies the deadline rules in priority order, first
// match wins:
//
//  1. past the deadline -> overdue
//  2. three days or fewer left -> urgent
//  3. more than 20 points under the expected pace -> behind
//  4. more than 10 points over the expected pace -> ahead
//  5. otherwise -> on track
//
// Every caller that reports goal health goes through this single function so
// all call sites agree on the thresholds.
func ClassifyGoalHealth(pace GoalPace) HealthStatus {
	switch {
	case pace.DaysRemaining <= 0:
		return HealthOverdue
	case pace.DaysRemaining <= urgentWindowDays:
		return HealthUrgent
	case pace.HasExpected && pace.ProgressPercentage < pace.ExpectedProgress-behindToleration:
		return HealthBehind
	case pace.HasExpected && pace.ProgressPercentage > pace.ExpectedProgress+aheadThreshold:
		return HealthAhead
	default:
		return HealthOnTrack
	}
}

// ExpectedProgress returns the percentage of the goal's duration that has
// already elapsed, the pace a steady goal should be at. The second return is
// false when durationDays is not positive.
func ExpectedProgress(durationDays, daysRemaining int) (float64, bool) {
	if durationDays <= 0 {
		return 0, false
	}
	return float64(durationDays-daysRemaining) / float64(durationDays) * 100, true
}
