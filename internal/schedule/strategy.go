package schedule

import (
	"time"

	"rwsch/internal/activity"
	"rwsch/internal/stats"
)

// Months is the length of a schedule produced by a strategy.
const Months = 12

// Schedule holds planned item counts, one entry per future month.
type Schedule []int

// Total returns the number of items planned across the schedule.
func (s Schedule) Total() int {
	return stats.Sum(s)
}

// Env is the evaluation context shared by eligibility checks and schedule construction.
type Env struct {
	// Now anchors every days-ago window.
	Now time.Time
	// Rand drives the stochastic schedule rules.
	Rand stats.Rand
}

// NewEnv returns an Env evaluated at now with a source seeded from seed.
func NewEnv(now time.Time, seed uint64) Env {
	return Env{Now: now, Rand: stats.NewRand(seed)}
}

// Strategy classifies an activity history and plans a schedule for it.
type Strategy interface {
	// Name identifies the strategy in logs and reports.
	Name() string
	// IsEligible reports whether the history belongs to this strategy's tier.
	IsEligible(env Env, items []activity.Item) bool
	// BuildSchedule returns Months planned counts.
	BuildSchedule(env Env, items []activity.Item) Schedule
}
