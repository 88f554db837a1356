package schedule

import (
	"errors"

	"github.com/rs/zerolog/log"

	"rwsch/internal/activity"
)

// ErrNoStrategyMatched reports that no strategy in the priority list accepted the history.
var ErrNoStrategyMatched = errors.New("no activity strategy matched")

// Selector picks the first eligible strategy from an ordered priority list.
type Selector struct {
	strategies []Strategy
}

// Plan pairs the selected strategy with the schedule it built.
type Plan struct {
	Strategy Strategy
	Schedule Schedule
}

// NewSelector creates a selector. Order is significant: earlier strategies win.
func NewSelector(strategies ...Strategy) *Selector {
	return &Selector{strategies: strategies}
}

// NewDefaultSelector creates a selector over DefaultTiers.
func NewDefaultSelector() *Selector {
	return NewSelector(Strategies(DefaultTiers)...)
}

// Strategies returns the priority list.
func (s *Selector) Strategies() []Strategy {
	return s.strategies
}

// Select returns the first strategy whose eligibility check holds, or false when none does.
func (s *Selector) Select(env Env, items []activity.Item) (Strategy, bool) {
	for _, st := range s.strategies {
		if st.IsEligible(env, items) {
			log.Debug().Str("strategy", st.Name()).Int("items", len(items)).Msg("Activity strategy selected")
			return st, true
		}
	}
	log.Debug().Int("items", len(items)).Int("candidates", len(s.strategies)).Msg("No activity strategy matched")
	return nil, false
}

// Plan selects a strategy and builds its schedule.
func (s *Selector) Plan(env Env, items []activity.Item) (Plan, bool) {
	st, ok := s.Select(env, items)
	if !ok {
		return Plan{}, false
	}
	return Plan{Strategy: st, Schedule: st.BuildSchedule(env, items)}, true
}
