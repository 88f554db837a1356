package schedule

import (
	"fmt"
	"strings"

	"rwsch/internal/activity"
)

// Tier is one of the built-in activity tiers. Tiers are declared from the most to the
// least active, which is also their default priority.
type Tier int

const (
	HighActivity Tier = iota
	MediumActivity
	PastActivity
	HighLowActivity
	LowLowActivity
)

// DefaultTiers lists every built-in tier in priority order.
var DefaultTiers = []Tier{HighActivity, MediumActivity, PastActivity, HighLowActivity, LowLowActivity}

var tierNames = map[Tier]string{
	HighActivity:    "HighActivity",
	MediumActivity:  "MediumActivity",
	PastActivity:    "PastActivity",
	HighLowActivity: "HighLowActivity",
	LowLowActivity:  "LowLowActivity",
}

var tierAliases = map[string]Tier{
	"high":     HighActivity,
	"medium":   MediumActivity,
	"past":     PastActivity,
	"high-low": HighLowActivity,
	"low-low":  LowLowActivity,
}

// ParseTier resolves a short alias ("high-low") or a full name ("HighLowActivity").
func ParseTier(name string) (Tier, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := tierAliases[key]; ok {
		return t, nil
	}
	for t, n := range tierNames {
		if strings.EqualFold(n, key) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown activity tier %q", name)
}

// ParseTiers parses a priority list such as "high,medium,past".
func ParseTiers(list string) ([]Tier, error) {
	var out []Tier
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseTier(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (t Tier) String() string {
	if n, ok := tierNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Name implements Strategy.
func (t Tier) Name() string { return t.String() }

// IsEligible implements Strategy.
func (t Tier) IsEligible(env Env, items []activity.Item) bool {
	switch t {
	case HighActivity:
		return monthlyAverage(activity.LastYear(env.Now).Count(items)) >= 2
	case MediumActivity:
		return bimonthlyAverage(activity.LastYear(env.Now).Count(items)) >= 1
	case PastActivity:
		return pastActivityEligible(env, items)
	case HighLowActivity:
		return yearlyAverage(activity.LastThreeYears(env.Now).Count(items)) >= 3
	case LowLowActivity:
		return yearlyAverage(activity.LastThreeYears(env.Now).Count(items)) >= 1
	}
	return false
}

// BuildSchedule implements Strategy.
func (t Tier) BuildSchedule(env Env, items []activity.Item) Schedule {
	switch t {
	case HighActivity:
		return growthSchedule(env, items, 3, func(prev float64) float64 { return prev * 1.3 })
	case MediumActivity:
		return growthSchedule(env, items, 1, func(prev float64) float64 { return prev + 1 })
	case PastActivity:
		return pastActivitySchedule(env, items)
	case HighLowActivity:
		return randomMonths(env, [2]int{0, 5}, [2]int{6, 11})
	case LowLowActivity:
		return randomMonths(env, [2]int{0, 11})
	}
	return make(Schedule, Months)
}

// Strategies converts tiers into a Strategy list for a Selector.
func Strategies(tiers []Tier) []Strategy {
	out := make([]Strategy, len(tiers))
	for i, t := range tiers {
		out[i] = t
	}
	return out
}
