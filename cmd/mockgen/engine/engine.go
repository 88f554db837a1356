package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"rwsch/internal/activity"
	"rwsch/internal/stats"
)

// GeneratorConfig selects the shape of a synthetic item history.
type GeneratorConfig struct {
	// Scenario is one of Scenarios.
	Scenario string
	// Bias shifts ratings: "neutral", "positive" or "negative".
	Bias string
	Seed uint64
	Now  time.Time
}

// yearly item counts, most recent year first, per scenario.
var scenarioVolumes = map[string][3]int{
	"high":     {30, 20, 10},
	"medium":   {9, 6, 4},
	"past":     {3, 12, 4},
	"high-low": {3, 3, 4},
	"low-low":  {1, 1, 1},
	"dormant":  {0, 0, 0},
}

// Scenarios lists the supported scenario names.
func Scenarios() []string {
	return []string{"high", "medium", "past", "high-low", "low-low", "dormant"}
}

// Generate produces a chronologically ordered history for the scenario.
func Generate(cfg GeneratorConfig) ([]activity.Item, error) {
	volumes, ok := scenarioVolumes[cfg.Scenario]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now().UTC()
	}
	rng := stats.NewRand(cfg.Seed)

	var items []activity.Item
	for year := len(volumes) - 1; year >= 0; year-- {
		for i := 0; i < volumes[year]; i++ {
			// Keep clear of the boundary days, which belong to no window.
			daysAgo := year*365 + 1 + rng.IntN(363)
			items = append(items, activity.Item{
				Timestamp: activity.DateOf(cfg.Now.AddDate(0, 0, -daysAgo)),
				Rating:    sampleRating(rng, cfg.Bias),
			})
		}
	}

	slices.SortStableFunc(items, func(a, b activity.Item) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return items, nil
}

func sampleRating(rng *rand.Rand, bias string) int {
	r := 1 + rng.IntN(5)
	switch bias {
	case "positive":
		if r < 5 && rng.IntN(2) == 0 {
			r++
		}
	case "negative":
		if r > 1 && rng.IntN(2) == 0 {
			r--
		}
	}
	return r
}
