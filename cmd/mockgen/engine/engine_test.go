package engine

import (
	"testing"
	"time"

	"rwsch/internal/schedule"
)

func TestGenerate_ScenariosMatchTheirTier(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	want := map[string]string{
		"high":     "HighActivity",
		"medium":   "MediumActivity",
		"past":     "PastActivity",
		"high-low": "HighLowActivity",
		"low-low":  "LowLowActivity",
	}

	selector := schedule.NewDefaultSelector()
	for _, scenario := range Scenarios() {
		t.Run(scenario, func(t *testing.T) {
			items, err := Generate(GeneratorConfig{Scenario: scenario, Seed: 3, Now: now})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			for i := 1; i < len(items); i++ {
				if items[i].Timestamp.Before(items[i-1].Timestamp) {
					t.Fatalf("Items are not chronological at %d", i)
				}
			}

			st, ok := selector.Select(schedule.NewEnv(now, 1), items)
			if scenario == "dormant" {
				if ok {
					t.Errorf("Expected no tier for a dormant history, got %s", st.Name())
				}
				return
			}
			if !ok || st.Name() != want[scenario] {
				t.Errorf("Expected %s, got %v (matched=%v)", want[scenario], st, ok)
			}
		})
	}
}

func TestGenerate_UnknownScenario(t *testing.T) {
	if _, err := Generate(GeneratorConfig{Scenario: "bursty"}); err == nil {
		t.Errorf("Expected error for unknown scenario")
	}
}
