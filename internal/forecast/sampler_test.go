package forecast

import (
	"context"
	"errors"
	"testing"

	"rwsch/internal/schedule"
)

func TestSampler_SummarisesSamples(t *testing.T) {
	s := Sampler{Samples: 20, Concurrency: 4, Seed: 11}
	limit := Limit{Kind: LimitPeriod, Value: 6}

	sum, err := s.Run(context.Background(), testEnv(1), schedule.HighActivity, highActivityItems(), limit)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Samples != 20 || len(sum.Results) != 20 {
		t.Fatalf("Expected 20 samples, got %d (%d results)", sum.Samples, len(sum.Results))
	}
	if sum.MinPeriods != 6 || sum.MaxPeriods != 6 {
		t.Errorf("Expected every sample to stop at period 6, got [%d,%d]", sum.MinPeriods, sum.MaxPeriods)
	}
	if sum.MinAverage > sum.MedianAverage || sum.MedianAverage > sum.MaxAverage {
		t.Errorf("Expected min <= median <= max, got %v/%v/%v", sum.MinAverage, sum.MedianAverage, sum.MaxAverage)
	}
	if sum.Strategy != "HighActivity" {
		t.Errorf("Expected strategy name HighActivity, got %q", sum.Strategy)
	}
}

func TestSampler_FixedSeedIsReproducible(t *testing.T) {
	s := Sampler{Samples: 8, Concurrency: 3, Seed: 42}
	limit := Limit{Kind: LimitRating, Value: 4.5}

	a, err := s.Run(context.Background(), testEnv(1), schedule.LowLowActivity, highActivityItems(), limit)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := s.Run(context.Background(), testEnv(1), schedule.LowLowActivity, highActivityItems(), limit)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i := range a.Results {
		fa, _ := a.Results[i].Final()
		fb, _ := b.Results[i].Final()
		if fa != fb {
			t.Errorf("Sample %d differs between runs: %+v vs %+v", i, fa, fb)
		}
	}
	if a.RunID == b.RunID {
		t.Errorf("Expected distinct run IDs")
	}
}

func TestSampler_PropagatesErrors(t *testing.T) {
	s := Sampler{Samples: 3, Seed: 1}

	if _, err := s.Run(context.Background(), testEnv(1), schedule.HighActivity, nil, Limit{Kind: LimitPeriod, Value: 3}); err == nil {
		t.Errorf("Expected empty history error")
	}
	if _, err := (Sampler{}).Run(context.Background(), testEnv(1), schedule.HighActivity, highActivityItems(), Limit{Kind: LimitPeriod, Value: 3}); err == nil {
		t.Errorf("Expected error for zero samples")
	}
}

func TestSampler_RejectsSampleCount(t *testing.T) {
	limit := Limit{Kind: LimitPeriod, Value: 3}
	for _, n := range []int{0, -1, MaxSamples + 1, 1 << 62} {
		s := Sampler{Samples: n, Concurrency: 2, Seed: 1}
		if _, err := s.Run(context.Background(), testEnv(1), schedule.HighActivity, highActivityItems(), limit); !errors.Is(err, ErrInvalidSamples) {
			t.Errorf("Expected ErrInvalidSamples for %d samples, got %v", n, err)
		}
	}
}
