package forecast

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rwsch/internal/activity"
	"rwsch/internal/schedule"
	"rwsch/internal/stats"
)

// MaxSamples bounds a single batch. Every sample keeps its full Result in memory.
const MaxSamples = 1000

var ErrInvalidSamples = errors.New("invalid sample count")

// Sampler runs independent forecasts of the same history to expose the spread caused
// by the stochastic steps. Each sample owns its random source.
type Sampler struct {
	Samples     int
	Concurrency int
	Seed        uint64
}

// Summary aggregates a batch of forecast samples.
type Summary struct {
	RunID         string   `json:"run_id"`
	Strategy      string   `json:"strategy"`
	Limit         Limit    `json:"limit"`
	Samples       int      `json:"samples"`
	MinAverage    float64  `json:"min_average"`
	MedianAverage float64  `json:"median_average"`
	MaxAverage    float64  `json:"max_average"`
	MinPeriods    int      `json:"min_periods"`
	MaxPeriods    int      `json:"max_periods"`
	Results       []Result `json:"results,omitempty"` // seed order
}

// Run computes s.Samples forecasts in parallel. Sample i draws from a source seeded
// with Seed+i, so a fixed non-zero Seed reproduces the batch.
func (s Sampler) Run(ctx context.Context, env schedule.Env, strategy schedule.Strategy, items []activity.Item, limit Limit) (Summary, error) {
	if s.Samples < 1 || s.Samples > MaxSamples {
		return Summary{}, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidSamples, s.Samples, MaxSamples)
	}
	if err := limit.Validate(); err != nil {
		return Summary{}, err
	}

	base := s.Seed
	if base == 0 {
		base = stats.NewRand(0).Uint64()
	}

	results := make([]Result, s.Samples)
	g, ctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}

	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sampleEnv := schedule.Env{Now: env.Now, Rand: stats.NewRand(base + uint64(i))}
			res, err := Compute(sampleEnv, strategy, items, limit)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(results)
	summary.RunID = uuid.NewString()
	summary.Strategy = strategy.Name()
	summary.Limit = limit

	log.Info().
		Str("runId", summary.RunID).
		Str("strategy", summary.Strategy).
		Int("samples", summary.Samples).
		Float64("medianAverage", summary.MedianAverage).
		Msg("Forecast samples completed")

	return summary, nil
}

func summarize(results []Result) Summary {
	sum := Summary{Samples: len(results), Results: results}

	finals := make([]float64, 0, len(results))
	for i, r := range results {
		final, _ := r.Final()
		finals = append(finals, final.AverageRating)

		n := len(r.Entries)
		if i == 0 || final.AverageRating < sum.MinAverage {
			sum.MinAverage = final.AverageRating
		}
		if i == 0 || final.AverageRating > sum.MaxAverage {
			sum.MaxAverage = final.AverageRating
		}
		if i == 0 || n < sum.MinPeriods {
			sum.MinPeriods = n
		}
		if i == 0 || n > sum.MaxPeriods {
			sum.MaxPeriods = n
		}
	}
	sum.MedianAverage = stats.CalculateMedianContinuous(finals)
	return sum
}
