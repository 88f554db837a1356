package forecast

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"rwsch/internal/activity"
	"rwsch/internal/schedule"
	"rwsch/internal/stats"
)

// ErrEmptyHistory is returned when the last-year window holds no items, so no
// historical rating trend can be derived.
var ErrEmptyHistory = errors.New("no items in the last-year window")

const (
	// Months appended to the schedule when forecasting towards a target rating.
	extensionMonths = 24
	// Trailing months averaged to derive the extension.
	extensionBasis = 3
	// Planned items are modelled at the maximum rating.
	scheduledRating = 5.0
)

// Projection is the modelled continuation of the historical rating trend: one slice
// of ratings per future month.
type Projection [][]float64

// Entry is one month of a forecast.
type Entry struct {
	Period           int     `json:"period"`
	ScheduledItems   int     `json:"scheduled_items"`
	ScheduledRating  float64 `json:"scheduled_rating"`
	HistoricalItems  int     `json:"historical_items"`
	HistoricalRating float64 `json:"historical_rating"`
	TotalItems       int     `json:"total_items"`
	AverageRating    float64 `json:"average_rating"`
}

// Result is a complete forecast.
type Result struct {
	Strategy   string            `json:"strategy"`
	Limit      Limit             `json:"limit"`
	Schedule   schedule.Schedule `json:"schedule"`
	Projection Projection        `json:"projection"`
	Entries    []Entry           `json:"entries"`
}

// Final returns the last entry, or false for an empty forecast.
func (r Result) Final() (Entry, bool) {
	if len(r.Entries) == 0 {
		return Entry{}, false
	}
	return r.Entries[len(r.Entries)-1], true
}

// Compute blends the strategy's schedule with the historical trend month by month
// until the limit is reached or the horizon is exhausted.
func Compute(env schedule.Env, strategy schedule.Strategy, items []activity.Item, limit Limit) (Result, error) {
	if err := limit.Validate(); err != nil {
		return Result{}, err
	}

	plan := strategy.BuildSchedule(env, items)

	projection, err := ProjectHistory(env, items, len(plan))
	if err != nil {
		return Result{}, err
	}

	if limit.Kind == LimitRating {
		plan = ExtendSchedule(plan)
		projection = repeatProjection(projection, len(plan)/len(projection))
	}

	result := Result{
		Strategy:   strategy.Name(),
		Limit:      limit,
		Schedule:   plan,
		Projection: projection,
		Entries:    iterate(items, plan, projection, limit),
	}

	final, _ := result.Final()
	log.Debug().
		Str("strategy", result.Strategy).
		Str("limit", limit.String()).
		Int("periods", len(result.Entries)).
		Float64("averageRating", final.AverageRating).
		Msg("Forecast computed")

	return result, nil
}

// ProjectHistory spreads the last-year item count over months receivers, each
// projected item carrying the last-year average rating.
func ProjectHistory(env schedule.Env, items []activity.Item, months int) (Projection, error) {
	year := activity.LastYear(env.Now).Filter(items)
	if len(year) == 0 {
		return nil, ErrEmptyHistory
	}

	rating := stats.CalculateMean(activity.Ratings(year))

	dist, err := stats.Distribute(len(year), months, env.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to distribute history: %w", err)
	}

	projection := make(Projection, months)
	for m, n := range dist {
		month := make([]float64, n)
		for i := range month {
			month[i] = rating
		}
		projection[m] = month
	}
	return projection, nil
}

// ExtendSchedule appends extensionMonths months, each the rounded average of the
// schedule's trailing months.
func ExtendSchedule(s schedule.Schedule) schedule.Schedule {
	basis := s[max(0, len(s)-extensionBasis):]
	tail := 0
	if len(basis) > 0 {
		tail = stats.Round(float64(stats.Sum(basis)) / float64(len(basis)))
	}

	out := slices.Clone(s)
	for i := 0; i < extensionMonths; i++ {
		out = append(out, tail)
	}
	return out
}

func repeatProjection(p Projection, times int) Projection {
	out := make(Projection, 0, len(p)*times)
	for i := 0; i < times; i++ {
		out = append(out, p...)
	}
	return out
}

func iterate(items []activity.Item, plan schedule.Schedule, projection Projection, limit Limit) []Entry {
	ratings := activity.Ratings(items)

	var entries []Entry
	for i := 0; i < len(plan) && i < len(projection); i++ {
		period := i + 1
		projected := projection[i]
		scheduled := plan[i]

		ratings = append(ratings, projected...)
		for j := 0; j < scheduled; j++ {
			ratings = append(ratings, scheduledRating)
		}
		avg := stats.CalculateMean(ratings)

		entry := Entry{
			Period:           period,
			ScheduledItems:   scheduled,
			HistoricalItems:  len(projected),
			HistoricalRating: stats.CalculateMean(projected),
			TotalItems:       len(ratings),
			AverageRating:    avg,
		}
		if scheduled > 0 {
			entry.ScheduledRating = scheduledRating
		}
		entries = append(entries, entry)

		if limit.reached(period, avg) {
			break
		}
	}
	return entries
}
