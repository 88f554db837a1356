package schedule

import (
	"github.com/rs/zerolog/log"

	"rwsch/internal/activity"
	"rwsch/internal/stats"
)

const (
	// Years counted by the three-year eligibility checks.
	historyYears = 3

	// A yearly window averaging at least this many items per month is a high-activity year.
	highYearThreshold = 0.5
	// Low-year average assumed when every observed year was a high-activity one: about one item a year.
	defaultLowYearAverage = 0.083
	// Growth factor applied to the low-year average when planning the next year.
	yearPlanGrowth = 1.5

	// Ten-day buckets make up the PastActivity timeline.
	bucketDays = 10
)

func monthlyAverage(count int) float64   { return float64(count) / 12 }
func bimonthlyAverage(count int) float64 { return float64(count) / 6 }
func yearlyAverage(count int) float64    { return float64(count) / historyYears }

// sentimentAverages returns monthly averages of positive (rating > 3) and
// non-positive (rating < 4) items over the last year.
func sentimentAverages(env Env, items []activity.Item) (pos, neg float64) {
	year := activity.LastYear(env.Now).Filter(items)
	pos = monthlyAverage(activity.CountWhere(year, func(it activity.Item) bool { return it.Rating > 3 }))
	neg = monthlyAverage(activity.CountWhere(year, func(it activity.Item) bool { return it.Rating < 4 }))
	return pos, neg
}

// growthSchedule seeds the first flat months with neg + 0.3*pos and grows every later
// month from its unrounded predecessor. Rounding happens once, on output.
func growthSchedule(env Env, items []activity.Item, flatMonths int, grow func(float64) float64) Schedule {
	pos, neg := sentimentAverages(env, items)

	limits := make([]float64, Months)
	for m := range limits {
		if m < flatMonths {
			limits[m] = neg + 0.3*pos
		} else {
			limits[m] = grow(limits[m-1])
		}
	}

	out := make(Schedule, Months)
	for m, l := range limits {
		out[m] = stats.Round(l)
	}
	return out
}

func pastActivityEligible(env Env, items []activity.Item) bool {
	for _, p := range []activity.Period{activity.PreviousYear(env.Now), activity.TwoYearsAgo(env.Now)} {
		if bimonthlyAverage(p.Count(items)) >= 1 {
			return true
		}
	}
	return false
}

// pastActivitySchedule spreads a yearly plan, derived from the quiet years of the
// history, evenly over twelve ten-day buckets.
func pastActivitySchedule(env Env, items []activity.Item) Schedule {
	var high, low []float64
	for _, p := range activity.YearlyWindows(env.Now) {
		n := p.Count(items)
		if n == 0 {
			continue
		}
		avg := monthlyAverage(n)
		if avg >= highYearThreshold {
			high = append(high, avg)
		} else {
			low = append(low, avg)
		}
	}

	lowAvg := defaultLowYearAverage
	if len(low) > 0 {
		lowAvg = stats.CalculateMean(low)
	}

	yearPlan := stats.Round(lowAvg * yearPlanGrowth * Months)
	step := placementStep(yearPlan)

	log.Debug().
		Float64("highYearAvg", stats.CalculateMean(high)).
		Float64("lowYearAvg", lowAvg).
		Int("yearPlan", yearPlan).
		Int("stepDays", step).
		Msg("Past activity plan")

	return placeEvenly(step)
}

// placementStep is the spacing in days between planned items. yearPlan and the
// resulting step are both clamped to at least 1 so the placement loop always advances.
func placementStep(yearPlan int) int {
	if yearPlan < 1 {
		yearPlan = 1
	}
	step := int(stats.RoundPlaces(float64(Months)/float64(yearPlan), 1) * bucketDays)
	if step < 1 {
		step = 1
	}
	return step
}

// placeEvenly marks each ten-day bucket that reaches the next due placement.
// At most one placement is consumed per bucket.
func placeEvenly(step int) Schedule {
	horizon := Months * bucketDays

	var due []int
	for d := 0; d < horizon; d += step {
		due = append(due, d)
	}

	out := make(Schedule, Months)
	for b := range out {
		if len(due) > 0 && b*bucketDays >= due[0] {
			out[b] = 1
			due = due[1:]
		}
	}
	return out
}

// randomMonths sets one item in a uniformly chosen month of each inclusive range.
func randomMonths(env Env, ranges ...[2]int) Schedule {
	out := make(Schedule, Months)
	for _, r := range ranges {
		out[stats.IntBetween(env.Rand, r[0], r[1])] = 1
	}
	return out
}
