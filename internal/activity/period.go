package activity

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned when the start offset is not strictly smaller than the end offset.
var ErrInvalidPeriod = errors.New("invalid period")

const daysPerYear = 365

// Period is a window counted backwards from an evaluation instant.
// Start is the boundary closer to now, so Start is chronologically after End.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod builds the window [now - startOffsetDays, now - endOffsetDays] as calendar dates.
func NewPeriod(now time.Time, startOffsetDays, endOffsetDays int) (Period, error) {
	if startOffsetDays >= endOffsetDays {
		return Period{}, fmt.Errorf("%w: start offset %d must be less than end offset %d", ErrInvalidPeriod, startOffsetDays, endOffsetDays)
	}

	today := DateOf(now)
	return Period{
		Start: today.AddDate(0, 0, -startOffsetDays),
		End:   today.AddDate(0, 0, -endOffsetDays),
	}, nil
}

// MustPeriod is like NewPeriod but panics on invalid offsets.
// Only use it with constant offsets.
func MustPeriod(now time.Time, startOffsetDays, endOffsetDays int) Period {
	p, err := NewPeriod(now, startOffsetDays, endOffsetDays)
	if err != nil {
		panic(err)
	}
	return p
}

// LastYear is the [0,365) days-ago window.
func LastYear(now time.Time) Period { return MustPeriod(now, 0, daysPerYear) }

// PreviousYear is the [365,730) days-ago window.
func PreviousYear(now time.Time) Period { return MustPeriod(now, daysPerYear, 2*daysPerYear) }

// TwoYearsAgo is the [730,1095) days-ago window.
func TwoYearsAgo(now time.Time) Period { return MustPeriod(now, 2*daysPerYear, 3*daysPerYear) }

// LastThreeYears is the [0,1095) days-ago window.
func LastThreeYears(now time.Time) Period { return MustPeriod(now, 0, 3*daysPerYear) }

// YearlyWindows returns the three consecutive one-year windows, most recent first.
func YearlyWindows(now time.Time) []Period {
	return []Period{LastYear(now), PreviousYear(now), TwoYearsAgo(now)}
}

// Contains reports whether the item's date lies strictly between End and Start.
// Items dated exactly on either boundary day are outside the window.
func (p Period) Contains(item Item) bool {
	d := DateOf(item.Timestamp)
	return p.Start.After(d) && d.After(p.End)
}

// Filter returns the items inside the window, preserving order.
func (p Period) Filter(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if p.Contains(it) {
			out = append(out, it)
		}
	}
	return out
}

// Count returns the number of items inside the window.
func (p Period) Count(items []Item) int {
	return CountWhere(items, p.Contains)
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
