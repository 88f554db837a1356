package forecast

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidLimit is returned for an unknown limit kind or an out-of-range limit value.
var ErrInvalidLimit = errors.New("invalid forecast limit")

// LimitKind selects the stop condition of a forecast.
type LimitKind string

const (
	// LimitPeriod stops after a fixed number of months.
	LimitPeriod LimitKind = "period"
	// LimitRating stops once the cumulative average rating reaches a target.
	LimitRating LimitKind = "rating"
)

const (
	maxPeriodLimit = 12
	minRating      = 1
	maxRating      = 5
)

// Limit is the stop condition of a forecast.
type Limit struct {
	Kind  LimitKind `json:"kind"`
	Value float64   `json:"value"`
}

// ParseLimitKind accepts "period" or "rating" in any case.
func ParseLimitKind(s string) (LimitKind, error) {
	switch k := LimitKind(strings.ToLower(strings.TrimSpace(s))); k {
	case LimitPeriod, LimitRating:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidLimit, s)
}

// Validate checks the value range for the limit kind.
func (l Limit) Validate() error {
	switch l.Kind {
	case LimitPeriod:
		if l.Value < 1 || l.Value > maxPeriodLimit || l.Value != math.Trunc(l.Value) {
			return fmt.Errorf("%w: period must be a whole number in [1,%d], got %v", ErrInvalidLimit, maxPeriodLimit, l.Value)
		}
	case LimitRating:
		if math.IsNaN(l.Value) || l.Value < minRating || l.Value > maxRating {
			return fmt.Errorf("%w: rating must be in [%d,%d], got %v", ErrInvalidLimit, minRating, maxRating, l.Value)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidLimit, l.Kind)
	}
	return nil
}

func (l Limit) reached(period int, avg float64) bool {
	switch l.Kind {
	case LimitPeriod:
		return period == int(l.Value)
	case LimitRating:
		return avg >= l.Value
	}
	return false
}

func (l Limit) String() string {
	return fmt.Sprintf("%s=%v", l.Kind, l.Value)
}
