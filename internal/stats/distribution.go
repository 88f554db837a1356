package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDistribution is returned for a negative total or fewer than one receiver.
var ErrInvalidDistribution = errors.New("invalid distribution")

const certain = 100

// Distribute allocates total indivisible units across receivers ordered slots using a
// randomized round-robin. Each sweep accepts a unit for a receiver with a probability
// proportional to how scarce the remaining units are; once remaining units cover every
// receiver, acceptance is certain. The result always has length receivers and sums to total.
func Distribute(total, receivers int, rng Rand) ([]int, error) {
	if receivers < 1 {
		return nil, fmt.Errorf("%w: receivers must be >= 1, got %d", ErrInvalidDistribution, receivers)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: total must be >= 0, got %d", ErrInvalidDistribution, total)
	}

	result := make([]int, receivers)
	remaining := total

	for remaining > 0 {
		chance := sweepChance(remaining, receivers)
		for i := range result {
			if chance == certain || IntBetween(rng, 0, certain) <= chance {
				result[i]++
				remaining--
			}
			if remaining == 0 {
				break
			}
		}
	}

	return result, nil
}

// sweepChance is the per-receiver acceptance percentage for one sweep. An integer draw
// passes when it is <= the float percentage, so the percentage is floored: 7 of 12
// gives 0.58*100 = 57.99..., which accepts draws up to 57.
func sweepChance(remaining, receivers int) int {
	if remaining >= receivers {
		return certain
	}
	return int(math.Floor(RoundPlaces(float64(remaining)/float64(receivers), 2) * certain))
}
