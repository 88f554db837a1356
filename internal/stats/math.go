package stats

import (
	"math"
	"slices"
)

// CalculateMean returns the arithmetic mean of values, or 0 when empty.
func CalculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CalculateMedianContinuous finds the median value in a slice of floats.
func CalculateMedianContinuous(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Work on a copy to avoid mutating the original
	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)

	n := len(temp)
	if n%2 == 1 {
		return temp[n/2]
	}
	return (temp[n/2-1] + temp[n/2]) / 2.0
}

// Round rounds half to even, so 0.5 -> 0, 1.5 -> 2 and 2.5 -> 2.
func Round(x float64) int {
	return int(math.RoundToEven(x))
}

// RoundPlaces rounds x to the given number of decimal places, half to even.
func RoundPlaces(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(x*scale) / scale
}

// Sum returns the total of an integer series.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
