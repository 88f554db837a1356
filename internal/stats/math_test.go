package stats

import (
	"testing"
)

func TestCalculateMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", []float64{}, 0},
		{"SingleItem", []float64{4}, 4},
		{"Mixed", []float64{1, 2, 3, 4, 5}, 3},
		{"Fractional", []float64{5, 4}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMean(tt.values); got != tt.expected {
				t.Errorf("CalculateMean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculateMedianContinuous(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", []float64{}, 0},
		{"SingleItem", []float64{5.5}, 5.5},
		{"OddCount", []float64{1.1, 3.3, 2.2, 4.4, 5.5}, 3.3},
		{"EvenCount", []float64{1.1, 2.2, 3.3, 4.4}, 2.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMedianContinuous(tt.values); got != tt.expected {
				t.Errorf("CalculateMedianContinuous() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRound_HalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{1.2417, 1},
		{1.825, 2},
		{13.166, 13},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundPlaces(t *testing.T) {
	if got := RoundPlaces(1.0/12.0, 2); got != 0.08 {
		t.Errorf("RoundPlaces(1/12, 2) = %v, want 0.08", got)
	}
	if got := RoundPlaces(12.0/7.0, 1); got != 1.7 {
		t.Errorf("RoundPlaces(12/7, 1) = %v, want 1.7", got)
	}
}
