package activity

import "time"

// Item is a single rated, timestamped historical event (e.g. a review).
type Item struct {
	Timestamp time.Time `json:"timestamp"`
	// Rating is in [1,5]; zero means unset.
	Rating int `json:"rating"`
}

// Ratings returns the ratings of items in input order.
func Ratings(items []Item) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = float64(it.Rating)
	}
	return out
}

// CountWhere counts items satisfying pred.
func CountWhere(items []Item, pred func(Item) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}
