package itemlog

import (
	"fmt"
	"time"

	"rwsch/internal/activity"
)

// DateLayout is the on-disk date format of a record.
const DateLayout = "2006-01-02"

// Record is the JSONL representation of an activity item.
type Record struct {
	// Date is the calendar day the item was posted (YYYY-MM-DD).
	Date string `json:"date"`
	// Rating is in [1,5]; omitted or zero means unset.
	Rating int `json:"rating,omitempty"`
}

// ToItem parses the record into an item.
func (r Record) ToItem() (activity.Item, error) {
	ts, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return activity.Item{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return activity.Item{}, fmt.Errorf("rating %d out of range [0,5]", r.Rating)
	}
	return activity.Item{Timestamp: ts, Rating: r.Rating}, nil
}

// FromItem converts an item to its record form.
func FromItem(it activity.Item) Record {
	return Record{Date: it.Timestamp.Format(DateLayout), Rating: it.Rating}
}

// ToItems converts records, failing on the first invalid one.
func ToItems(records []Record) ([]activity.Item, error) {
	items := make([]activity.Item, 0, len(records))
	for i, r := range records {
		it, err := r.ToItem()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}
