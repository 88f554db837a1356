package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ItemInput is an inline history item.
type ItemInput struct {
	Date   string `json:"date" jsonschema:"Calendar day the item was posted, YYYY-MM-DD"`
	Rating int    `json:"rating,omitempty" jsonschema:"Rating in [1,5]; omit or 0 when unrated"`
}

// HistoryInput identifies the history to analyse. Exactly one of Items or Source is used.
type HistoryInput struct {
	Items         []ItemInput `json:"items,omitempty" jsonschema:"Inline item history"`
	Source        string      `json:"source,omitempty" jsonschema:"Name of a JSONL item log in the configured items directory"`
	StrategyOrder []string    `json:"strategy_order,omitempty" jsonschema:"Optional tier priority, e.g. ['high','medium','past','high-low','low-low']"`
	Seed          uint64      `json:"seed,omitempty" jsonschema:"Optional random seed for reproducible schedules"`
}

// ForecastInput adds the stop condition to a history.
type ForecastInput struct {
	Items         []ItemInput `json:"items,omitempty" jsonschema:"Inline item history"`
	Source        string      `json:"source,omitempty" jsonschema:"Name of a JSONL item log in the configured items directory"`
	StrategyOrder []string    `json:"strategy_order,omitempty" jsonschema:"Optional tier priority"`
	Seed          uint64      `json:"seed,omitempty" jsonschema:"Optional random seed for reproducible forecasts"`
	LimitKind     string      `json:"limit_kind" jsonschema:"Stop condition: 'period' (months, 1-12) or 'rating' (target average, 1-5)"`
	LimitValue    float64     `json:"limit_value" jsonschema:"Number of months or the target average rating"`
	Samples       int         `json:"samples,omitempty" jsonschema:"Optional number of independent forecast samples to summarise, at most 1000"`
}

func (in ForecastInput) history() HistoryInput {
	return HistoryInput{Items: in.Items, Source: in.Source, StrategyOrder: in.StrategyOrder, Seed: in.Seed}
}

// ClassifyOutput reports the selected tier.
type ClassifyOutput struct {
	Matched  bool   `json:"matched"`
	Strategy string `json:"strategy,omitempty"`
	Items    int    `json:"items"`
}

// ScheduleOutput reports the selected tier and its twelve-month plan.
type ScheduleOutput struct {
	Strategy string `json:"strategy"`
	Schedule []int  `json:"schedule"`
	Total    int    `json:"total"`
}

// EntryOutput is one forecast month.
type EntryOutput struct {
	Period           int     `json:"period"`
	ScheduledItems   int     `json:"scheduled_items"`
	ScheduledRating  float64 `json:"scheduled_rating"`
	HistoricalItems  int     `json:"historical_items"`
	HistoricalRating float64 `json:"historical_rating"`
	TotalItems       int     `json:"total_items"`
	AverageRating    float64 `json:"average_rating"`
}

// ForecastOutput is a forecast, optionally with the spread of additional samples.
type ForecastOutput struct {
	RunID         string        `json:"run_id"`
	Strategy      string        `json:"strategy"`
	Schedule      []int         `json:"schedule"`
	Entries       []EntryOutput `json:"entries"`
	Samples       int           `json:"samples"`
	MinAverage    float64       `json:"min_average"`
	MedianAverage float64       `json:"median_average"`
	MaxAverage    float64       `json:"max_average"`
}

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name: "classify_activity",
		Description: "Classify an item history (e.g. reviews) into an activity tier. " +
			"Returns matched=false when no tier applies; that is a valid outcome, not a failure.",
		InputSchema: mustSchema[HistoryInput](),
	}, s.handleClassify)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_schedule",
		Description: "Select the activity tier for an item history and return its twelve-month posting schedule.",
		InputSchema: mustSchema[HistoryInput](),
	}, s.handleSchedule)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name: "run_forecast",
		Description: "Forecast the cumulative average rating month by month, blending the tier's schedule (modelled at rating 5) " +
			"with the last-year trend. Stops after 'period' months or once the average reaches the 'rating' target (up to 36 months).",
		InputSchema: mustSchema[ForecastInput](),
	}, s.handleForecast)
}

func mustSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(err)
	}
	return schema
}
