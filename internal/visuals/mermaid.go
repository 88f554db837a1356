package visuals

import (
	"fmt"
	"math"
	"strings"

	"rwsch/internal/forecast"
	"rwsch/internal/schedule"
)

// GenerateScheduleChart creates a Mermaid bar chart of planned items per month.
func GenerateScheduleChart(title string, s schedule.Schedule) string {
	if len(s) == 0 {
		return ""
	}

	var labels []string
	var values []string

	maxVal := 0
	for i, count := range s {
		labels = append(labels, fmt.Sprintf("\"M%d\"", i+1))
		values = append(values, fmt.Sprintf("%d", count))
		if count > maxVal {
			maxVal = count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Posting Schedule (%s)\"\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Planned Items\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateForecastChart creates a Mermaid chart of the cumulative average rating with
// the target drawn as a flat line for rating-limited forecasts.
func GenerateForecastChart(res forecast.Result) string {
	if len(res.Entries) == 0 {
		return ""
	}

	var labels []string
	var averages []string
	var targets []string

	minY := 5.0
	for _, e := range res.Entries {
		labels = append(labels, fmt.Sprintf("%d", e.Period))
		averages = append(averages, fmt.Sprintf("%.2f", e.AverageRating))
		if res.Limit.Kind == forecast.LimitRating {
			targets = append(targets, fmt.Sprintf("%.2f", res.Limit.Value))
		}
		if e.AverageRating < minY {
			minY = e.AverageRating
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Rating Forecast (%s)\"\n", res.Strategy))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Average Rating\" %d --> 5\n", int(math.Floor(minY))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(averages, ", ")))
	if len(targets) > 0 {
		sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(targets, ", ")))
	}
	sb.WriteString("```")
	return sb.String()
}
