package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"rwsch/internal/activity"
	"rwsch/internal/forecast"
	"rwsch/internal/itemlog"
	"rwsch/internal/schedule"
	"rwsch/internal/visuals"
)

func (s *Server) handleClassify(ctx context.Context, req *gomcp.CallToolRequest, in HistoryInput) (*gomcp.CallToolResult, ClassifyOutput, error) {
	items, selector, env, err := s.prepare(in)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	out := ClassifyOutput{Items: len(items)}
	if st, ok := selector.Select(env, items); ok {
		out.Matched = true
		out.Strategy = st.Name()
	}
	return s.textResult(out), out, nil
}

func (s *Server) handleSchedule(ctx context.Context, req *gomcp.CallToolRequest, in HistoryInput) (*gomcp.CallToolResult, ScheduleOutput, error) {
	items, selector, env, err := s.prepare(in)
	if err != nil {
		return nil, ScheduleOutput{}, err
	}

	plan, ok := selector.Plan(env, items)
	if !ok {
		return nil, ScheduleOutput{}, schedule.ErrNoStrategyMatched
	}

	out := ScheduleOutput{
		Strategy: plan.Strategy.Name(),
		Schedule: plan.Schedule,
		Total:    plan.Schedule.Total(),
	}

	res := s.textResult(out)
	if s.cfg.EnableMermaidCharts {
		res.Content = append(res.Content, &gomcp.TextContent{Text: visuals.GenerateScheduleChart(out.Strategy, plan.Schedule)})
	}
	return res, out, nil
}

func (s *Server) handleForecast(ctx context.Context, req *gomcp.CallToolRequest, in ForecastInput) (*gomcp.CallToolResult, ForecastOutput, error) {
	kind, err := forecast.ParseLimitKind(in.LimitKind)
	if err != nil {
		return nil, ForecastOutput{}, err
	}
	limit := forecast.Limit{Kind: kind, Value: in.LimitValue}
	if err := limit.Validate(); err != nil {
		return nil, ForecastOutput{}, err
	}

	items, selector, env, err := s.prepare(in.history())
	if err != nil {
		return nil, ForecastOutput{}, err
	}

	st, ok := selector.Select(env, items)
	if !ok {
		return nil, ForecastOutput{}, schedule.ErrNoStrategyMatched
	}

	samples := in.Samples
	if samples < 1 {
		samples = s.cfg.Samples
	}

	var out ForecastOutput
	var primary forecast.Result
	if samples > 1 {
		sampler := forecast.Sampler{Samples: samples, Concurrency: s.cfg.Concurrency, Seed: s.seed(in.Seed)}
		sum, err := sampler.Run(ctx, env, st, items, limit)
		if err != nil {
			return nil, ForecastOutput{}, err
		}
		primary = sum.Results[0]
		out = toForecastOutput(sum.RunID, primary)
		out.Samples = sum.Samples
		out.MinAverage = sum.MinAverage
		out.MedianAverage = sum.MedianAverage
		out.MaxAverage = sum.MaxAverage
	} else {
		primary, err = forecast.Compute(env, st, items, limit)
		if err != nil {
			return nil, ForecastOutput{}, err
		}
		out = toForecastOutput(uuid.NewString(), primary)
		final, _ := primary.Final()
		out.Samples = 1
		out.MinAverage = final.AverageRating
		out.MedianAverage = final.AverageRating
		out.MaxAverage = final.AverageRating
	}

	log.Info().Str("runId", out.RunID).Str("strategy", out.Strategy).Int("periods", len(out.Entries)).Msg("Forecast served")

	res := s.textResult(out)
	if s.cfg.EnableMermaidCharts {
		res.Content = append(res.Content, &gomcp.TextContent{Text: visuals.GenerateForecastChart(primary)})
	}
	return res, out, nil
}

// prepare resolves the history, the selector and the evaluation environment of a call.
func (s *Server) prepare(in HistoryInput) ([]activity.Item, *schedule.Selector, schedule.Env, error) {
	items, err := s.resolveItems(in)
	if err != nil {
		return nil, nil, schedule.Env{}, err
	}

	selector := s.cfg.Selector()
	if len(in.StrategyOrder) > 0 {
		tiers, err := schedule.ParseTiers(strings.Join(in.StrategyOrder, ","))
		if err != nil {
			return nil, nil, schedule.Env{}, err
		}
		selector = schedule.NewSelector(schedule.Strategies(tiers)...)
	}

	return items, selector, schedule.NewEnv(s.now(), s.seed(in.Seed)), nil
}

// seed prefers a per-call seed over the configured one.
func (s *Server) seed(requested uint64) uint64 {
	if requested != 0 {
		return requested
	}
	return s.cfg.Seed
}

func (s *Server) resolveItems(in HistoryInput) ([]activity.Item, error) {
	switch {
	case len(in.Items) > 0 && in.Source != "":
		return nil, errors.New("provide either items or source, not both")
	case in.Source != "":
		// Sources are plain names inside the items directory.
		name := filepath.Base(in.Source)
		if name != in.Source || name == "." || name == ".." {
			return nil, fmt.Errorf("invalid source name %q", in.Source)
		}
		if filepath.Ext(name) == "" {
			name += ".jsonl"
		}
		return itemlog.Load(filepath.Join(s.cfg.ItemsDir, name))
	}

	records := make([]itemlog.Record, len(in.Items))
	for i, it := range in.Items {
		records[i] = itemlog.Record{Date: it.Date, Rating: it.Rating}
	}
	return itemlog.ToItems(records)
}

func (s *Server) textResult(data any) *gomcp.CallToolResult {
	out, _ := json.MarshalIndent(data, "", "  ")
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: string(out)}},
	}
}

func toForecastOutput(runID string, r forecast.Result) ForecastOutput {
	entries := make([]EntryOutput, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = EntryOutput(e)
	}
	return ForecastOutput{
		RunID:    runID,
		Strategy: r.Strategy,
		Schedule: r.Schedule,
		Entries:  entries,
	}
}
