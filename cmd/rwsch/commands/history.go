package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"rwsch/internal/activity"
	"rwsch/internal/itemlog"
	"rwsch/internal/schedule"
)

// historyFlags are shared by every command that evaluates an item history.
type historyFlags struct {
	itemsPath string
	order     string
	seed      uint64
	asOf      string
}

func (f *historyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.itemsPath, "items", "i", "", "JSONL item log ({\"date\":\"YYYY-MM-DD\",\"rating\":N} per line)")
	cmd.Flags().StringVar(&f.order, "order", "", "tier priority, e.g. high,medium,past,high-low,low-low (default from config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (default from config, 0 = time based)")
	cmd.Flags().StringVar(&f.asOf, "as-of", "", "evaluate as of this date (YYYY-MM-DD) instead of today")
	_ = cmd.MarkFlagRequired("items")
}

func (f *historyFlags) load() ([]activity.Item, *schedule.Selector, schedule.Env, error) {
	items, err := itemlog.Load(f.itemsPath)
	if err != nil {
		return nil, nil, schedule.Env{}, err
	}

	selector := cfg.Selector()
	if f.order != "" {
		tiers, err := schedule.ParseTiers(f.order)
		if err != nil {
			return nil, nil, schedule.Env{}, err
		}
		selector = schedule.NewSelector(schedule.Strategies(tiers)...)
	}

	now := time.Now().UTC()
	if f.asOf != "" {
		now, err = time.Parse(itemlog.DateLayout, f.asOf)
		if err != nil {
			return nil, nil, schedule.Env{}, fmt.Errorf("invalid --as-of: %w", err)
		}
	}

	seed := f.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	return items, selector, schedule.NewEnv(now, seed), nil
}

func selectStrategy(selector *schedule.Selector, env schedule.Env, items []activity.Item) (schedule.Strategy, error) {
	st, ok := selector.Select(env, items)
	if !ok {
		return nil, errors.New("no activity tier matches this history; no schedule can be produced")
	}
	return st, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
