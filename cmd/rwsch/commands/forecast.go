package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rwsch/internal/forecast"
	"rwsch/internal/visuals"
)

func newForecastCmd() *cobra.Command {
	var (
		flags   historyFlags
		kind    string
		value   float64
		samples int
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast the average rating month by month",
		Long: `Blends the tier's schedule (planned items modelled at rating 5) with the last-year
rating trend. --limit period stops after --value months (1-12); --limit rating stops once the
cumulative average reaches --value (1-5), looking up to 36 months ahead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := forecast.ParseLimitKind(kind)
			if err != nil {
				return err
			}
			limit := forecast.Limit{Kind: k, Value: value}
			if err := limit.Validate(); err != nil {
				return err
			}

			items, selector, env, err := flags.load()
			if err != nil {
				return err
			}
			st, err := selectStrategy(selector, env, items)
			if err != nil {
				return err
			}

			n := samples
			if n < 1 {
				n = cfg.Samples
			}
			if n > 1 {
				seed := flags.seed
				if seed == 0 {
					seed = cfg.Seed
				}
				sampler := forecast.Sampler{Samples: n, Concurrency: cfg.Concurrency, Seed: seed}
				sum, err := sampler.Run(cmd.Context(), env, st, items, limit)
				if err != nil {
					return err
				}
				sum.Results = nil
				return writeJSON(cmd.OutOrStdout(), sum)
			}

			res, err := forecast.Compute(env, st, items, limit)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if cfg.EnableMermaidCharts {
				fmt.Fprintln(cmd.OutOrStdout(), visuals.GenerateForecastChart(res))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "limit", string(forecast.LimitPeriod), "stop condition: period or rating")
	cmd.Flags().Float64Var(&value, "value", 12, "months for --limit period, target average for --limit rating")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of independent samples to summarise (default from config)")
	return cmd
}
