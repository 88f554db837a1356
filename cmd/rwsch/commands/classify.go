package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rwsch/internal/visuals"
)

func newClassifyCmd() *cobra.Command {
	var flags historyFlags
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the activity tier of an item history",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, selector, env, err := flags.load()
			if err != nil {
				return err
			}
			st, ok := selector.Select(env, items)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Name())
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var flags historyFlags
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the twelve-month posting schedule for an item history",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, selector, env, err := flags.load()
			if err != nil {
				return err
			}
			st, err := selectStrategy(selector, env, items)
			if err != nil {
				return err
			}

			s := st.BuildSchedule(env, items)
			if err := writeJSON(cmd.OutOrStdout(), map[string]any{
				"strategy": st.Name(),
				"schedule": s,
				"total":    s.Total(),
			}); err != nil {
				return err
			}
			if cfg.EnableMermaidCharts {
				fmt.Fprintln(cmd.OutOrStdout(), visuals.GenerateScheduleChart(st.Name(), s))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
