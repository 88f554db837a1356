package commands

import (
	"github.com/spf13/cobra"

	"rwsch/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve classification, scheduling and forecasting as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.NewServer(cfg, Version).Start(cmd.Context())
		},
	}
}
