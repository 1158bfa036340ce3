package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/mcp"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start stackquote as an MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			// stdout carries the protocol stream.
			if cfg.Log.Output == "stdout" {
				cfg.Log.Output = "stderr"
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, closePresets, err := openPresets(ctx, cfg)
			if err != nil {
				return err
			}
			defer closePresets()

			srv := mcp.New(estimate.New(nil), version,
				mcp.WithPresets(m),
				mcp.WithLocale(localeOf(cfg)),
				mcp.WithLogger(log),
			)
			return srv.Run(ctx, os.Stdin, os.Stdout)
		},
	}
}
