package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stackquote/stackquote/pkg/recommend"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		users  int
		calls  float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an AI model, infrastructure and database for a scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("users") {
				users = cfg.Defaults.UserCount
			}
			if !cmd.Flags().Changed("calls") {
				calls = cfg.Defaults.APICallsPerUserPerMonth
			}
			if users < 0 || calls < 0 {
				return errors.New("--users and --calls must not be negative")
			}

			set := recommend.New(nil, localeOf(cfg)).All(users, calls)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), set)
			}
			renderRecommendations(cmd.OutOrStdout(), set)
			return nil
		},
	}

	cmd.Flags().IntVarP(&users, "users", "u", 0, "number of users (default from config)")
	cmd.Flags().Float64Var(&calls, "calls", 0, "API calls per user per month (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print recommendations as JSON")
	return cmd
}
