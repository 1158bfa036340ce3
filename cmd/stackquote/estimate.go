package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/models"
)

func newEstimateCmd(opts *rootOptions) *cobra.Command {
	var (
		pf      projectFlags
		asJSON  bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "estimate [project-file...]",
		Short: "Estimate monthly and yearly costs of a project",
		Long: `Estimate the cost of a project described by flags, a project file or a saved preset.

With several project files as arguments, the projects are estimated concurrently.`,
		Example: `  stackquote estimate --users 1000 --calls 10 --model gpt-4o --infra vercel:pro --db supabase:pro
  stackquote estimate -f project.yaml --json
  stackquote estimate a.yaml b.yaml c.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			engine := estimate.New(nil)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				if pf.file != "" || pf.preset != "" {
					return fmt.Errorf("project file arguments cannot be combined with --file or --preset")
				}
				log, err := newLogger(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = log.Sync() }()

				projects := make([]models.Project, 0, len(args))
				for _, path := range args {
					p, err := readProjectFile(path)
					if err != nil {
						return err
					}
					if p.Name == "" {
						p.Name = path
					}
					projects = append(projects, p)
				}

				if !cmd.Flags().Changed("workers") {
					workers = cfg.Batch.Workers
				}
				log.Debug("batch estimate", zap.Int("projects", len(projects)), zap.Int("workers", workers))
				results, err := engine.Batch(cmd.Context(), projects, workers)
				if err != nil {
					return fmt.Errorf("batch estimate: %w", err)
				}
				if asJSON {
					return writeJSON(out, results)
				}
				for i, r := range results {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if err := renderEstimate(out, r); err != nil {
						return err
					}
				}
				return nil
			}

			p, err := pf.project(cmd.Context(), cmd, cfg, engine)
			if err != nil {
				return err
			}
			res := engine.Estimate(p)
			if asJSON {
				return writeJSON(out, res)
			}
			return renderEstimate(out, res)
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent estimates for project file arguments (default from config)")
	return cmd
}
