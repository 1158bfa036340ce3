package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/quote"
)

func newPresetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved project presets",
	}
	cmd.AddCommand(
		newPresetListCmd(opts),
		newPresetSaveCmd(opts),
		newPresetShowCmd(opts),
		newPresetDeleteCmd(opts),
		newPresetCompareCmd(opts),
	)
	return cmd
}

func newPresetListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			m, closePresets, err := openPresets(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePresets()

			presets := m.List()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, presets)
			}
			if len(presets) == 0 {
				fmt.Fprintln(out, "No presets saved.")
				return nil
			}

			engine := estimate.New(nil)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tNAME\tUSERS\tCALLS\tMONTHLY")
			for i, p := range presets {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					i, p.Name, quote.Count(float64(p.UserCount)), quote.Count(p.APICallsPerUserPerMonth),
					quote.Money(engine.Calculate(p).TotalMonthlyCost))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print presets as JSON")
	return cmd
}

func newPresetSaveCmd(opts *rootOptions) *cobra.Command {
	var pf projectFlags

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a project as a named preset",
		Example: `  stackquote preset save launch --users 5000 --calls 20 --model claude-3-haiku --infra digitalocean:premium
  stackquote preset save imported -f project.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			p, err := pf.project(cmd.Context(), cmd, cfg, estimate.New(nil))
			if err != nil {
				return err
			}

			m, closePresets, err := openPresets(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePresets()

			saved, err := m.Add(cmd.Context(), args[0], p)
			if err != nil {
				return fmt.Errorf("save preset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q.\n", saved.Name)
			return nil
		},
	}

	pf.register(cmd)
	return cmd
}

func newPresetShowCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a preset and its estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			m, closePresets, err := openPresets(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePresets()

			p, err := m.Get(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			return renderEstimate(cmd.OutOrStdout(), estimate.New(nil).Estimate(p))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the saved project as JSON")
	return cmd
}

func newPresetDeleteCmd(opts *rootOptions) *cobra.Command {
	var byIndex bool

	cmd := &cobra.Command{
		Use:   "delete <name|index>",
		Short: "Delete presets by name, or by list position with --index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			m, closePresets, err := openPresets(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePresets()

			out := cmd.OutOrStdout()
			if byIndex {
				i, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid index %q", args[0])
				}
				p, err := m.At(i)
				if err != nil {
					return err
				}
				if err := m.Delete(cmd.Context(), i); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted preset %q.\n", p.Name)
				return nil
			}

			n, err := m.DeleteByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %d preset(s) named %q.\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&byIndex, "index", false, "treat the argument as a list position")
	return cmd
}

func newPresetCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <name> <name>...",
		Short: "Compare the estimates of two or more presets side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			m, closePresets, err := openPresets(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePresets()

			engine := estimate.New(nil)
			results := make([]estimate.Result, 0, len(args))
			var errs []error
			for _, name := range args {
				p, err := m.Get(name)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				results = append(results, engine.Estimate(p))
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}
			return renderComparison(cmd.OutOrStdout(), results)
		},
	}
}
