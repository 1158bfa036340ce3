package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/quote"
)

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var (
		pf     projectFlags
		output string
		pdf    bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a plain-text quotation for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			engine := estimate.New(nil)
			p, err := pf.project(cmd.Context(), cmd, cfg, engine)
			if err != nil {
				return err
			}
			b := engine.Calculate(p)

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create quote: %w", err)
				}
				defer f.Close()
				w = f
			}

			if pdf {
				return quote.PDF(w, p, b, localeOf(cfg))
			}
			_, err = fmt.Fprint(w, quote.Text(p, b, localeOf(cfg)))
			return err
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the quotation to a file")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "export as PDF (not supported)")
	return cmd
}
