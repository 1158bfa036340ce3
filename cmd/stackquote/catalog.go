package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackquote/stackquote/pkg/catalog"
)

func newCatalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "catalog [models|infrastructure|databases]",
		Short:     "List AI models and providers with their prices and tiers",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"models", "infrastructure", "databases"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			out := cmd.OutOrStdout()

			kind := ""
			if len(args) == 1 {
				kind = args[0]
			}

			if asJSON {
				switch kind {
				case "models":
					return writeJSON(out, c.Models())
				case "infrastructure":
					return writeJSON(out, c.Infrastructure())
				case "databases":
					return writeJSON(out, c.Databases())
				default:
					return writeJSON(out, map[string]any{
						"models":         c.Models(),
						"infrastructure": c.Infrastructure(),
						"databases":      c.Databases(),
					})
				}
			}

			if kind == "" || kind == "models" {
				if err := renderModels(out, c.Models()); err != nil {
					return err
				}
			}
			if kind == "" || kind == "infrastructure" {
				if kind == "" {
					fmt.Fprintln(out)
				}
				if err := renderProviders(out, "Infrastructure", c.Infrastructure()); err != nil {
					return err
				}
			}
			if kind == "" || kind == "databases" {
				if kind == "" {
					fmt.Fprintln(out)
				}
				if err := renderProviders(out, "Databases", c.Databases()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}
