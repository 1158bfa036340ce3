package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/models"
	"github.com/stackquote/stackquote/pkg/quote"
	"github.com/stackquote/stackquote/pkg/recommend"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A56E0"))
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"})
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}).
			Padding(0, 1)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderEstimate(w io.Writer, res estimate.Result) error {
	title := "Estimate"
	if res.Name != "" {
		title += ": " + res.Name
	}
	fmt.Fprintln(w, titleStyle.Render(title))

	if len(res.Items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No selections."))
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "CATEGORY\tITEM\tTIER\tMONTHLY\t")
		for _, it := range res.Items {
			name := it.Name
			switch {
			case !it.Resolved:
				name += " (unknown)"
			case it.Custom:
				name += " (custom)"
			}
			tier := it.TierName
			if tier == "" {
				tier = it.Tier
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", it.Category, name, tier, quote.Money(it.Monthly))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	b := res.Breakdown
	lines := []string{
		fmt.Sprintf("AI             %14s", quote.Money(b.AICosts)),
		fmt.Sprintf("Infrastructure %14s", quote.Money(b.InfrastructureCosts)),
		fmt.Sprintf("Databases      %14s", quote.Money(b.DatabaseCosts)),
		totalStyle.Render(fmt.Sprintf("Monthly        %14s", quote.Money(b.TotalMonthlyCost))),
		totalStyle.Render(fmt.Sprintf("Yearly         %14s", quote.Money(b.TotalYearlyCost))),
	}
	if f := res.Financials; f.MonthlyRevenue > 0 {
		profit := fmt.Sprintf("Profit         %14s  (%.1f%%)", quote.Money(f.MonthlyProfit), f.ProfitMargin)
		if f.MonthlyProfit < 0 {
			profit = lossStyle.Render(profit)
		}
		lines = append(lines,
			"",
			fmt.Sprintf("Revenue        %14s", quote.Money(f.MonthlyRevenue)),
			profit,
		)
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return nil
}

func renderRecommendations(w io.Writer, set recommend.Set) {
	row := func(label string, r models.Recommendation) {
		if r.ID == "" {
			fmt.Fprintf(w, "%s %s\n", titleStyle.Render(label+":"), mutedStyle.Render("none"))
			return
		}
		ref := r.ID
		if r.Tier != "" {
			ref += ":" + r.Tier
		}
		fmt.Fprintf(w, "%s %s %s\n", titleStyle.Render(label+":"), r.Name, mutedStyle.Render("("+ref+")"))
		fmt.Fprintf(w, "  %s\n", r.Reason)
	}
	row("AI model", set.AIModel)
	row("Infrastructure", set.Infrastructure)
	row("Database", set.Database)
}

func renderModels(w io.Writer, ms []models.AIModel) error {
	fmt.Fprintln(w, titleStyle.Render("AI models"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPROVIDER\t$/1K TOKENS")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\n", m.ID, m.Name, m.Provider, m.CostPer1000Tokens)
	}
	return tw.Flush()
}

func renderProviders(w io.Writer, title string, ps []models.Provider) error {
	fmt.Fprintln(w, titleStyle.Render(title))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBASE\tPER USER\tTIERS")
	for _, p := range ps {
		tiers := make([]string, 0, len(p.Tiers))
		for _, t := range p.Tiers {
			tiers = append(tiers, fmt.Sprintf("%s ×%g", t.ID, t.Multiplier))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\n", p.ID, p.Name, quote.Money(p.BaseCost), p.ScalingFactor, strings.Join(tiers, ", "))
	}
	return tw.Flush()
}

// renderComparison lays out presets side by side, one column per preset.
func renderComparison(w io.Writer, results []estimate.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{""}
	for _, r := range results {
		header = append(header, r.Name)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	row := func(label string, value func(estimate.Result) float64) {
		cells := []string{label}
		for _, r := range results {
			cells = append(cells, quote.Money(value(r)))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	row("AI", func(r estimate.Result) float64 { return r.Breakdown.AICosts })
	row("Infrastructure", func(r estimate.Result) float64 { return r.Breakdown.InfrastructureCosts })
	row("Databases", func(r estimate.Result) float64 { return r.Breakdown.DatabaseCosts })
	row("Monthly", func(r estimate.Result) float64 { return r.Breakdown.TotalMonthlyCost })
	row("Yearly", func(r estimate.Result) float64 { return r.Breakdown.TotalYearlyCost })
	row("Profit/month", func(r estimate.Result) float64 { return r.Financials.MonthlyProfit })
	return tw.Flush()
}
