package mcp

import (
	"fmt"
	"strings"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/models"
	"github.com/stackquote/stackquote/pkg/quote"
	"github.com/stackquote/stackquote/pkg/recommend"
)

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// formatEstimate formats an estimate as line items followed by totals.
func formatEstimate(res estimate.Result) string {
	var b strings.Builder
	if res.Name != "" {
		fmt.Fprintf(&b, "Estimate: %s\n\n", res.Name)
	}

	if len(res.Items) == 0 {
		b.WriteString("No selections.\n")
	} else {
		fmt.Fprintf(&b, "%-15s %-28s %-16s %14s\n", "Category", "Item", "Tier", "Monthly")
		b.WriteString(strings.Repeat("-", 76) + "\n")
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
			fmt.Fprintf(&b, "%-15s %-28s %-16s %14s\n",
				it.Category, truncate(name, 28), truncate(tier, 16), quote.Money(it.Monthly))
		}
	}

	bd := res.Breakdown
	b.WriteString("\n")
	fmt.Fprintf(&b, "  AI:             %14s\n", quote.Money(bd.AICosts))
	fmt.Fprintf(&b, "  Infrastructure: %14s\n", quote.Money(bd.InfrastructureCosts))
	fmt.Fprintf(&b, "  Databases:      %14s\n", quote.Money(bd.DatabaseCosts))
	fmt.Fprintf(&b, "  Total monthly:  %14s\n", quote.Money(bd.TotalMonthlyCost))
	fmt.Fprintf(&b, "  Total yearly:   %14s\n", quote.Money(bd.TotalYearlyCost))

	f := res.Financials
	if f.MonthlyRevenue > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Revenue:        %14s / month\n", quote.Money(f.MonthlyRevenue))
		fmt.Fprintf(&b, "  Profit:         %14s / month\n", quote.Money(f.MonthlyProfit))
		fmt.Fprintf(&b, "  Margin:         %13.1f%%\n", f.ProfitMargin)
	}
	return b.String()
}

// formatRecommendations formats a recommendation set.
func formatRecommendations(set recommend.Set) string {
	var b strings.Builder
	write := func(label string, r models.Recommendation) {
		if r.ID == "" {
			fmt.Fprintf(&b, "%s: none\n\n", label)
			return
		}
		id := r.ID
		if r.Tier != "" {
			id += ":" + r.Tier
		}
		fmt.Fprintf(&b, "%s: %s (%s)\n  %s\n\n", label, r.Name, id, r.Reason)
	}
	write("AI model", set.AIModel)
	write("Infrastructure", set.Infrastructure)
	write("Database", set.Database)
	return strings.TrimSuffix(b.String(), "\n")
}

// formatModels formats AI models as a text table.
func formatModels(ms []models.AIModel) string {
	if len(ms) == 0 {
		return "No AI models in catalog.\n"
	}
	var b strings.Builder
	b.WriteString("AI models\n")
	fmt.Fprintf(&b, "%-22s %-30s %-12s %12s\n", "ID", "Name", "Provider", "$/1K tokens")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	for _, m := range ms {
		fmt.Fprintf(&b, "%-22s %-30s %-12s %12.5f\n",
			m.ID, truncate(m.Name, 30), m.Provider, m.CostPer1000Tokens)
	}
	return b.String()
}

// formatProviders formats providers with their tiers as a text table.
func formatProviders(title string, ps []models.Provider) string {
	if len(ps) == 0 {
		return fmt.Sprintf("No %s providers in catalog.\n", strings.ToLower(title))
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	fmt.Fprintf(&b, "%-15s %-20s %10s %10s  %s\n", "ID", "Name", "Base", "Per user", "Tiers (multiplier)")
	b.WriteString(strings.Repeat("-", 90) + "\n")
	for _, p := range ps {
		tiers := make([]string, 0, len(p.Tiers))
		for _, t := range p.Tiers {
			tiers = append(tiers, fmt.Sprintf("%s ×%g", t.ID, t.Multiplier))
		}
		fmt.Fprintf(&b, "%-15s %-20s %10s %10.5f  %s\n",
			p.ID, truncate(p.Name, 20), quote.Money(p.BaseCost), p.ScalingFactor, strings.Join(tiers, ", "))
	}
	return b.String()
}

// formatPresets formats saved presets with their current monthly total.
func formatPresets(e *estimate.Engine, presets []models.Project) string {
	if len(presets) == 0 {
		return "No presets saved."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%4s  %-24s %10s %10s %14s\n", "#", "Name", "Users", "Calls", "Monthly")
	b.WriteString(strings.Repeat("-", 66) + "\n")
	for i, p := range presets {
		total := e.Calculate(p).TotalMonthlyCost
		fmt.Fprintf(&b, "%4d  %-24s %10s %10s %14s\n",
			i, truncate(p.Name, 24), quote.Count(float64(p.UserCount)),
			quote.Count(p.APICallsPerUserPerMonth), quote.Money(total))
	}
	return b.String()
}
