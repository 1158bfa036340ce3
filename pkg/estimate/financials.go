package estimate

import "github.com/stackquote/stackquote/pkg/models"

// Financials derives revenue and profit from p's subscription price and a
// breakdown computed for p. ProfitMargin is a percentage and is 0 when there
// is no revenue.
func Financials(p models.Project, b models.CostBreakdown) models.Financials {
	f := models.Financials{
		MonthlyRevenue: float64(p.UserCount) * p.SubscriptionPricePerUser,
	}
	f.YearlyRevenue = f.MonthlyRevenue * MonthsPerYear
	f.MonthlyProfit = f.MonthlyRevenue - b.TotalMonthlyCost
	f.YearlyProfit = f.YearlyRevenue - b.TotalYearlyCost
	if f.MonthlyRevenue != 0 {
		f.ProfitMargin = f.MonthlyProfit / f.MonthlyRevenue * 100
	}
	return f
}
