package models

// CostBreakdown is the derived monthly/yearly cost of a project.
type CostBreakdown struct {
	AICosts             float64 `json:"ai_costs"`
	InfrastructureCosts float64 `json:"infrastructure_costs"`
	DatabaseCosts       float64 `json:"database_costs"`
	TotalMonthlyCost    float64 `json:"total_monthly_cost"`
	TotalYearlyCost     float64 `json:"total_yearly_cost"`
}

// Category names the three cost categories.
type Category string

const (
	CategoryAI             Category = "ai"
	CategoryInfrastructure Category = "infrastructure"
	CategoryDatabase       Category = "database"
)

// LineItem is the monthly cost contributed by a single selection.
type LineItem struct {
	Category    Category `json:"category"`
	SelectionID string   `json:"selection_id"`
	RefID       string   `json:"ref_id"`
	Name        string   `json:"name"`
	Tier        string   `json:"tier,omitempty"`
	TierName    string   `json:"tier_name,omitempty"`
	Monthly     float64  `json:"monthly"`
	Custom      bool     `json:"custom"`
	// Resolved is false when RefID does not exist in the catalog.
	Resolved bool `json:"resolved"`
}

// Financials is the revenue and profit derived from a project and its breakdown.
type Financials struct {
	MonthlyRevenue float64 `json:"monthly_revenue"`
	YearlyRevenue  float64 `json:"yearly_revenue"`
	MonthlyProfit  float64 `json:"monthly_profit"`
	YearlyProfit   float64 `json:"yearly_profit"`
	ProfitMargin   float64 `json:"profit_margin"`
}

// Recommendation is the preferred catalog entry for a scale bracket.
// Tier is empty for AI model recommendations.
type Recommendation struct {
	ID     string `json:"id"`
	Tier   string `json:"tier,omitempty"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}
