package estimate

import (
	"github.com/stackquote/stackquote/pkg/catalog"
	"github.com/stackquote/stackquote/pkg/models"
)

// MonthsPerYear converts monthly totals to yearly totals.
const MonthsPerYear = 12

// Engine prices projects against a catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an Engine. If c is nil, the default catalog is used.
func New(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{catalog: c}
}

var defaultEngine = New(nil)

// Calculate prices p against the default catalog.
func Calculate(p models.Project) models.CostBreakdown {
	return defaultEngine.Calculate(p)
}

// Catalog returns the catalog the engine prices against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Calculate returns the cost breakdown of p.
func (e *Engine) Calculate(p models.Project) models.CostBreakdown {
	var b models.CostBreakdown

	for _, s := range p.AITechnologies {
		cost, _ := e.aiSelectionCost(s, p)
		b.AICosts += cost
	}
	for _, s := range p.Infrastructure {
		cost, _ := e.providerSelectionCost(models.KindInfrastructure, s.ProviderID, s.Tier, s.CustomCost, p.UserCount)
		b.InfrastructureCosts += cost
	}
	for _, s := range p.Databases {
		cost, _ := e.providerSelectionCost(models.KindDatabase, s.ProviderID, s.Tier, s.CustomCost, p.UserCount)
		b.DatabaseCosts += cost
	}

	b.TotalMonthlyCost = b.AICosts + b.InfrastructureCosts + b.DatabaseCosts
	b.TotalYearlyCost = b.TotalMonthlyCost * MonthsPerYear
	return b
}

// ModelCost returns the monthly cost of a model at the given scale, or 0 for an unknown model.
func (e *Engine) ModelCost(modelID string, userCount int, callsPerUser float64) float64 {
	m, ok := e.catalog.Model(modelID)
	if !ok {
		return 0
	}
	return modelCost(m, userCount, callsPerUser)
}

// InfrastructureCost returns the monthly cost of an infrastructure provider tier,
// or 0 for an unknown provider.
func (e *Engine) InfrastructureCost(providerID, tier string, userCount int) float64 {
	cost, _ := e.providerSelectionCost(models.KindInfrastructure, providerID, tier, nil, userCount)
	return cost
}

// DatabaseCost returns the monthly cost of a database provider tier,
// or 0 for an unknown provider.
func (e *Engine) DatabaseCost(providerID, tier string, userCount int) float64 {
	cost, _ := e.providerSelectionCost(models.KindDatabase, providerID, tier, nil, userCount)
	return cost
}

func modelCost(m models.AIModel, userCount int, callsPerUser float64) float64 {
	return m.CostPer1000Tokens * float64(userCount) * callsPerUser
}

func providerCost(p models.Provider, tier string, userCount int) float64 {
	mult := p.Tiers.Multiplier(tier)
	base := p.BaseCost * mult
	scaling := p.ScalingFactor * float64(userCount) * mult
	return base + scaling
}

// aiSelectionCost reports the selection's cost and whether the model resolved.
func (e *Engine) aiSelectionCost(s models.TechnologySelection, p models.Project) (float64, bool) {
	m, ok := e.catalog.Model(s.ModelID)
	if !ok {
		return 0, false
	}
	if s.CustomCost != nil {
		return *s.CustomCost, true
	}
	return modelCost(m, p.UserCount, p.APICallsPerUserPerMonth), true
}

func (e *Engine) providerSelectionCost(kind models.ProviderKind, providerID, tier string, custom *float64, userCount int) (float64, bool) {
	prov, ok := e.catalog.Provider(kind, providerID)
	if !ok {
		return 0, false
	}
	if custom != nil {
		return *custom, true
	}
	return providerCost(prov, tier, userCount), true
}
