package estimate

import "github.com/stackquote/stackquote/pkg/models"

// Itemize returns one line per selection of p, in category then list order.
// Lines for dangling ids are kept with Resolved=false and a zero cost.
func (e *Engine) Itemize(p models.Project) []models.LineItem {
	items := make([]models.LineItem, 0, len(p.AITechnologies)+len(p.Infrastructure)+len(p.Databases))

	for _, s := range p.AITechnologies {
		cost, ok := e.aiSelectionCost(s, p)
		item := models.LineItem{
			Category:    models.CategoryAI,
			SelectionID: s.ID,
			RefID:       s.ModelID,
			Name:        s.ModelID,
			Monthly:     cost,
			Custom:      ok && s.CustomCost != nil,
			Resolved:    ok,
		}
		if m, found := e.catalog.Model(s.ModelID); found {
			item.Name = m.Name
		}
		items = append(items, item)
	}
	for _, s := range p.Infrastructure {
		items = append(items, e.providerItem(models.CategoryInfrastructure, models.KindInfrastructure,
			s.ID, s.ProviderID, s.Tier, s.CustomCost, p.UserCount))
	}
	for _, s := range p.Databases {
		items = append(items, e.providerItem(models.CategoryDatabase, models.KindDatabase,
			s.ID, s.ProviderID, s.Tier, s.CustomCost, p.UserCount))
	}
	return items
}

func (e *Engine) providerItem(cat models.Category, kind models.ProviderKind, selectionID, providerID, tier string, custom *float64, users int) models.LineItem {
	cost, ok := e.providerSelectionCost(kind, providerID, tier, custom, users)
	item := models.LineItem{
		Category:    cat,
		SelectionID: selectionID,
		RefID:       providerID,
		Name:        providerID,
		Tier:        tier,
		TierName:    tier,
		Monthly:     cost,
		Custom:      ok && custom != nil,
		Resolved:    ok,
	}
	if prov, found := e.catalog.Provider(kind, providerID); found {
		item.Name = prov.Name
		if t, found := prov.Tiers.Get(tier); found {
			item.TierName = t.Name
		}
	}
	return item
}
