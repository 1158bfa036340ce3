package models

// ProviderKind distinguishes infrastructure providers from database providers.
type ProviderKind string

const (
	KindInfrastructure ProviderKind = "infrastructure"
	KindDatabase       ProviderKind = "database"
)

// Tier is a named service level with a cost multiplier.
type Tier struct {
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Name       string  `json:"name" yaml:"name"`
}

// TierEntry pairs a tier id with its definition.
type TierEntry struct {
	ID string `json:"id" yaml:"id"`
	Tier
}

// TierSet is an ordered tier mapping. The first entry is the provider's default tier.
type TierSet []TierEntry

// Get returns the tier with the given id.
func (ts TierSet) Get(id string) (Tier, bool) {
	for _, e := range ts {
		if e.ID == id {
			return e.Tier, true
		}
	}
	return Tier{}, false
}

// Multiplier returns the multiplier for id, or 1 when the tier is unknown.
func (ts TierSet) Multiplier(id string) float64 {
	if t, ok := ts.Get(id); ok {
		return t.Multiplier
	}
	return 1
}

// First returns the id of the first tier, or "" for an empty set.
func (ts TierSet) First() string {
	if len(ts) == 0 {
		return ""
	}
	return ts[0].ID
}

// IDs returns tier ids in insertion order.
func (ts TierSet) IDs() []string {
	ids := make([]string, len(ts))
	for i, e := range ts {
		ids[i] = e.ID
	}
	return ids
}

// AIModel is a catalog entry for a hosted language model.
type AIModel struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	CostPer1000Tokens float64 `json:"cost_per_1k_tokens" yaml:"cost_per_1k_tokens"`
	Provider          string  `json:"provider" yaml:"provider"`
}

// Provider is a catalog entry for an infrastructure or database provider.
type Provider struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	BaseCost      float64 `json:"base_cost" yaml:"base_cost"`
	ScalingFactor float64 `json:"scaling_factor" yaml:"scaling_factor"`
	Tiers         TierSet `json:"tiers" yaml:"tiers"`
}
