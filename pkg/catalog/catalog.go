// Package catalog holds the read-only tables of AI models, infrastructure
// providers and database providers that estimates are priced against.
package catalog

import (
	"slices"

	"github.com/stackquote/stackquote/pkg/models"
)

// Catalog is an immutable set of lookup tables. Accessors return copies,
// so callers cannot mutate the shared seed data.
type Catalog struct {
	models    []models.AIModel
	infra     []models.Provider
	databases []models.Provider

	modelIndex map[string]int
	infraIndex map[string]int
	dbIndex    map[string]int
}

var defaultCatalog = New(seedModels, seedInfrastructure, seedDatabases)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a Catalog from the given tables. Entries keep their order;
// when ids repeat, the first entry wins lookups.
func New(aiModels []models.AIModel, infra, databases []models.Provider) *Catalog {
	c := &Catalog{
		models:     slices.Clone(aiModels),
		infra:      cloneProviders(infra),
		databases:  cloneProviders(databases),
		modelIndex: make(map[string]int, len(aiModels)),
		infraIndex: make(map[string]int, len(infra)),
		dbIndex:    make(map[string]int, len(databases)),
	}
	for i, m := range c.models {
		if _, ok := c.modelIndex[m.ID]; !ok {
			c.modelIndex[m.ID] = i
		}
	}
	for i, p := range c.infra {
		if _, ok := c.infraIndex[p.ID]; !ok {
			c.infraIndex[p.ID] = i
		}
	}
	for i, p := range c.databases {
		if _, ok := c.dbIndex[p.ID]; !ok {
			c.dbIndex[p.ID] = i
		}
	}
	return c
}

func cloneProviders(in []models.Provider) []models.Provider {
	out := make([]models.Provider, len(in))
	for i, p := range in {
		p.Tiers = slices.Clone(p.Tiers)
		out[i] = p
	}
	return out
}

// Models returns all AI models in catalog order.
func (c *Catalog) Models() []models.AIModel {
	return slices.Clone(c.models)
}

// Infrastructure returns all infrastructure providers in catalog order.
func (c *Catalog) Infrastructure() []models.Provider {
	return cloneProviders(c.infra)
}

// Databases returns all database providers in catalog order.
func (c *Catalog) Databases() []models.Provider {
	return cloneProviders(c.databases)
}

// Providers returns the provider table for kind. Unknown kinds yield nil.
func (c *Catalog) Providers(kind models.ProviderKind) []models.Provider {
	switch kind {
	case models.KindInfrastructure:
		return c.Infrastructure()
	case models.KindDatabase:
		return c.Databases()
	default:
		return nil
	}
}

// Model looks up an AI model by id.
func (c *Catalog) Model(id string) (models.AIModel, bool) {
	i, ok := c.modelIndex[id]
	if !ok {
		return models.AIModel{}, false
	}
	return c.models[i], true
}

// Provider looks up an infrastructure or database provider by id.
func (c *Catalog) Provider(kind models.ProviderKind, id string) (models.Provider, bool) {
	var (
		table []models.Provider
		index map[string]int
	)
	switch kind {
	case models.KindInfrastructure:
		table, index = c.infra, c.infraIndex
	case models.KindDatabase:
		table, index = c.databases, c.dbIndex
	default:
		return models.Provider{}, false
	}
	i, ok := index[id]
	if !ok {
		return models.Provider{}, false
	}
	p := table[i]
	p.Tiers = slices.Clone(p.Tiers)
	return p, true
}

// ProviderTiers returns a provider's tiers in order, or nil when the provider is unknown.
func (c *Catalog) ProviderTiers(kind models.ProviderKind, id string) models.TierSet {
	p, ok := c.Provider(kind, id)
	if !ok {
		return nil
	}
	return p.Tiers
}

// DefaultTier returns the first tier id of a provider, or "" when the provider is unknown.
func (c *Catalog) DefaultTier(kind models.ProviderKind, id string) string {
	return c.ProviderTiers(kind, id).First()
}
