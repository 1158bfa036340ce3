package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackquote/stackquote/pkg/models"
)

func TestDefaultCatalogEntries(t *testing.T) {
	c := Default()

	m, ok := c.Model("gpt-4o")
	require.True(t, ok)
	assert.Equal(t, 0.01, m.CostPer1000Tokens)

	v, ok := c.Provider(models.KindInfrastructure, "vercel")
	require.True(t, ok)
	assert.Equal(t, 20.0, v.BaseCost)
	assert.Equal(t, 0.00014, v.ScalingFactor)
	pro, ok := v.Tiers.Get("pro")
	require.True(t, ok)
	assert.Equal(t, 1.0, pro.Multiplier)
}

func TestEveryProviderHasTiers(t *testing.T) {
	c := Default()
	for _, kind := range []models.ProviderKind{models.KindInfrastructure, models.KindDatabase} {
		for _, p := range c.Providers(kind) {
			assert.NotEmpty(t, p.Tiers, "%s provider %s has no tiers", kind, p.ID)
		}
	}
}

func TestUniqueIDs(t *testing.T) {
	c := Default()
	seen := make(map[string]bool)
	for _, m := range c.Models() {
		assert.False(t, seen[m.ID], "duplicate model id %s", m.ID)
		seen[m.ID] = true
	}
	for _, kind := range []models.ProviderKind{models.KindInfrastructure, models.KindDatabase} {
		seen := make(map[string]bool)
		for _, p := range c.Providers(kind) {
			assert.False(t, seen[p.ID], "duplicate %s id %s", kind, p.ID)
			seen[p.ID] = true
		}
	}
}

func TestRecommendedEntriesExist(t *testing.T) {
	c := Default()
	infra := map[string]string{
		"vercel":       "hobby",
		"digitalocean": "premium",
		"aws-ec2":      "medium",
		"gcp":          "e2standard2",
	}
	for id, tier := range infra {
		tiers := c.ProviderTiers(models.KindInfrastructure, id)
		_, ok := tiers.Get(tier)
		assert.True(t, ok, "infrastructure %s/%s missing", id, tier)
	}
	dbs := map[string]string{
		"supabase":      "free",
		"planetscale":   "hobby",
		"mongodb-atlas": "serverless",
		"aws-rds":       "t3medium",
	}
	for id, tier := range dbs {
		tiers := c.ProviderTiers(models.KindDatabase, id)
		_, ok := tiers.Get(tier)
		assert.True(t, ok, "database %s/%s missing", id, tier)
	}
}

func TestDefaultTierIsFirst(t *testing.T) {
	c := Default()
	assert.Equal(t, "hobby", c.DefaultTier(models.KindInfrastructure, "vercel"))
	assert.Equal(t, "micro", c.DefaultTier(models.KindInfrastructure, "aws-ec2"))
	assert.Equal(t, "free", c.DefaultTier(models.KindDatabase, "supabase"))
	assert.Equal(t, "", c.DefaultTier(models.KindDatabase, "nope"))
	assert.Nil(t, c.ProviderTiers(models.KindDatabase, "nope"))
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	ms := c.Models()
	ms[0].CostPer1000Tokens = 999
	m, _ := c.Model(ms[0].ID)
	assert.NotEqual(t, 999.0, m.CostPer1000Tokens)

	p, _ := c.Provider(models.KindInfrastructure, "vercel")
	p.Tiers[0].Multiplier = 999
	again, _ := c.Provider(models.KindInfrastructure, "vercel")
	assert.NotEqual(t, 999.0, again.Tiers[0].Multiplier)
}

func TestNewFirstIDWins(t *testing.T) {
	c := New([]models.AIModel{
		{ID: "a", CostPer1000Tokens: 1},
		{ID: "a", CostPer1000Tokens: 2},
	}, nil, nil)
	m, ok := c.Model("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, m.CostPer1000Tokens)
	assert.Len(t, c.Models(), 2)
}

func TestUnknownKind(t *testing.T) {
	c := Default()
	_, ok := c.Provider(models.ProviderKind("storage"), "vercel")
	assert.False(t, ok)
	assert.Nil(t, c.Providers(models.ProviderKind("storage")))
}
