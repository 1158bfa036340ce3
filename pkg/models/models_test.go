package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierSet(t *testing.T) {
	ts := TierSet{
		{ID: "basic", Tier: Tier{Multiplier: 1, Name: "Basic"}},
		{ID: "pro", Tier: Tier{Multiplier: 3, Name: "Pro"}},
	}

	tier, ok := ts.Get("pro")
	require.True(t, ok)
	assert.Equal(t, "Pro", tier.Name)
	assert.Equal(t, 3.0, ts.Multiplier("pro"))
	assert.Equal(t, 1.0, ts.Multiplier("missing"))
	assert.Equal(t, "basic", ts.First())
	assert.Equal(t, []string{"basic", "pro"}, ts.IDs())
	assert.Equal(t, "", TierSet(nil).First())
}

func TestZeroMultiplierIsKept(t *testing.T) {
	ts := TierSet{{ID: "free", Tier: Tier{Multiplier: 0, Name: "Free"}}}
	assert.Equal(t, 0.0, ts.Multiplier("free"))
}

func TestAddAndRemoveSelections(t *testing.T) {
	p := Project{Name: "demo", UserCount: 10}

	p2, aiID := p.AddAITechnology("gpt-4o")
	p2, infraID := p2.AddInfrastructure("vercel", "pro")
	p2, dbID := p2.AddDatabase("supabase", "free")

	assert.Empty(t, p.AITechnologies, "input project must not change")
	require.Len(t, p2.AITechnologies, 1)
	require.Len(t, p2.Infrastructure, 1)
	require.Len(t, p2.Databases, 1)
	assert.NotEqual(t, aiID, infraID)
	assert.Equal(t, "gpt-4o", p2.AITechnologies[0].ModelID)
	assert.Nil(t, p2.AITechnologies[0].CustomCost)

	p3 := p2.RemoveAITechnology(aiID).RemoveInfrastructure(infraID).RemoveDatabase(dbID)
	assert.Empty(t, p3.AITechnologies)
	assert.Empty(t, p3.Infrastructure)
	assert.Empty(t, p3.Databases)
	assert.Len(t, p2.AITechnologies, 1)

	// Unknown ids are a no-op.
	assert.Len(t, p2.RemoveDatabase("nope").Databases, 1)
}

func TestCloneIsDeep(t *testing.T) {
	p := Project{
		AITechnologies: []TechnologySelection{{ID: "1", ModelID: "gpt-4o", CustomCost: Cost(5)}},
	}
	c := p.Clone()
	*c.AITechnologies[0].CustomCost = 99
	c.AITechnologies[0].ModelID = "other"

	assert.Equal(t, 5.0, *p.AITechnologies[0].CustomCost)
	assert.Equal(t, "gpt-4o", p.AITechnologies[0].ModelID)
}
