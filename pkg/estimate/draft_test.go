package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref, id, tier string
	}{
		{"aws-ec2:medium", "aws-ec2", "medium"},
		{"vercel", "vercel", ""},
		{" neon:scale ", "neon", "scale"},
		{"odd:a:b", "odd", "a:b"},
		{"", "", ""},
	}
	for _, tt := range tests {
		id, tier := SplitRef(tt.ref)
		assert.Equal(t, tt.id, id, tt.ref)
		assert.Equal(t, tt.tier, tier, tt.ref)
	}
}

func TestBuild(t *testing.T) {
	e := New(nil)
	p := e.Build(Draft{
		Name:           "flags",
		Users:          1000,
		Calls:          10,
		Price:          5,
		Models:         []string{"gpt-4o"},
		Infrastructure: []string{"vercel:pro", "aws-ec2"},
		Databases:      []string{"supabase"},
	})

	assert.Equal(t, "flags", p.Name)
	assert.Equal(t, 1000, p.UserCount)
	require.Len(t, p.AITechnologies, 1)
	require.Len(t, p.Infrastructure, 2)
	require.Len(t, p.Databases, 1)

	assert.Equal(t, "pro", p.Infrastructure[0].Tier)
	assert.Equal(t, "micro", p.Infrastructure[1].Tier, "missing tier selects the first tier")
	assert.Equal(t, "free", p.Databases[0].Tier)
	assert.NotEmpty(t, p.AITechnologies[0].ID)

	b := e.Calculate(p)
	// gpt-4o 100 + vercel pro 20.14 + aws-ec2 micro (30 + 0.0001×1000)×0.25 + supabase free 0
	assert.InDelta(t, 100.0, b.AICosts, eps)
	assert.InDelta(t, 20.14+7.525, b.InfrastructureCosts, eps)
	assert.InDelta(t, 0.0, b.DatabaseCosts, eps)
}

func TestBuildUnknownProvider(t *testing.T) {
	p := New(nil).Build(Draft{Infrastructure: []string{"heroku"}})
	require.Len(t, p.Infrastructure, 1)
	assert.Equal(t, "heroku", p.Infrastructure[0].ProviderID)
	assert.Empty(t, p.Infrastructure[0].Tier)
	assert.Zero(t, Calculate(p).TotalMonthlyCost)
}
