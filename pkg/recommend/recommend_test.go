package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackquote/stackquote/pkg/catalog"
	"github.com/stackquote/stackquote/pkg/models"
)

func TestBestAIModelLowVolumePremium(t *testing.T) {
	rec := BestAIModel(1000, 10)
	assert.Equal(t, "claude-3-sonnet", rec.ID)
	assert.Equal(t, "Anthropic Claude 3 Sonnet", rec.Name)
	assert.Equal(t, "Con pocos usuarios y llamadas, puedes permitirte un modelo más potente sin costos excesivos.", rec.Reason)
	assert.Empty(t, rec.Tier)
}

func TestBestAIModelHighVolume(t *testing.T) {
	rec := BestAIModel(100_000, 100)
	assert.Equal(t, "cohere-command-light", rec.ID)
	assert.Equal(t, "Recomendado para proyectos de uso intensivo con muchos usuarios y llamadas. Ofrece mejor rendimiento por costo.", rec.Reason)
}

func TestBestAIModelModerateVolume(t *testing.T) {
	tests := []struct {
		users  int
		calls  float64
		reason string
	}{
		{10_000, 100, "Buen equilibrio entre capacidad y costo para proyectos de tamaño pequeño con uso bajo."},
		{50_000, 20, "Buen equilibrio entre capacidad y costo para proyectos de tamaño mediano con uso bajo."},
		{5_000, 1000, "Buen equilibrio entre capacidad y costo para proyectos de tamaño pequeño con uso alto."},
		{200_000, 4, "Buen equilibrio entre capacidad y costo para proyectos de tamaño grande con uso bajo."},
		{3_000, 250, "Buen equilibrio entre capacidad y costo para proyectos de tamaño pequeño con uso medio."},
	}
	for _, tt := range tests {
		rec := BestAIModel(tt.users, tt.calls)
		assert.Equal(t, "claude-3-haiku", rec.ID, "users=%d calls=%v", tt.users, tt.calls)
		assert.Equal(t, tt.reason, rec.Reason)
	}
}

func TestBestAIModelCheapestFallback(t *testing.T) {
	rec := BestAIModel(20_000, 10)
	assert.Equal(t, "cohere-command-light", rec.ID)
	assert.Equal(t, "La opción más económica para tu escala de 20,000 usuarios con 10 llamadas por usuario al mes.", rec.Reason)

	rec = BestAIModel(1_000, 150)
	assert.Equal(t, "cohere-command-light", rec.ID)
	assert.Equal(t, "La opción más económica para tu escala de 1,000 usuarios con 150 llamadas por usuario al mes.", rec.Reason)
}

func TestBestAIModelTiesKeepCatalogOrder(t *testing.T) {
	// Zero volume makes every model cost 0, so catalog order decides:
	// gpt-4-turbo precedes claude-3-sonnet in the catalog.
	rec := BestAIModel(0, 0)
	assert.Equal(t, "gpt-4-turbo", rec.ID)
}

func TestBestAIModelCustomCatalog(t *testing.T) {
	c := catalog.New([]models.AIModel{
		{ID: "pricey", Name: "Pricey", CostPer1000Tokens: 0.05},
		{ID: "cheap", Name: "Cheap", CostPer1000Tokens: 0.001},
		{ID: "mid", Name: "Mid", CostPer1000Tokens: 0.01},
	}, nil, nil)
	r := New(c, LocaleEN)

	// No preferred model exists in any bracket.
	assert.Equal(t, "cheap", r.BestAIModel(100_000, 100).ID)
	assert.Equal(t, "mid", r.BestAIModel(10_000, 100).ID, "moderate volume falls back to the second cheapest")
	low := r.BestAIModel(100, 1)
	assert.Equal(t, "cheap", low.ID)
	assert.Equal(t, "The most economical option for your scale of 100 users with 1 calls per user per month.", low.Reason)
}

func TestBestAIModelSingleModelCatalog(t *testing.T) {
	r := New(catalog.New([]models.AIModel{{ID: "only", Name: "Only"}}, nil, nil), LocaleES)
	assert.Equal(t, "only", r.BestAIModel(10_000, 100).ID)
}

func TestBestAIModelEmptyCatalog(t *testing.T) {
	r := New(catalog.New(nil, nil, nil), LocaleES)
	assert.Equal(t, models.Recommendation{}, r.BestAIModel(1000, 10))
}

func TestBestInfrastructure(t *testing.T) {
	tests := []struct {
		users int
		id    string
		tier  string
	}{
		{0, "vercel", "hobby"},
		{3_000, "vercel", "hobby"},
		{4_999, "vercel", "hobby"},
		{5_000, "digitalocean", "premium"},
		{49_999, "digitalocean", "premium"},
		{50_000, "aws-ec2", "medium"},
		{60_000, "aws-ec2", "medium"},
		{200_000, "gcp", "e2standard2"},
		{5_000_000, "gcp", "e2standard2"},
	}
	for _, tt := range tests {
		rec := BestInfrastructure(tt.users)
		assert.Equal(t, tt.id, rec.ID, "users=%d", tt.users)
		assert.Equal(t, tt.tier, rec.Tier, "users=%d", tt.users)
	}

	rec := BestInfrastructure(3_000)
	assert.Equal(t, "Vercel", rec.Name)
	assert.Equal(t, "Para proyectos pequeños, Vercel Hobby ofrece un excelente balance entre rendimiento y costo (incluso gratis para proyectos personales).", rec.Reason)
}

func TestBestDatabase(t *testing.T) {
	tests := []struct {
		users int
		id    string
		tier  string
	}{
		{1, "supabase", "free"},
		{5_000, "planetscale", "hobby"},
		{150_000, "mongodb-atlas", "serverless"},
		{250_000, "aws-rds", "t3medium"},
	}
	for _, tt := range tests {
		rec := BestDatabase(tt.users)
		assert.Equal(t, tt.id, rec.ID, "users=%d", tt.users)
		assert.Equal(t, tt.tier, rec.Tier, "users=%d", tt.users)
	}
	assert.Equal(t,
		"Para aplicaciones a escala empresarial, AWS RDS ofrece el rendimiento, seguridad y confiabilidad necesarios para manejar grandes volúmenes de datos.",
		BestDatabase(1_000_000).Reason)
}

func TestBracketsIgnoreCatalog(t *testing.T) {
	r := New(catalog.New(nil, nil, nil), LocaleEN)
	rec := r.BestDatabase(100)
	assert.Equal(t, "supabase", rec.ID)
	assert.Equal(t, "supabase", rec.Name, "name falls back to the id")
	assert.Equal(t, "Supabase Free is an excellent choice for small projects, with full functionality at no cost.", rec.Reason)
}

func TestAll(t *testing.T) {
	set := New(nil, LocaleEN).All(60_000, 10)
	assert.Equal(t, "claude-3-haiku", set.AIModel.ID)
	assert.Equal(t, "aws-ec2", set.Infrastructure.ID)
	assert.Equal(t, "mongodb-atlas", set.Database.ID)
	assert.Equal(t, "A good balance between capability and cost for medium projects with low usage.", set.AIModel.Reason)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "DigitalOcean", ProviderName("digitalocean", models.KindInfrastructure))
	assert.Equal(t, "heroku", ProviderName("heroku", models.KindInfrastructure))
	assert.Equal(t, "supabase", ProviderName("supabase", models.KindInfrastructure), "wrong kind falls back to the id")

	assert.Equal(t, "t4g.medium", TierName("aws-ec2", "medium", models.KindInfrastructure))
	assert.Equal(t, "e2-standard-2", TierName("gcp", "e2standard2", models.KindInfrastructure))
	assert.Equal(t, "huge", TierName("aws-ec2", "huge", models.KindInfrastructure))
	assert.Equal(t, "pro", TierName("nope", "pro", models.KindDatabase))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale("en-GB"))
	assert.Equal(t, LocaleES, ParseLocale("es-MX"))
	assert.Equal(t, DefaultLocale, ParseLocale("fr"))
	assert.Equal(t, DefaultLocale, ParseLocale(""))
	assert.Equal(t, DefaultLocale, New(nil, Locale("xx")).locale)
}

func TestFormatCalls(t *testing.T) {
	assert.Equal(t, "12.5", formatCalls(12.5))
	assert.Equal(t, "1,000", formatCalls(1000))
	assert.Equal(t, "1,234,567", formatCount(1234567))
}
