package quote

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/models"
	"github.com/stackquote/stackquote/pkg/recommend"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{20.14, "$20.14"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{0.005, "$0.01"},
		{145.155, "$145.16"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "in=%v", tt.in)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,000", Count(1000))
	assert.Equal(t, "12.5", Count(12.5))
	assert.Equal(t, "0", Count(0))
}

func exampleProject() models.Project {
	p := models.Project{Name: "Demo", UserCount: 1000, APICallsPerUserPerMonth: 10}
	p, _ = p.AddAITechnology("gpt-4o")
	p, _ = p.AddInfrastructure("vercel", "pro")
	p, _ = p.AddDatabase("supabase", "pro")
	return p
}

func TestTextSpanish(t *testing.T) {
	p := exampleProject()
	got := Text(p, estimate.Calculate(p), recommend.LocaleES)

	want := `COTIZACIÓN DE PROYECTO TECNOLÓGICO

Nombre del proyecto: Demo
Número de usuarios: 1,000
Llamadas a API por usuario al mes: 10

COSTOS MENSUALES:
- APIs y modelos de IA: $100.00
- Infraestructura: $20.14
- Bases de datos: $25.02

COSTO TOTAL MENSUAL: $145.16
COSTO TOTAL ANUAL: $1,741.92
`
	assert.Equal(t, want, got)
}

func TestTextEnglish(t *testing.T) {
	p := exampleProject()
	got := Text(p, estimate.Calculate(p), recommend.LocaleEN)
	assert.Contains(t, got, "TECHNOLOGY PROJECT QUOTATION\n")
	assert.Contains(t, got, "Number of users: 1,000\n")
	assert.Contains(t, got, "TOTAL YEARLY COST: $1,741.92\n")
}

func TestTextUnknownLocale(t *testing.T) {
	got := Text(models.Project{}, models.CostBreakdown{}, recommend.Locale("xx"))
	assert.Contains(t, got, "COTIZACIÓN DE PROYECTO TECNOLÓGICO")
	assert.Contains(t, got, "COSTO TOTAL MENSUAL: $0.00")
}

func TestPDFUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, exampleProject(), models.CostBreakdown{}, recommend.LocaleES)
	assert.ErrorIs(t, err, ErrPDFUnsupported)
	assert.Zero(t, buf.Len())
}
