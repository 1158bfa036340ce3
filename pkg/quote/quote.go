// Package quote renders a project estimate as a plain-text quotation.
package quote

import (
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/stackquote/stackquote/pkg/models"
	"github.com/stackquote/stackquote/pkg/recommend"
)

// ErrPDFUnsupported is returned by PDF; no PDF renderer is bundled.
var ErrPDFUnsupported = errors.New("pdf export is not supported")

// Amounts are always grouped en-US style regardless of the label locale.
var printer = message.NewPrinter(language.AmericanEnglish)

type labels struct {
	title, name, users, calls, monthly, ai, infra, db, totalMonthly, totalYearly string
}

var labelsByLocale = map[recommend.Locale]labels{
	recommend.LocaleES: {
		title:        "COTIZACIÓN DE PROYECTO TECNOLÓGICO",
		name:         "Nombre del proyecto",
		users:        "Número de usuarios",
		calls:        "Llamadas a API por usuario al mes",
		monthly:      "COSTOS MENSUALES",
		ai:           "APIs y modelos de IA",
		infra:        "Infraestructura",
		db:           "Bases de datos",
		totalMonthly: "COSTO TOTAL MENSUAL",
		totalYearly:  "COSTO TOTAL ANUAL",
	},
	recommend.LocaleEN: {
		title:        "TECHNOLOGY PROJECT QUOTATION",
		name:         "Project name",
		users:        "Number of users",
		calls:        "API calls per user per month",
		monthly:      "MONTHLY COSTS",
		ai:           "AI APIs and models",
		infra:        "Infrastructure",
		db:           "Databases",
		totalMonthly: "TOTAL MONTHLY COST",
		totalYearly:  "TOTAL YEARLY COST",
	},
}

// Round rounds v half away from zero to two decimals.
func Round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Money formats v as dollars with two decimals and thousands separators,
// e.g. "$1,234.50".
func Money(v float64) string {
	return "$" + Amount(v)
}

// Amount formats v with two decimals and thousands separators, without a currency sign.
func Amount(v float64) string {
	return printer.Sprint(number.Decimal(Round(v).InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Count formats a quantity with thousands separators and up to three decimals.
func Count(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Text renders the quotation for p and its breakdown b. Unsupported locales
// fall back to recommend.DefaultLocale.
func Text(p models.Project, b models.CostBreakdown, locale recommend.Locale) string {
	l, ok := labelsByLocale[locale]
	if !ok {
		l = labelsByLocale[recommend.DefaultLocale]
	}

	var sb strings.Builder
	line := func(parts ...string) {
		for _, s := range parts {
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	line(l.title)
	line()
	line(l.name, ": ", p.Name)
	line(l.users, ": ", Count(float64(p.UserCount)))
	line(l.calls, ": ", Count(p.APICallsPerUserPerMonth))
	line()
	line(l.monthly, ":")
	line("- ", l.ai, ": ", Money(b.AICosts))
	line("- ", l.infra, ": ", Money(b.InfrastructureCosts))
	line("- ", l.db, ": ", Money(b.DatabaseCosts))
	line()
	line(l.totalMonthly, ": ", Money(b.TotalMonthlyCost))
	line(l.totalYearly, ": ", Money(b.TotalYearlyCost))
	return sb.String()
}

// PDF would write a PDF quotation to w. It always returns ErrPDFUnsupported.
func PDF(_ io.Writer, _ models.Project, _ models.CostBreakdown, _ recommend.Locale) error {
	return ErrPDFUnsupported
}
