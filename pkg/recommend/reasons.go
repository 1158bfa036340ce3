package recommend

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale selects the language of recommendation reasons.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// DefaultLocale is the language reasons and quotes are rendered in unless configured otherwise.
const DefaultLocale = LocaleES

type reasonKey int

const (
	reasonHighVolume reasonKey = iota
	reasonModerateVolume
	reasonLowVolume
	reasonCheapest

	reasonInfraSmall
	reasonInfraMedium
	reasonInfraLarge
	reasonInfraXLarge

	reasonDBSmall
	reasonDBMedium
	reasonDBLarge
	reasonDBXLarge
)

type bracketWords struct {
	small, medium, large string
	low, mid, high       string
}

var words = map[Locale]bracketWords{
	LocaleES: {small: "pequeño", medium: "mediano", large: "grande", low: "bajo", mid: "medio", high: "alto"},
	LocaleEN: {small: "small", medium: "medium", large: "large", low: "low", mid: "medium", high: "high"},
}

var reasons = map[Locale]map[reasonKey]string{
	LocaleES: {
		reasonHighVolume:     "Recomendado para proyectos de uso intensivo con muchos usuarios y llamadas. Ofrece mejor rendimiento por costo.",
		reasonModerateVolume: "Buen equilibrio entre capacidad y costo para proyectos de tamaño %s con uso %s.",
		reasonLowVolume:      "Con pocos usuarios y llamadas, puedes permitirte un modelo más potente sin costos excesivos.",
		reasonCheapest:       "La opción más económica para tu escala de %s usuarios con %s llamadas por usuario al mes.",

		reasonInfraSmall:  "Para proyectos pequeños, Vercel Hobby ofrece un excelente balance entre rendimiento y costo (incluso gratis para proyectos personales).",
		reasonInfraMedium: "DigitalOcean Premium Droplet ofrece buen rendimiento y escalabilidad a un precio competitivo para proyectos medianos.",
		reasonInfraLarge:  "AWS EC2 t4g.medium proporciona un rendimiento superior y mayor flexibilidad de escalado para aplicaciones con tráfico significativo.",
		reasonInfraXLarge: "Para aplicaciones a gran escala, Google Cloud e2-standard-2 ofrece el mejor equilibrio entre rendimiento, confiabilidad y costo.",

		reasonDBSmall:  "Supabase Free es una excelente opción para proyectos pequeños, con funcionalidades completas sin costo.",
		reasonDBMedium: "PlanetScale Hobby ofrece escalabilidad automática y alta disponibilidad a un precio razonable para aplicaciones en crecimiento.",
		reasonDBLarge:  "MongoDB Atlas Serverless escala automáticamente con tu tráfico y solo pagas por lo que usas, ideal para aplicaciones de gran tamaño.",
		reasonDBXLarge: "Para aplicaciones a escala empresarial, AWS RDS ofrece el rendimiento, seguridad y confiabilidad necesarios para manejar grandes volúmenes de datos.",
	},
	LocaleEN: {
		reasonHighVolume:     "Recommended for high-volume projects with many users and calls. Offers the best performance per cost.",
		reasonModerateVolume: "A good balance between capability and cost for %s projects with %s usage.",
		reasonLowVolume:      "With few users and calls, you can afford a more capable model without excessive costs.",
		reasonCheapest:       "The most economical option for your scale of %s users with %s calls per user per month.",

		reasonInfraSmall:  "For small projects, Vercel Hobby offers an excellent balance between performance and cost (even free for personal projects).",
		reasonInfraMedium: "DigitalOcean Premium Droplet offers good performance and scalability at a competitive price for medium-sized projects.",
		reasonInfraLarge:  "AWS EC2 t4g.medium provides superior performance and more scaling flexibility for applications with significant traffic.",
		reasonInfraXLarge: "For large-scale applications, Google Cloud e2-standard-2 offers the best balance of performance, reliability and cost.",

		reasonDBSmall:  "Supabase Free is an excellent choice for small projects, with full functionality at no cost.",
		reasonDBMedium: "PlanetScale Hobby offers automatic scaling and high availability at a reasonable price for growing applications.",
		reasonDBLarge:  "MongoDB Atlas Serverless scales automatically with your traffic and you only pay for what you use, ideal for large applications.",
		reasonDBXLarge: "For enterprise-scale applications, AWS RDS offers the performance, security and reliability needed to handle large volumes of data.",
	},
}

// ParseLocale maps a language tag to a supported Locale, defaulting to DefaultLocale.
func ParseLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()
	switch Locale(base.String()) {
	case LocaleEN:
		return LocaleEN
	case LocaleES:
		return LocaleES
	default:
		return DefaultLocale
	}
}

func (l Locale) valid() Locale {
	if _, ok := reasons[l]; ok {
		return l
	}
	return DefaultLocale
}

func (l Locale) text(k reasonKey) string {
	return reasons[l.valid()][k]
}

func (l Locale) words() bracketWords {
	return words[l.valid()]
}

// Counts are always grouped en-US style ("12,500").
var countPrinter = message.NewPrinter(language.AmericanEnglish)

func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

func formatCalls(calls float64) string {
	if calls == float64(int64(calls)) {
		return countPrinter.Sprintf("%d", int64(calls))
	}
	return strconv.FormatFloat(calls, 'f', -1, 64)
}
