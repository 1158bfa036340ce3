// Package recommend picks a preferred AI model, infrastructure provider and
// database provider for a project's scale.
//
// The brackets and preference lists are fixed policy, not derived from the
// catalog: only the AI recommendation consults catalog prices, and only to
// order candidates.
package recommend

import (
	"fmt"
	"slices"

	"github.com/stackquote/stackquote/pkg/catalog"
	"github.com/stackquote/stackquote/pkg/models"
)

// Volume thresholds in calls per month (users × calls per user).
const (
	HighVolume     = 5_000_000
	ModerateVolume = 500_000
)

// Scale bracket boundaries.
const (
	smallUserLimit  = 10_000
	mediumUserLimit = 100_000
	lowUsageLimit   = 100
	midUsageLimit   = 500
)

var (
	volumeEfficientModels = []string{"gpt-3.5-turbo", "mistral-small", "gemini-flash", "cohere-command-light"}
	balancedModels        = []string{"claude-3-haiku", "mistral-medium", "gemini-pro"}
	premiumModels         = []string{"claude-3-sonnet", "gpt-4-turbo", "mistral-large"}
)

type bracket struct {
	below  int
	id     string
	tier   string
	reason reasonKey
}

var infrastructureBrackets = []bracket{
	{below: 5_000, id: "vercel", tier: "hobby", reason: reasonInfraSmall},
	{below: 50_000, id: "digitalocean", tier: "premium", reason: reasonInfraMedium},
	{below: 200_000, id: "aws-ec2", tier: "medium", reason: reasonInfraLarge},
	{id: "gcp", tier: "e2standard2", reason: reasonInfraXLarge},
}

var databaseBrackets = []bracket{
	{below: 5_000, id: "supabase", tier: "free", reason: reasonDBSmall},
	{below: 50_000, id: "planetscale", tier: "hobby", reason: reasonDBMedium},
	{below: 200_000, id: "mongodb-atlas", tier: "serverless", reason: reasonDBLarge},
	{id: "aws-rds", tier: "t3medium", reason: reasonDBXLarge},
}

// Recommender produces recommendations against a catalog in a given locale.
type Recommender struct {
	catalog *catalog.Catalog
	locale  Locale
}

// New creates a Recommender. A nil catalog selects the default catalog and an
// unsupported locale falls back to DefaultLocale.
func New(c *catalog.Catalog, locale Locale) *Recommender {
	if c == nil {
		c = catalog.Default()
	}
	return &Recommender{catalog: c, locale: locale.valid()}
}

var defaultRecommender = New(nil, DefaultLocale)

// BestAIModel recommends a model using the default catalog and locale.
func BestAIModel(userCount int, callsPerUser float64) models.Recommendation {
	return defaultRecommender.BestAIModel(userCount, callsPerUser)
}

// BestInfrastructure recommends an infrastructure provider using the default locale.
func BestInfrastructure(userCount int) models.Recommendation {
	return defaultRecommender.BestInfrastructure(userCount)
}

// BestDatabase recommends a database provider using the default locale.
func BestDatabase(userCount int) models.Recommendation {
	return defaultRecommender.BestDatabase(userCount)
}

// ProviderName returns the display name of a provider in the default catalog.
func ProviderName(id string, kind models.ProviderKind) string {
	return defaultRecommender.ProviderName(id, kind)
}

// TierName returns the display name of a provider tier in the default catalog.
func TierName(providerID, tierID string, kind models.ProviderKind) string {
	return defaultRecommender.TierName(providerID, tierID, kind)
}

// Set groups the three recommendations for one scale.
type Set struct {
	AIModel        models.Recommendation `json:"ai_model"`
	Infrastructure models.Recommendation `json:"infrastructure"`
	Database       models.Recommendation `json:"database"`
}

// All returns the AI, infrastructure and database recommendations for a scale.
func (r *Recommender) All(userCount int, callsPerUser float64) Set {
	return Set{
		AIModel:        r.BestAIModel(userCount, callsPerUser),
		Infrastructure: r.BestInfrastructure(userCount),
		Database:       r.BestDatabase(userCount),
	}
}

type rankedModel struct {
	model models.AIModel
	total float64
}

// BestAIModel recommends a model for the monthly call volume
// userCount × callsPerUser. An empty catalog yields a zero Recommendation.
func (r *Recommender) BestAIModel(userCount int, callsPerUser float64) models.Recommendation {
	catalogModels := r.catalog.Models()
	if len(catalogModels) == 0 {
		return models.Recommendation{}
	}

	ranked := make([]rankedModel, len(catalogModels))
	for i, m := range catalogModels {
		ranked[i] = rankedModel{model: m, total: m.CostPer1000Tokens * float64(userCount) * callsPerUser}
	}
	slices.SortStableFunc(ranked, func(a, b rankedModel) int {
		switch {
		case a.total < b.total:
			return -1
		case a.total > b.total:
			return 1
		default:
			return 0
		}
	})

	volume := float64(userCount) * callsPerUser
	w := r.locale.words()

	switch {
	case volume > HighVolume:
		pick, ok := firstPreferred(ranked, volumeEfficientModels)
		if !ok {
			pick = ranked[0]
		}
		return aiRecommendation(pick, r.locale.text(reasonHighVolume))

	case volume > ModerateVolume:
		pick, ok := firstPreferred(ranked, balancedModels)
		if !ok {
			pick = ranked[min(1, len(ranked)-1)]
		}
		reason := fmt.Sprintf(r.locale.text(reasonModerateVolume),
			userBracket(userCount, w), usageBracket(callsPerUser, w))
		return aiRecommendation(pick, reason)

	case userCount <= smallUserLimit && callsPerUser <= lowUsageLimit:
		if pick, ok := firstPreferred(ranked, premiumModels); ok {
			return aiRecommendation(pick, r.locale.text(reasonLowVolume))
		}
	}

	reason := fmt.Sprintf(r.locale.text(reasonCheapest), formatCount(userCount), formatCalls(callsPerUser))
	return aiRecommendation(ranked[0], reason)
}

// firstPreferred returns the first entry of ranked whose id is in preferred.
func firstPreferred(ranked []rankedModel, preferred []string) (rankedModel, bool) {
	for _, rm := range ranked {
		if slices.Contains(preferred, rm.model.ID) {
			return rm, true
		}
	}
	return rankedModel{}, false
}

func aiRecommendation(rm rankedModel, reason string) models.Recommendation {
	return models.Recommendation{ID: rm.model.ID, Name: rm.model.Name, Reason: reason}
}

func userBracket(userCount int, w bracketWords) string {
	switch {
	case userCount > mediumUserLimit:
		return w.large
	case userCount > smallUserLimit:
		return w.medium
	default:
		return w.small
	}
}

func usageBracket(callsPerUser float64, w bracketWords) string {
	switch {
	case callsPerUser > midUsageLimit:
		return w.high
	case callsPerUser > lowUsageLimit:
		return w.mid
	default:
		return w.low
	}
}

// BestInfrastructure recommends an infrastructure provider and tier by user count.
func (r *Recommender) BestInfrastructure(userCount int) models.Recommendation {
	return r.fromBrackets(infrastructureBrackets, models.KindInfrastructure, userCount)
}

// BestDatabase recommends a database provider and tier by user count.
func (r *Recommender) BestDatabase(userCount int) models.Recommendation {
	return r.fromBrackets(databaseBrackets, models.KindDatabase, userCount)
}

func (r *Recommender) fromBrackets(brackets []bracket, kind models.ProviderKind, userCount int) models.Recommendation {
	b := brackets[len(brackets)-1]
	for _, candidate := range brackets[:len(brackets)-1] {
		if userCount < candidate.below {
			b = candidate
			break
		}
	}
	return models.Recommendation{
		ID:     b.id,
		Tier:   b.tier,
		Name:   r.ProviderName(b.id, kind),
		Reason: r.locale.text(b.reason),
	}
}

// ProviderName returns the provider's display name, or id when it is not in the catalog.
func (r *Recommender) ProviderName(id string, kind models.ProviderKind) string {
	if p, ok := r.catalog.Provider(kind, id); ok {
		return p.Name
	}
	return id
}

// TierName returns the tier's display name, or tierID when either the
// provider or the tier is not in the catalog.
func (r *Recommender) TierName(providerID, tierID string, kind models.ProviderKind) string {
	if t, ok := r.catalog.ProviderTiers(kind, providerID).Get(tierID); ok {
		return t.Name
	}
	return tierID
}
