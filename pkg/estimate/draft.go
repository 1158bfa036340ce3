package estimate

import (
	"strings"

	"github.com/stackquote/stackquote/pkg/models"
)

// Draft describes a project by catalog references. Infrastructure and
// database references are "provider" or "provider:tier"; a missing tier
// selects the provider's first tier.
type Draft struct {
	Name           string   `json:"name"`
	Users          int      `json:"users"`
	Calls          float64  `json:"calls"`
	Price          float64  `json:"price"`
	Models         []string `json:"models"`
	Infrastructure []string `json:"infrastructure"`
	Databases      []string `json:"databases"`
}

// SplitRef splits "provider:tier" into its parts. tier is empty when ref has no colon.
func SplitRef(ref string) (id, tier string) {
	id, tier, _ = strings.Cut(strings.TrimSpace(ref), ":")
	return id, tier
}

// Build turns d into a Project. References are not validated; unknown ids
// produce selections the engine prices at zero.
func (e *Engine) Build(d Draft) models.Project {
	p := models.Project{
		Name:                     d.Name,
		UserCount:                d.Users,
		APICallsPerUserPerMonth:  d.Calls,
		SubscriptionPricePerUser: d.Price,
		AITechnologies:           []models.TechnologySelection{},
		Infrastructure:           []models.InfrastructureSelection{},
		Databases:                []models.DatabaseSelection{},
	}
	for _, id := range d.Models {
		p, _ = p.AddAITechnology(strings.TrimSpace(id))
	}
	for _, ref := range d.Infrastructure {
		id, tier := e.resolveRef(models.KindInfrastructure, ref)
		p, _ = p.AddInfrastructure(id, tier)
	}
	for _, ref := range d.Databases {
		id, tier := e.resolveRef(models.KindDatabase, ref)
		p, _ = p.AddDatabase(id, tier)
	}
	return p
}

func (e *Engine) resolveRef(kind models.ProviderKind, ref string) (string, string) {
	id, tier := SplitRef(ref)
	if tier == "" {
		tier = e.catalog.DefaultTier(kind, id)
	}
	return id, tier
}
