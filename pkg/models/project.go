package models

import (
	"slices"

	"github.com/google/uuid"
)

// TechnologySelection is an AI model chosen for a project.
// A non-nil CustomCost replaces the computed monthly cost.
type TechnologySelection struct {
	ID         string   `json:"id" yaml:"id"`
	ModelID    string   `json:"model_id" yaml:"model_id"`
	CustomCost *float64 `json:"custom_cost" yaml:"custom_cost"`
}

// InfrastructureSelection is a hosting provider and tier chosen for a project.
type InfrastructureSelection struct {
	ID         string   `json:"id" yaml:"id"`
	ProviderID string   `json:"provider_id" yaml:"provider_id"`
	Tier       string   `json:"tier" yaml:"tier"`
	CustomCost *float64 `json:"custom_cost" yaml:"custom_cost"`
}

// DatabaseSelection is a database provider and tier chosen for a project.
type DatabaseSelection struct {
	ID         string   `json:"id" yaml:"id"`
	ProviderID string   `json:"provider_id" yaml:"provider_id"`
	Tier       string   `json:"tier" yaml:"tier"`
	CustomCost *float64 `json:"custom_cost" yaml:"custom_cost"`
}

// Project holds the scale parameters and selections an estimate is computed from.
type Project struct {
	Name                     string                    `json:"name" yaml:"name"`
	UserCount                int                       `json:"user_count" yaml:"user_count"`
	APICallsPerUserPerMonth  float64                   `json:"api_calls_per_user_per_month" yaml:"api_calls_per_user_per_month"`
	SubscriptionPricePerUser float64                   `json:"subscription_price_per_user" yaml:"subscription_price_per_user"`
	AITechnologies           []TechnologySelection     `json:"ai_technologies" yaml:"ai_technologies"`
	Infrastructure           []InfrastructureSelection `json:"infrastructure" yaml:"infrastructure"`
	Databases                []DatabaseSelection       `json:"databases" yaml:"databases"`
}

// Cost returns a pointer suitable for a selection's CustomCost.
func Cost(v float64) *float64 {
	return &v
}

func newSelectionID() string {
	return uuid.NewString()
}

func copyCost(c *float64) *float64 {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.AITechnologies = make([]TechnologySelection, len(p.AITechnologies))
	for i, s := range p.AITechnologies {
		s.CustomCost = copyCost(s.CustomCost)
		out.AITechnologies[i] = s
	}
	out.Infrastructure = make([]InfrastructureSelection, len(p.Infrastructure))
	for i, s := range p.Infrastructure {
		s.CustomCost = copyCost(s.CustomCost)
		out.Infrastructure[i] = s
	}
	out.Databases = make([]DatabaseSelection, len(p.Databases))
	for i, s := range p.Databases {
		s.CustomCost = copyCost(s.CustomCost)
		out.Databases[i] = s
	}
	return out
}

// AddAITechnology returns a copy of p with a new model selection appended,
// along with the generated selection id.
func (p Project) AddAITechnology(modelID string) (Project, string) {
	out := p.Clone()
	id := newSelectionID()
	out.AITechnologies = append(out.AITechnologies, TechnologySelection{ID: id, ModelID: modelID})
	return out, id
}

// AddInfrastructure returns a copy of p with a new infrastructure selection appended.
func (p Project) AddInfrastructure(providerID, tier string) (Project, string) {
	out := p.Clone()
	id := newSelectionID()
	out.Infrastructure = append(out.Infrastructure, InfrastructureSelection{ID: id, ProviderID: providerID, Tier: tier})
	return out, id
}

// AddDatabase returns a copy of p with a new database selection appended.
func (p Project) AddDatabase(providerID, tier string) (Project, string) {
	out := p.Clone()
	id := newSelectionID()
	out.Databases = append(out.Databases, DatabaseSelection{ID: id, ProviderID: providerID, Tier: tier})
	return out, id
}

// RemoveAITechnology returns a copy of p without the selection with the given id.
func (p Project) RemoveAITechnology(id string) Project {
	out := p.Clone()
	out.AITechnologies = slices.DeleteFunc(out.AITechnologies, func(s TechnologySelection) bool { return s.ID == id })
	return out
}

// RemoveInfrastructure returns a copy of p without the selection with the given id.
func (p Project) RemoveInfrastructure(id string) Project {
	out := p.Clone()
	out.Infrastructure = slices.DeleteFunc(out.Infrastructure, func(s InfrastructureSelection) bool { return s.ID == id })
	return out
}

// RemoveDatabase returns a copy of p without the selection with the given id.
func (p Project) RemoveDatabase(id string) Project {
	out := p.Clone()
	out.Databases = slices.DeleteFunc(out.Databases, func(s DatabaseSelection) bool { return s.ID == id })
	return out
}
