package catalog

import "github.com/stackquote/stackquote/pkg/models"

// Approximate list prices in USD. AI costs are per 1K tokens; provider base
// costs are monthly and scaling factors are per active user per month.

var seedModels = []models.AIModel{
	{ID: "gpt-4o", Name: "OpenAI GPT-4o", CostPer1000Tokens: 0.01, Provider: "OpenAI"},
	{ID: "gpt-4-turbo", Name: "OpenAI GPT-4 Turbo", CostPer1000Tokens: 0.02, Provider: "OpenAI"},
	{ID: "gpt-3.5-turbo", Name: "OpenAI GPT-3.5 Turbo", CostPer1000Tokens: 0.002, Provider: "OpenAI"},
	{ID: "claude-3-opus", Name: "Anthropic Claude 3 Opus", CostPer1000Tokens: 0.015, Provider: "Anthropic"},
	{ID: "claude-3-sonnet", Name: "Anthropic Claude 3 Sonnet", CostPer1000Tokens: 0.008, Provider: "Anthropic"},
	{ID: "claude-3-haiku", Name: "Anthropic Claude 3 Haiku", CostPer1000Tokens: 0.00075, Provider: "Anthropic"},
	{ID: "gemini-pro", Name: "Google Gemini Pro", CostPer1000Tokens: 0.0025, Provider: "Google"},
	{ID: "gemini-flash", Name: "Google Gemini Flash", CostPer1000Tokens: 0.0007, Provider: "Google"},
	{ID: "gemini-ultra", Name: "Google Gemini Ultra", CostPer1000Tokens: 0.012, Provider: "Google"},
	{ID: "mistral-small", Name: "Mistral Small", CostPer1000Tokens: 0.002, Provider: "Mistral AI"},
	{ID: "mistral-medium", Name: "Mistral Medium", CostPer1000Tokens: 0.0027, Provider: "Mistral AI"},
	{ID: "mistral-large", Name: "Mistral Large", CostPer1000Tokens: 0.008, Provider: "Mistral AI"},
	{ID: "cohere-command", Name: "Cohere Command", CostPer1000Tokens: 0.0015, Provider: "Cohere"},
	{ID: "cohere-command-light", Name: "Cohere Command Light", CostPer1000Tokens: 0.0006, Provider: "Cohere"},
	{ID: "grok-1", Name: "xAI Grok-1", CostPer1000Tokens: 0.005, Provider: "xAI"},
}

var seedInfrastructure = []models.Provider{
	{
		ID: "vercel", Name: "Vercel", BaseCost: 20, ScalingFactor: 0.00014,
		Tiers: models.TierSet{
			{ID: "hobby", Tier: models.Tier{Multiplier: 0, Name: "Hobby"}},
			{ID: "pro", Tier: models.Tier{Multiplier: 1, Name: "Pro"}},
			{ID: "enterprise", Tier: models.Tier{Multiplier: 5, Name: "Enterprise"}},
		},
	},
	{
		ID: "netlify", Name: "Netlify", BaseCost: 19, ScalingFactor: 0.00012,
		Tiers: models.TierSet{
			{ID: "starter", Tier: models.Tier{Multiplier: 0, Name: "Starter"}},
			{ID: "pro", Tier: models.Tier{Multiplier: 1, Name: "Pro"}},
			{ID: "business", Tier: models.Tier{Multiplier: 5, Name: "Business"}},
		},
	},
	{
		ID: "aws-ec2", Name: "AWS EC2", BaseCost: 30, ScalingFactor: 0.0001,
		Tiers: models.TierSet{
			{ID: "micro", Tier: models.Tier{Multiplier: 0.25, Name: "t4g.micro"}},
			{ID: "small", Tier: models.Tier{Multiplier: 0.5, Name: "t4g.small"}},
			{ID: "medium", Tier: models.Tier{Multiplier: 1, Name: "t4g.medium"}},
			{ID: "large", Tier: models.Tier{Multiplier: 2, Name: "t4g.large"}},
			{ID: "xlarge", Tier: models.Tier{Multiplier: 4, Name: "t4g.xlarge"}},
		},
	},
	{
		ID: "gcp", Name: "Google Cloud Platform", BaseCost: 25, ScalingFactor: 0.00012,
		Tiers: models.TierSet{
			{ID: "e2micro", Tier: models.Tier{Multiplier: 0.25, Name: "e2-micro"}},
			{ID: "e2small", Tier: models.Tier{Multiplier: 0.5, Name: "e2-small"}},
			{ID: "e2medium", Tier: models.Tier{Multiplier: 1, Name: "e2-medium"}},
			{ID: "e2standard2", Tier: models.Tier{Multiplier: 2, Name: "e2-standard-2"}},
			{ID: "e2standard4", Tier: models.Tier{Multiplier: 4, Name: "e2-standard-4"}},
		},
	},
	{
		ID: "azure", Name: "Microsoft Azure", BaseCost: 28, ScalingFactor: 0.00013,
		Tiers: models.TierSet{
			{ID: "b1s", Tier: models.Tier{Multiplier: 1, Name: "B1s"}},
			{ID: "b2s", Tier: models.Tier{Multiplier: 2.8, Name: "B2s"}},
			{ID: "b4ms", Tier: models.Tier{Multiplier: 7.5, Name: "B4ms"}},
		},
	},
	{
		ID: "digitalocean", Name: "DigitalOcean", BaseCost: 12, ScalingFactor: 0.0001,
		Tiers: models.TierSet{
			{ID: "basic", Tier: models.Tier{Multiplier: 0.5, Name: "Basic Droplet"}},
			{ID: "premium", Tier: models.Tier{Multiplier: 1, Name: "Premium Droplet"}},
			{ID: "cpuoptimized", Tier: models.Tier{Multiplier: 3.5, Name: "CPU-Optimized Droplet"}},
		},
	},
	{
		ID: "railway", Name: "Railway", BaseCost: 5, ScalingFactor: 0.0002,
		Tiers: models.TierSet{
			{ID: "hobby", Tier: models.Tier{Multiplier: 1, Name: "Hobby"}},
			{ID: "pro", Tier: models.Tier{Multiplier: 4, Name: "Pro"}},
		},
	},
}

var seedDatabases = []models.Provider{
	{
		ID: "supabase", Name: "Supabase", BaseCost: 25, ScalingFactor: 0.00002,
		Tiers: models.TierSet{
			{ID: "free", Tier: models.Tier{Multiplier: 0, Name: "Free"}},
			{ID: "pro", Tier: models.Tier{Multiplier: 1, Name: "Pro"}},
			{ID: "team", Tier: models.Tier{Multiplier: 24, Name: "Team"}},
		},
	},
	{
		ID: "planetscale", Name: "PlanetScale", BaseCost: 39, ScalingFactor: 0.00003,
		Tiers: models.TierSet{
			{ID: "hobby", Tier: models.Tier{Multiplier: 0.25, Name: "Hobby"}},
			{ID: "scaler", Tier: models.Tier{Multiplier: 1, Name: "Scaler"}},
			{ID: "enterprise", Tier: models.Tier{Multiplier: 15, Name: "Enterprise"}},
		},
	},
	{
		ID: "mongodb-atlas", Name: "MongoDB Atlas", BaseCost: 9, ScalingFactor: 0.00001,
		Tiers: models.TierSet{
			{ID: "m0", Tier: models.Tier{Multiplier: 0, Name: "M0 Sandbox"}},
			{ID: "serverless", Tier: models.Tier{Multiplier: 1, Name: "Serverless"}},
			{ID: "m10", Tier: models.Tier{Multiplier: 6.3, Name: "M10"}},
			{ID: "m40", Tier: models.Tier{Multiplier: 84, Name: "M40"}},
		},
	},
	{
		ID: "aws-rds", Name: "AWS RDS", BaseCost: 15, ScalingFactor: 0.00005,
		Tiers: models.TierSet{
			{ID: "t3micro", Tier: models.Tier{Multiplier: 1, Name: "db.t3.micro"}},
			{ID: "t3small", Tier: models.Tier{Multiplier: 2, Name: "db.t3.small"}},
			{ID: "t3medium", Tier: models.Tier{Multiplier: 4, Name: "db.t3.medium"}},
			{ID: "m5large", Tier: models.Tier{Multiplier: 9.5, Name: "db.m5.large"}},
		},
	},
	{
		ID: "upstash", Name: "Upstash Redis", BaseCost: 10, ScalingFactor: 0.00005,
		Tiers: models.TierSet{
			{ID: "free", Tier: models.Tier{Multiplier: 0, Name: "Free"}},
			{ID: "payg", Tier: models.Tier{Multiplier: 1, Name: "Pay as you go"}},
			{ID: "pro", Tier: models.Tier{Multiplier: 28, Name: "Pro 2K"}},
		},
	},
	{
		ID: "neon", Name: "Neon", BaseCost: 19, ScalingFactor: 0.00003,
		Tiers: models.TierSet{
			{ID: "free", Tier: models.Tier{Multiplier: 0, Name: "Free"}},
			{ID: "launch", Tier: models.Tier{Multiplier: 1, Name: "Launch"}},
			{ID: "scale", Tier: models.Tier{Multiplier: 3.6, Name: "Scale"}},
		},
	},
}
