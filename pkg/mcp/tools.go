package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/models"
	"github.com/stackquote/stackquote/pkg/preset"
	"github.com/stackquote/stackquote/pkg/quote"
	"github.com/stackquote/stackquote/pkg/recommend"
)

const (
	toolEstimate  = "stackquote_estimate"
	toolRecommend = "stackquote_recommend"
	toolCatalog   = "stackquote_catalog"
	toolPresets   = "stackquote_presets"
)

// toolHandler is a function that handles a tool call.
type toolHandler func(ctx context.Context, s *Server, args json.RawMessage) ToolCallResult

// toolHandlers maps tool names to their handlers.
var toolHandlers = map[string]toolHandler{
	toolEstimate:  handleEstimate,
	toolRecommend: handleRecommend,
	toolCatalog:   handleCatalog,
	toolPresets:   handlePresets,
}

var draftProperties = map[string]any{
	"name":  map[string]any{"type": "string", "description": "Project name (optional)"},
	"users": map[string]any{"type": "integer", "description": "Number of users"},
	"calls": map[string]any{"type": "number", "description": "API calls per user per month"},
	"price": map[string]any{"type": "number", "description": "Subscription price per user per month (optional)"},
	"models": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "AI model ids, e.g. gpt-4o",
	},
	"infrastructure": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Infrastructure providers as provider or provider:tier, e.g. aws-ec2:medium",
	},
	"databases": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Database providers as provider or provider:tier, e.g. supabase:pro",
	},
}

func withProperties(base map[string]any, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// allTools is the list of tool definitions exposed via tools/list.
var allTools = []ToolDefinition{
	{
		Name:        toolEstimate,
		Description: "Estimate the monthly and yearly cost of a project from its scale and selected AI models, infrastructure and databases.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": withProperties(draftProperties, map[string]any{
				"preset": map[string]any{
					"type":        "string",
					"description": "Estimate a saved preset by name instead (optional)",
				},
				"format": map[string]any{
					"type":        "string",
					"enum":        []string{"table", "quote"},
					"description": "table (default) or quote for the plain-text quotation",
				},
				"locale": map[string]any{
					"type":        "string",
					"description": "es or en, for the quotation labels (optional)",
				},
			}),
		},
	},
	{
		Name:        toolRecommend,
		Description: "Recommend an AI model, infrastructure provider and database provider for a user count and call volume.",
		InputSchema: map[string]any{
			"type":     "object",
			"required": []string{"users", "calls"},
			"properties": map[string]any{
				"users":  map[string]any{"type": "integer", "description": "Number of users"},
				"calls":  map[string]any{"type": "number", "description": "API calls per user per month"},
				"locale": map[string]any{"type": "string", "description": "es or en (optional)"},
			},
		},
	},
	{
		Name:        toolCatalog,
		Description: "List the catalog of AI models, infrastructure providers or database providers with prices and tiers.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type":        "string",
					"enum":        []string{"models", "infrastructure", "databases"},
					"description": "Catalog section (optional, omit for all)",
				},
			},
		},
	},
	{
		Name:        toolPresets,
		Description: "List, show, save or delete saved project presets.",
		InputSchema: map[string]any{
			"type":     "object",
			"required": []string{"action"},
			"properties": withProperties(draftProperties, map[string]any{
				"action": map[string]any{
					"type": "string",
					"enum": []string{"list", "show", "save", "delete"},
				},
			}),
		},
	},
}

func textResult(text string) ToolCallResult {
	return ToolCallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

func errorResult(text string) ToolCallResult {
	return ToolCallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

func (s *Server) localeFor(arg string) recommend.Locale {
	if arg == "" {
		return s.locale
	}
	return recommend.ParseLocale(arg)
}

func validateDraft(d estimate.Draft) error {
	if d.Users < 0 {
		return errors.New("users must not be negative")
	}
	if d.Calls < 0 {
		return errors.New("calls must not be negative")
	}
	return nil
}

type estimateArgs struct {
	estimate.Draft
	Preset string `json:"preset"`
	Format string `json:"format"`
	Locale string `json:"locale"`
}

func handleEstimate(_ context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	var args estimateArgs
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return errorResult("Invalid arguments: " + err.Error())
		}
	}

	var p models.Project
	if args.Preset != "" {
		if s.presets == nil {
			return errorResult("Presets are not configured.")
		}
		saved, err := s.presets.Get(args.Preset)
		if err != nil {
			return errorResult("Error loading preset: " + err.Error())
		}
		p = saved
	} else {
		if err := validateDraft(args.Draft); err != nil {
			return errorResult(err.Error())
		}
		p = s.engine.Build(args.Draft)
	}

	res := s.engine.Estimate(p)
	if args.Format == "quote" {
		return textResult(quote.Text(p, res.Breakdown, s.localeFor(args.Locale)))
	}
	return textResult(formatEstimate(res))
}

type recommendArgs struct {
	Users  *int     `json:"users"`
	Calls  *float64 `json:"calls"`
	Locale string   `json:"locale"`
}

func handleRecommend(_ context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	var args recommendArgs
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return errorResult("Invalid arguments: " + err.Error())
		}
	}
	if args.Users == nil || args.Calls == nil {
		return errorResult("users and calls are required")
	}
	if *args.Users < 0 || *args.Calls < 0 {
		return errorResult("users and calls must not be negative")
	}

	rec := recommend.New(s.engine.Catalog(), s.localeFor(args.Locale))
	return textResult(formatRecommendations(rec.All(*args.Users, *args.Calls)))
}

type catalogArgs struct {
	Kind string `json:"kind"`
}

func handleCatalog(_ context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	var args catalogArgs
	if len(rawArgs) > 0 {
		_ = json.Unmarshal(rawArgs, &args)
	}

	c := s.engine.Catalog()
	switch args.Kind {
	case "models":
		return textResult(formatModels(c.Models()))
	case "infrastructure":
		return textResult(formatProviders("Infrastructure", c.Infrastructure()))
	case "databases":
		return textResult(formatProviders("Databases", c.Databases()))
	case "":
		return textResult(formatModels(c.Models()) + "\n" +
			formatProviders("Infrastructure", c.Infrastructure()) + "\n" +
			formatProviders("Databases", c.Databases()))
	default:
		return errorResult(fmt.Sprintf("unknown catalog kind: %s", args.Kind))
	}
}

type presetArgs struct {
	estimate.Draft
	Action string `json:"action"`
}

func handlePresets(ctx context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	var args presetArgs
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return errorResult("Invalid arguments: " + err.Error())
		}
	}

	switch args.Action {
	case "list":
		return textResult(formatPresets(s.engine, s.presets.List()))

	case "show":
		p, err := s.presets.Get(args.Name)
		if err != nil {
			return errorResult("Error loading preset: " + err.Error())
		}
		return textResult(formatEstimate(s.engine.Estimate(p)))

	case "save":
		if err := validateDraft(args.Draft); err != nil {
			return errorResult(err.Error())
		}
		saved, err := s.presets.Add(ctx, args.Name, s.engine.Build(args.Draft))
		if errors.Is(err, preset.ErrEmptyName) {
			return errorResult("name is required")
		}
		if err != nil {
			return errorResult("Error saving preset: " + err.Error())
		}
		return textResult(fmt.Sprintf("Saved preset %q (%d presets).", saved.Name, s.presets.Len()))

	case "delete":
		n, err := s.presets.DeleteByName(ctx, args.Name)
		if err != nil {
			return errorResult("Error deleting preset: " + err.Error())
		}
		return textResult(fmt.Sprintf("Deleted %d preset(s) named %q.", n, args.Name))

	default:
		return errorResult(fmt.Sprintf("unknown action: %q (use list, show, save or delete)", args.Action))
	}
}
