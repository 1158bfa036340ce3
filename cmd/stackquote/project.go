package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stackquote/stackquote/pkg/config"
	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/models"
)

// projectFlags selects the project a command works on: a project file,
// a saved preset, or a project described by flags.
type projectFlags struct {
	file   string
	preset string
	name   string
	users  int
	calls  float64
	price  float64
	models []string
	infra  []string
	dbs    []string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "project file (YAML or JSON)")
	fl.StringVar(&f.preset, "preset", "", "use a saved preset by name")
	fl.StringVar(&f.name, "name", "", "project name")
	fl.IntVarP(&f.users, "users", "u", 0, "number of users (default from config)")
	fl.Float64Var(&f.calls, "calls", 0, "API calls per user per month (default from config)")
	fl.Float64Var(&f.price, "price", 0, "subscription price per user per month (default from config)")
	fl.StringSliceVarP(&f.models, "model", "m", nil, "AI model id (repeatable)")
	fl.StringSliceVar(&f.infra, "infra", nil, "infrastructure provider[:tier] (repeatable)")
	fl.StringSliceVar(&f.dbs, "db", nil, "database provider[:tier] (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("file", "preset")
}

// draft builds a Draft from flags, filling unset scale flags from cfg.Defaults.
func (f *projectFlags) draft(cmd *cobra.Command, cfg *config.Config) (estimate.Draft, error) {
	d := estimate.Draft{
		Name:           f.name,
		Users:          cfg.Defaults.UserCount,
		Calls:          cfg.Defaults.APICallsPerUserPerMonth,
		Price:          cfg.Defaults.SubscriptionPricePerUser,
		Models:         f.models,
		Infrastructure: f.infra,
		Databases:      f.dbs,
	}
	fl := cmd.Flags()
	if fl.Changed("users") {
		d.Users = f.users
	}
	if fl.Changed("calls") {
		d.Calls = f.calls
	}
	if fl.Changed("price") {
		d.Price = f.price
	}
	if d.Users < 0 || d.Calls < 0 {
		return estimate.Draft{}, errors.New("--users and --calls must not be negative")
	}
	return d, nil
}

// project resolves the selected project.
func (f *projectFlags) project(ctx context.Context, cmd *cobra.Command, cfg *config.Config, e *estimate.Engine) (models.Project, error) {
	switch {
	case f.file != "":
		return readProjectFile(f.file)

	case f.preset != "":
		m, closePresets, err := openPresets(ctx, cfg)
		if err != nil {
			return models.Project{}, err
		}
		defer closePresets()
		return m.Get(f.preset)

	default:
		d, err := f.draft(cmd, cfg)
		if err != nil {
			return models.Project{}, err
		}
		return e.Build(d), nil
	}
}

// readProjectFile decodes a project from YAML. JSON files decode the same way
// since the field names match.
func readProjectFile(path string) (models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Project{}, fmt.Errorf("read project: %w", err)
	}
	var p models.Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return models.Project{}, fmt.Errorf("parse project %s: %w", path, err)
	}
	if p.UserCount < 0 || p.APICallsPerUserPerMonth < 0 {
		return models.Project{}, fmt.Errorf("parse project %s: negative user count or calls", path)
	}
	return p, nil
}
