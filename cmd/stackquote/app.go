package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stackquote/stackquote/pkg/config"
	"github.com/stackquote/stackquote/pkg/logging"
	"github.com/stackquote/stackquote/pkg/preset"
	"github.com/stackquote/stackquote/pkg/recommend"
)

// loadConfig returns the config named by --config, or the defaults when the
// flag is unset. --locale overrides the configured locale.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if o.locale != "" {
		cfg.Locale = o.locale
	}
	return cfg, nil
}

func localeOf(cfg *config.Config) recommend.Locale {
	return recommend.ParseLocale(cfg.Locale)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// openPresets opens the configured preset store. The returned close function
// is never nil.
func openPresets(ctx context.Context, cfg *config.Config) (*preset.Manager, func(), error) {
	store, closeStore, err := cfg.OpenPresetStore()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open preset store: %w", err)
	}
	closer := func() { _ = closeStore() }

	m, err := preset.Open(ctx, store)
	if err != nil {
		closer()
		return nil, func() {}, err
	}
	return m, closer, nil
}
