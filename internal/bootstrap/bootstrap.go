// Package bootstrap wires the adapters shared by the roommind binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"roommind/internal/adapters/anchorfile"
	"roommind/internal/adapters/assistant"
	"roommind/internal/adapters/claudecli"
	"roommind/internal/adapters/gemini"
	"roommind/internal/application"
	"roommind/internal/application/dashboard"
	"roommind/internal/config"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// Runtime holds the adapters built from a Config
type Runtime struct {
	Config    config.Config
	Logger    *zap.Logger
	AI        *assistant.Assistant
	ModelName string
	Anchors   ports.AnchorSource
}

// New builds the AI gateway and the anchor source. A missing API key is not
// an error: the gateway then serves fallbacks only.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	model, err := newModel(ctx, cfg)
	modelName := "offline"
	switch {
	case errors.Is(err, application.ErrModelUnavailable):
		logger.Warn("no model available, AI features use fallbacks", zap.String("provider", cfg.Provider))
	case err != nil:
		return nil, err
	default:
		modelName = model.Name()
	}

	ai := assistant.NewAssistant(model,
		assistant.WithTimeout(cfg.TimeoutDuration()),
		assistant.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst),
		assistant.WithLogger(logger.Named("assistant")),
	)

	var source ports.AnchorSource
	if cfg.AnchorsFile != "" {
		fs, err := anchorfile.NewFileSource(cfg.AnchorsFile, anchorfile.WithLogger(logger.Named("anchors")))
		if err != nil {
			return nil, err
		}
		source = fs
	} else {
		source = anchorfile.NewStaticSource(domain.MockAnchors())
	}

	return &Runtime{
		Config:    cfg,
		Logger:    logger,
		AI:        ai,
		ModelName: modelName,
		Anchors:   source,
	}, nil
}

// newModel returns a nil TextModel with application.ErrModelUnavailable
// when the provider cannot be used.
func newModel(ctx context.Context, cfg config.Config) (ports.TextModel, error) {
	switch cfg.Provider {
	case config.ProviderClaude:
		name := cfg.Model
		if name == config.DefaultModel {
			name = claudecli.DefaultModel
		}
		m, err := claudecli.NewModel(claudecli.WithModel(name))
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		m, err := gemini.NewModel(ctx, gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Seed returns the initial dashboard contents with the anchors currently
// provided by the source.
func (r *Runtime) Seed(ctx context.Context) (dashboard.Seed, error) {
	anchors, err := r.Anchors.Anchors(ctx)
	if err != nil {
		return dashboard.Seed{}, fmt.Errorf("failed to load anchors: %w", err)
	}
	seed := dashboard.DefaultSeed()
	seed.Anchors = anchors
	return seed, nil
}
