package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (New)
//  2. YAML file named by CKSTAR_CONFIG, when set
//  3. environment variables with prefix CKSTAR_
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for remote providers

	k := koanf.New(".")

	if path := os.Getenv("CKSTAR_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// CKSTAR_VERTEX_Z_CUT -> vertex_z_cut, matching the koanf tags.
	envProvider := env.Provider("CKSTAR_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "ckstar_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.VertexZCut <= 0:
		return fmt.Errorf("%w: vertex_z_cut must be positive", ErrInvalidConfig)
	case c.MixingDepth < 1:
		return fmt.Errorf("%w: mixing_depth must be at least 1", ErrInvalidConfig)
	case c.MixVertexZBins < 1 || c.MixActivityBins < 1:
		return fmt.Errorf("%w: mixing axes need at least one bin", ErrInvalidConfig)
	case c.MixVertexZMin >= c.MixVertexZMax || c.MixActivityMin >= c.MixActivityMax:
		return fmt.Errorf("%w: mixing axis range is empty", ErrInvalidConfig)
	case c.K0sMassSigma <= 0 || c.K0sMassWidth <= 0:
		return fmt.Errorf("%w: mass window must have positive sigma and width", ErrInvalidConfig)
	case c.V0TransRadMin > c.V0TransRadMax:
		return fmt.Errorf("%w: v0 radius window is empty", ErrInvalidConfig)
	}
	return nil
}
