// Package configloader resolves the gocsslint configuration from defaults,
// an explicit config file, environment variables and command-line flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gocsslint/internal/logging"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// DefaultConfigFile is the file name written by "gocsslint init".
const DefaultConfigFile = ".gocsslint.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// ExplicitPath is a config file given with --config. It must exist.
	// No other config file is read.
	ExplicitPath string

	// IgnoreEnv skips GOCSSLINT_* environment variables.
	IgnoreEnv bool

	// Flags are the parsed command-line flags. Only changed flags apply.
	Flags *pflag.FlagSet

	// RuleOverrides are applied on top of the rules from every other layer.
	RuleOverrides map[string]any

	// Registry is used to warn about unknown rule names. Defaults to lint.DefaultRegistry.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the config files that were read.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. --rule overrides (rules only)
//  2. Changed CLI flags
//  3. Environment variables (GOCSSLINT_*)
//  4. Explicit config file (--config)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)
	result := &LoadResult{}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(config.DefaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := opts.ExplicitPath; path != "" {
		if !fileExists(path) {
			return nil, fmt.Errorf("%w: config file %s not found", ErrInvalidConfig, path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
		logger.Debug("config file loaded", logging.FieldConfig, path)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		if err := k.Load(envProvider(), nil); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.Flags != nil {
		if err := k.Load(flagProvider(opts.Flags, k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	// Defaults are already in k; decoding onto a populated struct would
	// merge slices element-wise.
	cfg := &config.Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	cfg.Rules = config.MergeRules(cfg.Rules, opts.RuleOverrides)

	registry := opts.Registry
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	validation := Validate(cfg, registry)
	if err := validation.Err(); err != nil {
		return nil, err
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
