package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/heartchain/heartchain/internal/logger"
)

// configBuilder gathers configuration sources one by one and merges them
// in build. Sources parsed later take precedence, except the JSON file
// which sits between defaults and flags regardless of when it is read.
type configBuilder struct {
	log *logger.Logger

	defaults *StructuredConfig
	jsonCfg  *StructuredConfig
	flagCfg  *StructuredConfig
	envCfg   *StructuredConfig

	err error
}

func newConfigBuilder(log *logger.Logger) *configBuilder {
	return &configBuilder{log: log}
}

func (b *configBuilder) withDefaults() *configBuilder {
	if b.err != nil {
		return b
	}

	b.defaults = defaultConfig()

	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	if b.err != nil {
		return b
	}

	cfg, err := parseFlags()
	if err != nil {
		b.err = fmt.Errorf("%w: %w", ErrParsingFlags, err)
		return b
	}
	b.flagCfg = cfg

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	cfg, err := parseEnv()
	if err != nil {
		b.err = fmt.Errorf("%w: %w", ErrParsingEnv, err)
		return b
	}
	b.envCfg = cfg

	return b
}

// withJSON reads the optional JSON config file. The file path is taken
// from the environment or the flags, whichever already supplied one, so
// withJSON must be chained after withFlags and withEnv.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	path := b.jsonFilePath()
	if path == "" {
		return b
	}

	cfg, err := parseJSONFile(path)
	if err != nil {
		b.err = fmt.Errorf("%w: %w", ErrParsingJSONFile, err)
		return b
	}
	b.jsonCfg = cfg

	return b
}

func (b *configBuilder) jsonFilePath() string {
	if b.envCfg != nil && b.envCfg.JSONFilePath != "" {
		return b.envCfg.JSONFilePath
	}
	if b.flagCfg != nil && b.flagCfg.JSONFilePath != "" {
		return b.flagCfg.JSONFilePath
	}

	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		b.log.Error().Err(b.err).Str("func", "configBuilder.build").Msg("error assembling configuration")
		return nil, b.err
	}

	cfg := &StructuredConfig{}
	for _, src := range []*StructuredConfig{b.defaults, b.jsonCfg, b.flagCfg, b.envCfg} {
		if src == nil {
			continue
		}
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMergingConfigs, err)
		}
	}

	return cfg, nil
}
