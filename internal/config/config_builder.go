package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configs from each source. Sources are
// appended in priority order and merged with mergo, which keeps the first
// non-zero value per field, so earlier sources win.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) withEnv() *configBuilder {
	source := new(StructuredConfig)
	if err := parseEnv(source); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, source)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.sources = append(b.sources, ParseFlags())
	return b
}

// withJSON loads the JSON file whose path was supplied by a higher-priority
// source. No path means no JSON source.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	source, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, source)
	return b
}

// jsonPath returns the highest-priority JSON config path seen so far.
func (b *configBuilder) jsonPath() string {
	for _, source := range b.sources {
		if source.JSONFilePath != "" {
			return source.JSONFilePath
		}
	}
	return ""
}

// build merges all collected sources, fills platform defaults, and validates
// the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to load config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, source := range b.sources {
		if err := mergo.Merge(merged, source); err != nil {
			return nil, fmt.Errorf("failed to merge config sources: %w", err)
		}
	}

	merged.applyDefaults()

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}
