// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// featureConfigs is a caller-defined section loaded through env struct
// tags, the way DynamicConfigs implementations are expected to work.
type featureConfigs struct {
	Endpoint string `env:"FEATURE_ENDPOINT" envDefault:"localhost:9000"`
	Burst    int    `env:"FEATURE_BURST" envDefault:"10"`
}

func (c *featureConfigs) Load() {
	_ = ParseEnvTags(c)
}

func TestEmpty_LoadIsNoOp(t *testing.T) {
	e := &Empty{}
	before := *e

	e.Load()

	assert.Equal(t, before, *e)
}

func TestParseEnvTags_DefaultsApply(t *testing.T) {
	// Act
	cfg := &featureConfigs{}
	err := ParseEnvTags(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Endpoint)
	assert.Equal(t, 10, cfg.Burst)
}

func TestParseEnvTags_EnvironmentWins(t *testing.T) {
	// Arrange
	t.Setenv("FEATURE_ENDPOINT", "feature.example.com:9100")
	t.Setenv("FEATURE_BURST", "25")

	// Act
	cfg := &featureConfigs{}
	err := ParseEnvTags(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "feature.example.com:9100", cfg.Endpoint)
	assert.Equal(t, 25, cfg.Burst)
}

func TestParseEnvTags_ConversionFailureIsReported(t *testing.T) {
	// Arrange: unlike the fixed sections, tag-driven loading surfaces
	// conversion errors to the caller.
	t.Setenv("FEATURE_BURST", "a-lot")

	// Act
	err := ParseEnvTags(&featureConfigs{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing env tags")
}

func TestDynamicSlot_LoadableThroughAggregate(t *testing.T) {
	// Arrange
	t.Setenv("FEATURE_ENDPOINT", "feature.example.com:9100")

	cfg := New[featureConfigs](WithSource(MapSource{}))
	require.NotNil(t, cfg.Dynamic)
	assert.Empty(t, cfg.Dynamic.Endpoint, "slot must stay at its zero value until loaded")

	// Act
	cfg.Dynamic.Load()

	// Assert
	assert.Equal(t, "feature.example.com:9100", cfg.Dynamic.Endpoint)
}
