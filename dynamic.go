// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DynamicConfigs is the contract for caller-supplied configuration
// sections plugged into [Configs]. Implementations load themselves from
// whatever source they choose; this package never calls Load on its own,
// and guarantees nothing about Load being idempotent.
type DynamicConfigs interface {
	// Load populates the receiver in place.
	Load()
}

// Empty is the built-in no-op section for callers with no extension needs.
type Empty struct{}

var _ DynamicConfigs = (*Empty)(nil)

// Load implements DynamicConfigs and does nothing.
func (e *Empty) Load() {}

// ParseEnvTags fills dst from environment variables declared through `env`
// struct tags. It is a convenience for DynamicConfigs implementations that
// want declarative, tag-driven loading:
//
//	type FeatureConfigs struct {
//		Endpoint string `env:"FEATURE_ENDPOINT" envDefault:"localhost:9000"`
//	}
//
//	func (c *FeatureConfigs) Load() { _ = configs.ParseEnvTags(c) }
//
// Unlike the fixed sections, tag-driven loading reports conversion
// failures instead of falling back silently.
func ParseEnvTags(dst any) error {
	if err := env.Parse(dst); err != nil {
		return fmt.Errorf("error parsing env tags: %w", err)
	}

	return nil
}
