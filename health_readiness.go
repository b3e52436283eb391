// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "fmt"

// Environment variable keys for the health/readiness section.
const (
	HealthReadinessPortEnvKey   = "HEALTH_READINESS_PORT"
	EnableHealthReadinessEnvKey = "ENABLE_HEALTH_READINESS"
)

// HealthReadinessConfigs holds health and readiness probe settings.
type HealthReadinessConfigs struct {
	// Port is the probe listen port.
	// Env: HEALTH_READINESS_PORT (default 8888)
	Port uint64

	// Enable toggles the probe endpoint.
	// Env: ENABLE_HEALTH_READINESS (default false)
	Enable bool
}

// DefaultHealthReadiness returns the health/readiness section with every
// field at its documented default.
func DefaultHealthReadiness() HealthReadinessConfigs {
	return HealthReadinessConfigs{
		Port: 8888,
	}
}

// NewHealthReadiness resolves the health/readiness section from src.
func NewHealthReadiness(src EnvSource) HealthReadinessConfigs {
	cfg := DefaultHealthReadiness()

	cfg.Port = resolveUint64(src, HealthReadinessPortEnvKey, cfg.Port)
	cfg.Enable = resolveBool(src, EnableHealthReadinessEnvKey, cfg.Enable)

	return cfg
}

// Addr returns the probe listen address in "0.0.0.0:port" form.
func (c HealthReadinessConfigs) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
