// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "strings"

// Environment is the deployment environment the application runs in.
// Exactly one variant holds at any time; unrecognized input falls back to
// [EnvironmentLocal].
type Environment uint8

const (
	// EnvironmentLocal is local development, the default.
	EnvironmentLocal Environment = iota
	// EnvironmentDev is the shared development environment.
	EnvironmentDev
	// EnvironmentStaging is the staging environment.
	EnvironmentStaging
	// EnvironmentProd is production.
	EnvironmentProd
)

// EnvironmentEnvKey is the environment variable the deployment environment
// is read from.
const EnvironmentEnvKey = "ENV"

// String renders the canonical short token for the variant.
func (e Environment) String() string {
	switch e {
	case EnvironmentDev:
		return "dev"
	case EnvironmentStaging:
		return "stg"
	case EnvironmentProd:
		return "prd"
	default:
		return "local"
	}
}

// parseEnvironment matches value against the known tokens,
// case-insensitively. ok reports whether a token matched.
func parseEnvironment(value string) (env Environment, ok bool) {
	switch strings.ToLower(value) {
	case "production", "prod", "prd":
		return EnvironmentProd, true
	case "staging", "stg":
		return EnvironmentStaging, true
	case "develop", "dev":
		return EnvironmentDev, true
	case "local":
		return EnvironmentLocal, true
	}

	return EnvironmentLocal, false
}

// EnvironmentFrom maps a raw value onto an Environment. Matching is
// case-insensitive; anything unrecognized is [EnvironmentLocal].
func EnvironmentFrom(value string) Environment {
	env, _ := parseEnvironment(value)
	return env
}

// ResolveEnvironment reads key from src. Absent or unrecognized values
// yield def.
func ResolveEnvironment(src EnvSource, key string, def Environment) Environment {
	raw, ok := src.Lookup(key)
	if !ok {
		return def
	}

	if env, matched := parseEnvironment(raw); matched {
		return env
	}

	return def
}

// IsLocal reports whether the environment is local development.
func (e Environment) IsLocal() bool { return e == EnvironmentLocal }

// IsDev reports whether the environment is dev.
func (e Environment) IsDev() bool { return e == EnvironmentDev }

// IsStaging reports whether the environment is staging.
func (e Environment) IsStaging() bool { return e == EnvironmentStaging }

// IsProd reports whether the environment is production.
func (e Environment) IsProd() bool { return e == EnvironmentProd }
