// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "fmt"

// Environment variable keys for the application section. Renaming a key or
// changing a default is a breaking change for every deployment.
const (
	AppNameEnvKey       = "APP_NAME"
	AppNamespaceEnvKey  = "NAMESPACE"
	SecretManagerEnvKey = "SECRET_MANAGER"
	SecretKeyEnvKey     = "SECRET_KEY"
	AppHostEnvKey       = "APP_HOST"
	// HostNameEnvKey is honored as a fallback when AppHostEnvKey is unset.
	HostNameEnvKey = "HOST_NAME"
	AppPortEnvKey  = "APP_PORT"
	LogLevelEnvKey = "LOG_LEVEL"

	EnableExternalCreatesLoggingEnvKey = "ENABLE_EXTERNAL_CREATES_LOGGING"
)

// AppConfigs holds the core application settings: identity, deployment
// environment, listen address, and logging level.
type AppConfigs struct {
	// Name identifies the application.
	// Env: APP_NAME (default "default-name")
	Name string

	// Env is the deployment environment.
	// Env: ENV (default Local)
	Env Environment

	// Namespace groups deployments, e.g. a cluster namespace.
	// Env: NAMESPACE (default "local")
	Namespace string

	// SecretManager selects the secrets backend.
	// Env: SECRET_MANAGER (default None)
	SecretManager SecretsManagerKind

	// SecretKey is the key the secrets backend is queried with.
	// Env: SECRET_KEY (default "context")
	SecretKey string

	// Host is the interface the application binds to.
	// Env: APP_HOST, falling back to HOST_NAME (default "0.0.0.0")
	Host string

	// Port is the application listen port.
	// Env: APP_PORT (default 31033)
	Port uint64

	// LogLevel is the minimum log level label.
	// Env: LOG_LEVEL (default "debug")
	LogLevel string

	// EnableExternalCreatesLogging toggles logging of create calls made to
	// external systems.
	// Env: ENABLE_EXTERNAL_CREATES_LOGGING (default false)
	EnableExternalCreatesLogging bool
}

// DefaultApp returns the application section with every field at its
// documented default. The environment is never read.
func DefaultApp() AppConfigs {
	return AppConfigs{
		Name:          "default-name",
		Env:           EnvironmentLocal,
		Namespace:     "local",
		SecretManager: SecretsManagerNone,
		SecretKey:     "context",
		Host:          "0.0.0.0",
		Port:          31033,
		LogLevel:      "debug",
	}
}

// NewApp resolves the application section from src.
func NewApp(src EnvSource) AppConfigs {
	cfg := DefaultApp()

	cfg.Name = resolveString(src, AppNameEnvKey, cfg.Name)
	cfg.Env = ResolveEnvironment(src, EnvironmentEnvKey, cfg.Env)
	cfg.Namespace = resolveString(src, AppNamespaceEnvKey, cfg.Namespace)
	cfg.SecretManager = resolveToken(src, SecretManagerEnvKey, cfg.SecretManager, SecretsManagerKindFrom)
	cfg.SecretKey = resolveString(src, SecretKeyEnvKey, cfg.SecretKey)
	cfg.Host = resolveString(src, AppHostEnvKey, resolveString(src, HostNameEnvKey, cfg.Host))
	cfg.Port = resolveUint64(src, AppPortEnvKey, cfg.Port)
	cfg.LogLevel = resolveString(src, LogLevelEnvKey, cfg.LogLevel)
	cfg.EnableExternalCreatesLogging = resolveBool(src, EnableExternalCreatesLoggingEnvKey, cfg.EnableExternalCreatesLogging)

	return cfg
}

// Addr returns the listen address in "host:port" form,
// e.g. "0.0.0.0:31033".
func (c AppConfigs) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
