// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command envdump resolves the full configuration from the current
// environment (plus an optional .env file) and logs the derived values.
// It is a debugging aid for checking what a deployment would actually run
// with.
package main

import (
	"fmt"

	configs "github.com/MKhiriev/go-service-configs"
	"github.com/MKhiriev/go-service-configs/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg := configs.New[configs.Empty](configs.WithDotenv())

	log := logger.NewLogger("envdump", cfg.App.LogLevel)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env.String()).
		Str("namespace", cfg.App.Namespace).
		Str("app_addr", cfg.AppAddr()).
		Str("postgres_uri", cfg.PostgresURI()).
		Str("rabbitmq_uri", cfg.RabbitMQURI()).
		Str("influx_addr", cfg.Influx.Addr()).
		Str("health_addr", cfg.HealthReadiness.Addr()).
		Msg("resolved configs")

	// Full dump only outside production.
	if !cfg.App.Env.IsProd() {
		log.Debug().Any("config", cfg).Msg("full config")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
