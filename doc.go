// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package configs aggregates typed configuration for the service
// integrations an application commonly talks to (application runtime,
// Postgres, SQLite, DynamoDB, InfluxDB, Kafka, MQTT, RabbitMQ, AWS
// credentials, identity provider, OTLP exporters, health probes) into a
// single root structure populated from environment variables.
//
// Every section declares a fixed set of env keys with documented defaults.
// Resolution is total and fail-open: an absent variable keeps the default,
// and a present but unparsable value silently falls back to the default as
// well. Construction therefore never returns an error; any stricter
// validation is the caller's responsibility after resolution.
//
// The main entry points are [New], which resolves every section from an
// [EnvSource] (the process environment by default), and [Default], which
// never touches the environment and is meant for tests and prototyping.
// Application-specific settings plug into the root structure through the
// [DynamicConfigs] contract:
//
//	cfg := configs.New[configs.Empty]()
//	log.Printf("listening on %s (env %s)", cfg.AppAddr(), cfg.App.Env)
//	if cfg.App.Env.IsProd() {
//		// production-only behavior
//	}
package configs
