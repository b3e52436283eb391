// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "github.com/joho/godotenv"

// Configs is the root configuration aggregate. It owns one resolved value
// of every fixed section plus one caller-supplied dynamic section. Fixed
// sections are independent of each other and immutable once constructed,
// so sharing a Configs across goroutines needs no synchronization as long
// as Dynamic.Load is not called concurrently.
type Configs[T any] struct {
	// App is the core application section.
	App AppConfigs
	// Otlp is the OpenTelemetry exporter section.
	Otlp OTLPConfigs
	// Identity is the identity server section.
	Identity IdentityServerConfigs
	// MQTT is the MQTT broker section.
	MQTT MQTTConfigs
	// RabbitMQ is the RabbitMQ broker section.
	RabbitMQ RabbitMQConfigs
	// Kafka is the Kafka broker section.
	Kafka KafkaConfigs
	// Postgres is the PostgreSQL section.
	Postgres PostgresConfigs
	// Dynamo is the DynamoDB section.
	Dynamo DynamoConfigs
	// Sqlite is the SQLite section.
	Sqlite SqliteConfigs
	// Influx is the InfluxDB section.
	Influx InfluxConfigs
	// Aws is the AWS credentials section.
	Aws AwsConfigs
	// HealthReadiness is the health/readiness probe section.
	HealthReadiness HealthReadinessConfigs

	// Dynamic is the caller-supplied extension section. [New] and
	// [Default] allocate it at its zero value and never load it; call
	// Dynamic.Load explicitly when the extra settings are needed.
	Dynamic *T
}

type options struct {
	source     EnvSource
	dotenv     []string
	loadDotenv bool
}

// Option customizes how [New] resolves the fixed sections.
type Option func(*options)

// WithSource resolves from src instead of the process environment.
func WithSource(src EnvSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithDotenv loads the named dotenv files into the process environment
// before resolution; with no arguments ".env" is loaded. Missing files
// are ignored. Only meaningful together with the default [OSSource].
func WithDotenv(paths ...string) Option {
	return func(o *options) {
		o.loadDotenv = true
		o.dotenv = paths
	}
}

// New resolves every fixed section from the environment and returns the
// aggregate. Construction never fails: absent or unparsable values leave
// the documented defaults in place. The dynamic section is allocated at
// its zero value and is not loaded.
func New[T any](opts ...Option) *Configs[T] {
	o := options{source: OSSource{}}
	for _, opt := range opts {
		opt(&o)
	}

	if o.loadDotenv {
		_ = godotenv.Load(o.dotenv...)
	}

	src := o.source
	return &Configs[T]{
		App:             NewApp(src),
		Otlp:            NewOTLP(src),
		Identity:        NewIdentityServer(src),
		MQTT:            NewMQTT(src),
		RabbitMQ:        NewRabbitMQ(src),
		Kafka:           NewKafka(src),
		Postgres:        NewPostgres(src),
		Dynamo:          NewDynamo(src),
		Sqlite:          NewSqlite(src),
		Influx:          NewInflux(src),
		Aws:             NewAws(src),
		HealthReadiness: NewHealthReadiness(src),
		Dynamic:         new(T),
	}
}

// Default returns the aggregate with every fixed section at its documented
// defaults. The environment is never read; it suits tests and quick
// prototyping.
func Default[T any]() *Configs[T] {
	return &Configs[T]{
		App:             DefaultApp(),
		Otlp:            DefaultOTLP(),
		Identity:        DefaultIdentityServer(),
		MQTT:            DefaultMQTT(),
		RabbitMQ:        DefaultRabbitMQ(),
		Kafka:           DefaultKafka(),
		Postgres:        DefaultPostgres(),
		Dynamo:          DefaultDynamo(),
		Sqlite:          DefaultSqlite(),
		Influx:          DefaultInflux(),
		Aws:             DefaultAws(),
		HealthReadiness: DefaultHealthReadiness(),
		Dynamic:         new(T),
	}
}

// AppAddr forwards to the application section's Addr.
func (c *Configs[T]) AppAddr() string {
	return c.App.Addr()
}

// PostgresURI forwards to the PostgreSQL section's URI.
func (c *Configs[T]) PostgresURI() string {
	return c.Postgres.URI()
}

// RabbitMQURI forwards to the RabbitMQ section's URI.
func (c *Configs[T]) RabbitMQURI() string {
	return c.RabbitMQ.URI()
}
