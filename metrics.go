// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"strings"
	"time"
)

// MetricExporterKind selects the metric exporter implementation.
type MetricExporterKind string

const (
	// MetricExporterStdout writes metrics to stdout, the default.
	MetricExporterStdout MetricExporterKind = "stdout"
	// MetricExporterOTLPgRPC exports metrics over OTLP gRPC.
	MetricExporterOTLPgRPC MetricExporterKind = "otlp-grpc"
	// MetricExporterPrometheus exposes metrics for Prometheus scraping.
	MetricExporterPrometheus MetricExporterKind = "prometheus"
)

// MetricExporterKindFrom maps a raw value onto a MetricExporterKind.
// Matching is case-insensitive; unknown values are [MetricExporterStdout].
func MetricExporterKindFrom(value string) MetricExporterKind {
	switch strings.ToLower(value) {
	case "otlp", "otlp-grpc", "grpc":
		return MetricExporterOTLPgRPC
	case "prom", "prometheus":
		return MetricExporterPrometheus
	default:
		return MetricExporterStdout
	}
}

// MetricConfigs is the metric pipeline's view of the telemetry settings.
// It is derived from the resolved [OTLPConfigs]; it has no env keys of its
// own.
type MetricConfigs struct {
	// Enable toggles the metric pipeline.
	Enable bool

	// Exporter is the exporter implementation.
	Exporter MetricExporterKind

	// Host is the exporter destination.
	Host string

	// HeaderAccessKey names the header carrying the access key.
	HeaderAccessKey string

	// AccessKey authenticates against the destination.
	AccessKey string

	// ServiceType labels the exporting service.
	ServiceType string

	// ExportTimeout bounds a single export.
	ExportTimeout time.Duration

	// ExportInterval is the export period.
	ExportInterval time.Duration

	// ExportRateBase is the sampling rate base.
	ExportRateBase float64
}

// MetricConfigs derives the metric exporter settings from the resolved
// OTLP fields. Calling it twice yields identical output; nothing is
// cached.
func (c OTLPConfigs) MetricConfigs() MetricConfigs {
	exporter := MetricExporterStdout
	if c.ExporterType == OTLPExporterOTLP {
		exporter = MetricExporterOTLPgRPC
	}

	return MetricConfigs{
		Enable:         c.MetricsEnabled,
		Exporter:       exporter,
		Host:           c.Endpoint,
		AccessKey:      c.AccessKey,
		ExportTimeout:  c.ExporterTimeout,
		ExportInterval: c.ExporterInterval,
		ExportRateBase: c.MetricExporterRateBase,
	}
}
