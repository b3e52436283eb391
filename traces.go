// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"strings"
	"time"
)

// TraceExporterKind selects the trace exporter implementation.
type TraceExporterKind string

const (
	// TraceExporterStdout writes spans to stdout, the default.
	TraceExporterStdout TraceExporterKind = "stdout"
	// TraceExporterOTLPgRPC exports spans over OTLP gRPC.
	TraceExporterOTLPgRPC TraceExporterKind = "otlp-grpc"
)

// TraceExporterKindFrom maps a raw value onto a TraceExporterKind.
// Matching is case-insensitive; unknown values are [TraceExporterStdout].
func TraceExporterKindFrom(value string) TraceExporterKind {
	switch strings.ToLower(value) {
	case "otlp", "otlp-grpc", "grpc":
		return TraceExporterOTLPgRPC
	default:
		return TraceExporterStdout
	}
}

// TraceConfigs is the trace pipeline's view of the telemetry settings.
// It is derived from the resolved [OTLPConfigs]; it has no env keys of its
// own.
type TraceConfigs struct {
	// Enable toggles the trace pipeline.
	Enable bool

	// Exporter is the exporter implementation.
	Exporter TraceExporterKind

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

// TraceConfigs derives the trace exporter settings from the resolved OTLP
// fields. Calling it twice yields identical output; nothing is cached.
func (c OTLPConfigs) TraceConfigs() TraceConfigs {
	exporter := TraceExporterStdout
	if c.ExporterType == OTLPExporterOTLP {
		exporter = TraceExporterOTLPgRPC
	}

	return TraceConfigs{
		Enable:         c.TracesEnabled,
		Exporter:       exporter,
		Host:           c.Endpoint,
		AccessKey:      c.AccessKey,
		ExportTimeout:  c.ExporterTimeout,
		ExportInterval: c.ExporterInterval,
		ExportRateBase: c.TraceExporterRateBase,
	}
}
