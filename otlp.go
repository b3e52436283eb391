// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"strings"
	"time"
)

// Environment variable keys for the OTLP section.
const (
	OTLPExporterTypeEnvKey     = "OTLP_EXPORTER_TYPE"
	OTLPExporterEndpointEnvKey = "OTLP_EXPORTER_ENDPOINT"
	OTLPAccessKeyEnvKey        = "OTLP_ACCESS_KEY"
	OTLPExporterTimeoutEnvKey  = "OTLP_EXPORTER_TIMEOUT"
	OTLPExporterIntervalEnvKey = "OTLP_EXPORTER_INTERVAL"
	OTLPExporterRateBaseEnvKey = "OTLP_EXPORTER_RATE_BASE"

	OTLPMetricExporterRateBaseEnvKey = "OTLP_METRIC_EXPORTER_RATE_BASE"
	OTLPTraceExporterRateBaseEnvKey  = "OTLP_TRACE_EXPORTER_RATE_BASE"

	OTLPMetricsEnabledEnvKey = "OTLP_METRICS_ENABLED"
	OTLPTracesEnabledEnvKey  = "OTLP_TRACES_ENABLED"
)

// OTLPExporterType selects where telemetry is exported.
type OTLPExporterType string

const (
	// OTLPExporterStdout writes telemetry to stdout, the default.
	OTLPExporterStdout OTLPExporterType = "stdout"
	// OTLPExporterOTLP exports telemetry over OTLP.
	OTLPExporterOTLP OTLPExporterType = "otlp"
)

// OTLPExporterTypeFrom maps a raw value onto an OTLPExporterType.
// Matching is case-insensitive; anything other than "otlp" is
// [OTLPExporterStdout].
func OTLPExporterTypeFrom(value string) OTLPExporterType {
	if strings.EqualFold(value, "otlp") {
		return OTLPExporterOTLP
	}

	return OTLPExporterStdout
}

// OTLPConfigs holds OpenTelemetry exporter settings shared by the metric
// and trace pipelines.
type OTLPConfigs struct {
	// ExporterType selects the telemetry destination.
	// Env: OTLP_EXPORTER_TYPE (default stdout)
	ExporterType OTLPExporterType

	// Endpoint is the OTLP collector endpoint.
	// Env: OTLP_EXPORTER_ENDPOINT (default "http://localhost:4317")
	Endpoint string

	// AccessKey authenticates against the collector.
	// Env: OTLP_ACCESS_KEY (default "token")
	AccessKey string

	// ExporterTimeout bounds a single export, read as an integer number of
	// seconds.
	// Env: OTLP_EXPORTER_TIMEOUT (default 60)
	ExporterTimeout time.Duration

	// ExporterInterval is the export period, read as an integer number of
	// seconds.
	// Env: OTLP_EXPORTER_INTERVAL (default 60)
	ExporterInterval time.Duration

	// ExporterRateBase is the shared sampling rate base.
	// Env: OTLP_EXPORTER_RATE_BASE (default 0.8)
	ExporterRateBase float64

	// MetricExporterRateBase is the metric-specific rate base.
	// Env: OTLP_METRIC_EXPORTER_RATE_BASE (default 0.8)
	MetricExporterRateBase float64

	// TraceExporterRateBase is the trace-specific rate base.
	// Env: OTLP_TRACE_EXPORTER_RATE_BASE (default 0.8)
	TraceExporterRateBase float64

	// MetricsEnabled toggles the metric pipeline.
	// Env: OTLP_METRICS_ENABLED (default false)
	MetricsEnabled bool

	// TracesEnabled toggles the trace pipeline.
	// Env: OTLP_TRACES_ENABLED (default false)
	TracesEnabled bool
}

// DefaultOTLP returns the OTLP section with every field at its documented
// default.
func DefaultOTLP() OTLPConfigs {
	return OTLPConfigs{
		ExporterType:           OTLPExporterStdout,
		Endpoint:               "http://localhost:4317",
		AccessKey:              "token",
		ExporterTimeout:        60 * time.Second,
		ExporterInterval:       60 * time.Second,
		ExporterRateBase:       0.8,
		MetricExporterRateBase: 0.8,
		TraceExporterRateBase:  0.8,
	}
}

// NewOTLP resolves the OTLP section from src.
func NewOTLP(src EnvSource) OTLPConfigs {
	cfg := DefaultOTLP()

	cfg.ExporterType = resolveToken(src, OTLPExporterTypeEnvKey, cfg.ExporterType, OTLPExporterTypeFrom)
	cfg.Endpoint = resolveString(src, OTLPExporterEndpointEnvKey, cfg.Endpoint)
	cfg.AccessKey = resolveString(src, OTLPAccessKeyEnvKey, cfg.AccessKey)
	cfg.ExporterTimeout = resolveSeconds(src, OTLPExporterTimeoutEnvKey, cfg.ExporterTimeout)
	cfg.ExporterInterval = resolveSeconds(src, OTLPExporterIntervalEnvKey, cfg.ExporterInterval)
	cfg.ExporterRateBase = resolveFloat64(src, OTLPExporterRateBaseEnvKey, cfg.ExporterRateBase)
	cfg.MetricExporterRateBase = resolveFloat64(src, OTLPMetricExporterRateBaseEnvKey, cfg.MetricExporterRateBase)
	cfg.TraceExporterRateBase = resolveFloat64(src, OTLPTraceExporterRateBaseEnvKey, cfg.TraceExporterRateBase)
	cfg.MetricsEnabled = resolveBool(src, OTLPMetricsEnabledEnvKey, cfg.MetricsEnabled)
	cfg.TracesEnabled = resolveBool(src, OTLPTracesEnabledEnvKey, cfg.TracesEnabled)

	return cfg
}
