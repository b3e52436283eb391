// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOTLP_EmptySourceKeepsDefaults(t *testing.T) {
	cfg := NewOTLP(MapSource{})

	assert.Equal(t, DefaultOTLP(), cfg)
	assert.Equal(t, OTLPExporterStdout, cfg.ExporterType)
	assert.Equal(t, "http://localhost:4317", cfg.Endpoint)
	assert.Equal(t, 60*time.Second, cfg.ExporterTimeout)
	assert.Equal(t, 0.8, cfg.ExporterRateBase)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.TracesEnabled)
}

func TestNewOTLP_AllFields(t *testing.T) {
	// Arrange
	src := MapSource{
		"OTLP_EXPORTER_TYPE":     "OTLP",
		"OTLP_EXPORTER_ENDPOINT": "https://collector.example.com:4317",
		"OTLP_ACCESS_KEY":        "collector-key",
		"OTLP_EXPORTER_TIMEOUT":  "30",
		"OTLP_EXPORTER_INTERVAL": "15",
		"OTLP_METRICS_ENABLED":   "true",
		"OTLP_TRACES_ENABLED":    "true",

		"OTLP_EXPORTER_RATE_BASE":        "0.5",
		"OTLP_METRIC_EXPORTER_RATE_BASE": "0.25",
		"OTLP_TRACE_EXPORTER_RATE_BASE":  "0.75",
	}

	// Act
	cfg := NewOTLP(src)

	// Assert
	assert.Equal(t, OTLPExporterOTLP, cfg.ExporterType)
	assert.Equal(t, "https://collector.example.com:4317", cfg.Endpoint)
	assert.Equal(t, "collector-key", cfg.AccessKey)
	assert.Equal(t, 30*time.Second, cfg.ExporterTimeout)
	assert.Equal(t, 15*time.Second, cfg.ExporterInterval)
	assert.Equal(t, 0.5, cfg.ExporterRateBase)
	assert.Equal(t, 0.25, cfg.MetricExporterRateBase)
	assert.Equal(t, 0.75, cfg.TraceExporterRateBase)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.TracesEnabled)
}

func TestOTLPExporterTypeFrom(t *testing.T) {
	assert.Equal(t, OTLPExporterOTLP, OTLPExporterTypeFrom("otlp"))
	assert.Equal(t, OTLPExporterOTLP, OTLPExporterTypeFrom("OTLP"))
	assert.Equal(t, OTLPExporterStdout, OTLPExporterTypeFrom("stdout"))
	assert.Equal(t, OTLPExporterStdout, OTLPExporterTypeFrom("banana"))
}

func TestOTLPConfigs_MetricConfigs(t *testing.T) {
	// Arrange
	src := MapSource{
		"OTLP_EXPORTER_TYPE":             "otlp",
		"OTLP_METRICS_ENABLED":           "true",
		"OTLP_METRIC_EXPORTER_RATE_BASE": "0.4",
	}
	otlp := NewOTLP(src)

	// Act
	metrics := otlp.MetricConfigs()

	// Assert
	assert.True(t, metrics.Enable)
	assert.Equal(t, MetricExporterOTLPgRPC, metrics.Exporter)
	assert.Equal(t, otlp.Endpoint, metrics.Host)
	assert.Equal(t, otlp.AccessKey, metrics.AccessKey)
	assert.Equal(t, otlp.ExporterTimeout, metrics.ExportTimeout)
	assert.Equal(t, otlp.ExporterInterval, metrics.ExportInterval)
	assert.Equal(t, 0.4, metrics.ExportRateBase)

	// Derivation is pure.
	assert.Equal(t, metrics, otlp.MetricConfigs())
}

func TestOTLPConfigs_TraceConfigs(t *testing.T) {
	otlp := DefaultOTLP()

	traces := otlp.TraceConfigs()

	assert.False(t, traces.Enable)
	assert.Equal(t, TraceExporterStdout, traces.Exporter)
	assert.Equal(t, otlp.TraceExporterRateBase, traces.ExportRateBase)
}

func TestMetricExporterKindFrom(t *testing.T) {
	tests := []struct {
		value    string
		expected MetricExporterKind
	}{
		{"otlp", MetricExporterOTLPgRPC},
		{"otlp-grpc", MetricExporterOTLPgRPC},
		{"grpc", MetricExporterOTLPgRPC},
		{"prom", MetricExporterPrometheus},
		{"Prometheus", MetricExporterPrometheus},
		{"stdout", MetricExporterStdout},
		{"banana", MetricExporterStdout},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MetricExporterKindFrom(tt.value), "value %q", tt.value)
	}
}

func TestTraceExporterKindFrom(t *testing.T) {
	assert.Equal(t, TraceExporterOTLPgRPC, TraceExporterKindFrom("OTLP"))
	assert.Equal(t, TraceExporterStdout, TraceExporterKindFrom("prometheus"))
	assert.Equal(t, TraceExporterStdout, TraceExporterKindFrom(""))
}
