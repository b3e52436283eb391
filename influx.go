// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "fmt"

// Environment variable keys for the InfluxDB section.
const (
	InfluxHostEnvKey   = "INFLUX_HOST"
	InfluxPortEnvKey   = "INFLUX_PORT"
	InfluxBucketEnvKey = "INFLUX_BUCKET"
	InfluxTokenEnvKey  = "INFLUX_TOKEN"
)

// InfluxConfigs holds InfluxDB settings.
type InfluxConfigs struct {
	// Host is the InfluxDB host.
	// Env: INFLUX_HOST (default "")
	Host string

	// Port is the InfluxDB port.
	// Env: INFLUX_PORT (default 0)
	Port uint64

	// Bucket is the target bucket.
	// Env: INFLUX_BUCKET (default "")
	Bucket string

	// Token is the API token.
	// Env: INFLUX_TOKEN (default "")
	Token string
}

// DefaultInflux returns the InfluxDB section with every field at its
// documented default.
func DefaultInflux() InfluxConfigs {
	return InfluxConfigs{}
}

// NewInflux resolves the InfluxDB section from src.
func NewInflux(src EnvSource) InfluxConfigs {
	cfg := DefaultInflux()

	cfg.Host = resolveString(src, InfluxHostEnvKey, cfg.Host)
	cfg.Port = resolveUint64(src, InfluxPortEnvKey, cfg.Port)
	cfg.Bucket = resolveString(src, InfluxBucketEnvKey, cfg.Bucket)
	cfg.Token = resolveString(src, InfluxTokenEnvKey, cfg.Token)

	return cfg
}

// Addr returns the InfluxDB address in "host:port" form.
func (c InfluxConfigs) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
