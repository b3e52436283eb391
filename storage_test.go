// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSqlite(t *testing.T) {
	assert.Equal(t, DefaultSqlite(), NewSqlite(MapSource{}))

	cfg := NewSqlite(MapSource{"SQLITE_FILE_NAME": "/var/data/app.db"})
	assert.Equal(t, "/var/data/app.db", cfg.File)
}

func TestNewDynamo_EmptySourceKeepsDefaults(t *testing.T) {
	cfg := NewDynamo(MapSource{})

	assert.Equal(t, DefaultDynamo(), cfg)
	assert.Equal(t, "localhost", cfg.Endpoint)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 31536000*time.Second, cfg.Expire)
}

func TestNewDynamo_AllFields(t *testing.T) {
	// Arrange
	src := MapSource{
		"DYNAMO_ENDPOINT": "dynamodb.eu-west-1.amazonaws.com",
		"DYNAMO_REGION":   "eu-west-1",
		"DYNAMO_TABLE":    "sessions",
		"DYNAMO_EXPIRE":   "86400",
	}

	// Act
	cfg := NewDynamo(src)

	// Assert
	assert.Equal(t, "dynamodb.eu-west-1.amazonaws.com", cfg.Endpoint)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "sessions", cfg.Table)
	assert.Equal(t, 24*time.Hour, cfg.Expire)
}

func TestNewDynamo_InvalidExpireKeepsDefault(t *testing.T) {
	cfg := NewDynamo(MapSource{"DYNAMO_EXPIRE": "one-year"})

	assert.Equal(t, DefaultDynamo().Expire, cfg.Expire)
}

func TestNewInflux(t *testing.T) {
	// Arrange
	src := MapSource{
		"INFLUX_HOST":   "influx.example.com",
		"INFLUX_PORT":   "8086",
		"INFLUX_BUCKET": "telemetry",
		"INFLUX_TOKEN":  "influx-token",
	}

	// Act
	cfg := NewInflux(src)

	// Assert
	assert.Equal(t, "influx.example.com", cfg.Host)
	assert.Equal(t, uint64(8086), cfg.Port)
	assert.Equal(t, "telemetry", cfg.Bucket)
	assert.Equal(t, "influx-token", cfg.Token)
	assert.Equal(t, "influx.example.com:8086", cfg.Addr())
}

func TestNewInflux_EmptySourceKeepsDefaults(t *testing.T) {
	cfg := NewInflux(MapSource{})

	assert.Equal(t, DefaultInflux(), cfg)
	assert.Equal(t, ":0", cfg.Addr())
}
