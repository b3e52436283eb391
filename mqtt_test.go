// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMQTT_EmptySourceKeepsDefaults(t *testing.T) {
	cfg := NewMQTT(MapSource{})

	assert.False(t, cfg.MultiBrokerEnabled)
	assert.Equal(t, "[]", cfg.Brokers)
	require.Len(t, cfg.Connections, 1)
	assert.Equal(t, defaultMQTTConnection(), cfg.Connections[0])
}

func TestNewMQTT_SingleBroker(t *testing.T) {
	// Arrange
	src := MapSource{
		"MQTT_BROKER_KIND":      "AWSIoTCore",
		"MQTT_HOST":             "mqtt.example.com",
		"MQTT_TRANSPORT":        "SSL",
		"MQTT_PORT":             "8883",
		"MQTT_USER":             "device-1",
		"MQTT_PASSWORD":         "device-secret",
		"MQTT_CA_CERT_PATH":     "/certs/root-ca.pem",
		"MQTT_CERT_PATH":        "/certs/device.pem",
		"MQTT_PRIVATE_KEY_PATH": "/certs/device.key",
	}

	// Act
	cfg := NewMQTT(src)

	// Assert
	require.Len(t, cfg.Connections, 1)
	conn := cfg.Connections[0]
	assert.Equal(t, "default", conn.Tag)
	assert.Equal(t, MQTTBrokerKindAWSIoTCore, conn.BrokerKind)
	assert.Equal(t, "mqtt.example.com", conn.Host)
	assert.Equal(t, MQTTTransportSSL, conn.Transport)
	assert.Equal(t, uint64(8883), conn.Port)
	assert.Equal(t, "device-1", conn.User)
	assert.Equal(t, "device-secret", conn.Password)
	assert.Equal(t, "/certs/root-ca.pem", conn.RootCAPath)
	assert.Equal(t, "/certs/device.pem", conn.CertPath)
	assert.Equal(t, "/certs/device.key", conn.PrivateKeyPath)
}

func TestNewMQTT_MultiBrokerDecodesList(t *testing.T) {
	// Arrange
	brokers := `[
		{"tag":"ingest","host":"a.example.com","transport":"ssl","port":8883,"user":"u1","password":"p1"},
		{"tag":"egress","broker_kind":"AWSIoTCore","host":"b.example.com","transport":"WS","port":443,"user":"u2","password":"p2"}
	]`
	src := MapSource{
		"MQTT_MULTI_BROKER_ENABLED": "true",
		"MQTT_BROKERS":              brokers,
	}

	// Act
	cfg := NewMQTT(src)

	// Assert
	assert.True(t, cfg.MultiBrokerEnabled)
	require.Len(t, cfg.Connections, 2)

	assert.Equal(t, "ingest", cfg.Connections[0].Tag)
	assert.Equal(t, MQTTBrokerKindDefault, cfg.Connections[0].BrokerKind)
	assert.Equal(t, MQTTTransportSSL, cfg.Connections[0].Transport)
	assert.Equal(t, uint64(8883), cfg.Connections[0].Port)

	assert.Equal(t, "egress", cfg.Connections[1].Tag)
	assert.Equal(t, MQTTBrokerKindAWSIoTCore, cfg.Connections[1].BrokerKind)
	assert.Equal(t, MQTTTransportWS, cfg.Connections[1].Transport)
}

func TestNewMQTT_MultiBrokerBadJSONKeepsDefault(t *testing.T) {
	src := MapSource{
		"MQTT_MULTI_BROKER_ENABLED": "true",
		"MQTT_BROKERS":              "{not json",
	}

	cfg := NewMQTT(src)

	// Fail-open: an undecodable list leaves the default connection alone.
	require.Len(t, cfg.Connections, 1)
	assert.Equal(t, defaultMQTTConnection(), cfg.Connections[0])
}

func TestMQTTTransportFrom(t *testing.T) {
	tests := []struct {
		value    string
		expected MQTTTransport
	}{
		{"ssl", MQTTTransportSSL},
		{"SSL", MQTTTransportSSL},
		{"ws", MQTTTransportWS},
		{"tcp", MQTTTransportTCP},
		{"banana", MQTTTransportTCP},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MQTTTransportFrom(tt.value), "value %q", tt.value)
	}
}

func TestMQTTBrokerKindFrom(t *testing.T) {
	assert.Equal(t, MQTTBrokerKindAWSIoTCore, MQTTBrokerKindFrom("awsiotcore"))
	assert.Equal(t, MQTTBrokerKindAWSIoTCore, MQTTBrokerKindFrom("AWSIoTCore"))
	assert.Equal(t, MQTTBrokerKindDefault, MQTTBrokerKindFrom("default"))
	assert.Equal(t, MQTTBrokerKindDefault, MQTTBrokerKindFrom("something-else"))
}
