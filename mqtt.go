// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"encoding/json"
	"strings"
)

// Environment variable keys for the MQTT section.
const (
	MQTTMultiBrokerEnabledEnvKey = "MQTT_MULTI_BROKER_ENABLED"
	MQTTBrokersEnvKey            = "MQTT_BROKERS"
	MQTTBrokerKindEnvKey         = "MQTT_BROKER_KIND"
	MQTTHostEnvKey               = "MQTT_HOST"
	MQTTTransportEnvKey          = "MQTT_TRANSPORT"
	MQTTPortEnvKey               = "MQTT_PORT"
	MQTTUserEnvKey               = "MQTT_USER"
	MQTTPasswordEnvKey           = "MQTT_PASSWORD"
	MQTTCACertPathEnvKey         = "MQTT_CA_CERT_PATH"
	MQTTCertPathEnvKey           = "MQTT_CERT_PATH"
	MQTTPrivateKeyPathEnvKey     = "MQTT_PRIVATE_KEY_PATH"
)

// MQTTBrokerKind is the broker implementation a connection targets.
type MQTTBrokerKind string

const (
	// MQTTBrokerKindDefault is a standard MQTT broker, the default.
	MQTTBrokerKindDefault MQTTBrokerKind = "default"
	// MQTTBrokerKindAWSIoTCore is the AWS IoT Core broker.
	MQTTBrokerKindAWSIoTCore MQTTBrokerKind = "awsiotcore"
)

// MQTTBrokerKindFrom maps a raw value onto an MQTTBrokerKind. Matching is
// case-insensitive; unknown values are [MQTTBrokerKindDefault].
func MQTTBrokerKindFrom(value string) MQTTBrokerKind {
	if strings.EqualFold(value, "awsiotcore") {
		return MQTTBrokerKindAWSIoTCore
	}

	return MQTTBrokerKindDefault
}

// UnmarshalText normalizes broker kinds decoded from the MQTT_BROKERS
// JSON list.
func (k *MQTTBrokerKind) UnmarshalText(text []byte) error {
	*k = MQTTBrokerKindFrom(string(text))
	return nil
}

// MQTTTransport is the transport protocol an MQTT connection uses.
type MQTTTransport string

const (
	// MQTTTransportTCP is plain TCP, the default.
	MQTTTransportTCP MQTTTransport = "tcp"
	// MQTTTransportSSL is SSL/TLS.
	MQTTTransportSSL MQTTTransport = "ssl"
	// MQTTTransportWS is WebSocket.
	MQTTTransportWS MQTTTransport = "ws"
)

// MQTTTransportFrom maps a raw value onto an MQTTTransport. Matching is
// case-insensitive; unknown values are [MQTTTransportTCP].
func MQTTTransportFrom(value string) MQTTTransport {
	switch strings.ToLower(value) {
	case "ssl":
		return MQTTTransportSSL
	case "ws":
		return MQTTTransportWS
	default:
		return MQTTTransportTCP
	}
}

// UnmarshalText normalizes transports decoded from the MQTT_BROKERS JSON
// list.
func (t *MQTTTransport) UnmarshalText(text []byte) error {
	*t = MQTTTransportFrom(string(text))
	return nil
}

// MQTTConnectionConfigs describes one MQTT broker connection. The JSON
// tags match the entries of the MQTT_BROKERS list used in multi-broker
// mode.
type MQTTConnectionConfigs struct {
	// Tag uniquely identifies the connection (default "default").
	Tag string `json:"tag"`

	// BrokerKind is the broker implementation (default "default").
	BrokerKind MQTTBrokerKind `json:"broker_kind"`

	// Host is the broker host (default "localhost").
	Host string `json:"host"`

	// Transport is the transport protocol (default tcp).
	Transport MQTTTransport `json:"transport"`

	// Port is the broker port (default 1883).
	Port uint64 `json:"port"`

	// User is the authentication username (default "mqtt_user").
	User string `json:"user"`

	// Password is the authentication password (default "password").
	Password string `json:"password"`

	// DeviceName names the device on public cloud brokers (default "").
	DeviceName string `json:"device_name"`

	// RootCAPath points at the root CA certificate (default "").
	RootCAPath string `json:"root_ca_path"`

	// CertPath points at the client certificate (default "").
	CertPath string `json:"cert_path"`

	// PrivateKeyPath points at the client private key (default "").
	PrivateKeyPath string `json:"private_key_path"`
}

// MQTTConfigs holds MQTT broker settings, covering both a single broker
// resolved from individual variables and a JSON-described broker list.
type MQTTConfigs struct {
	// MultiBrokerEnabled switches resolution to the MQTT_BROKERS list.
	// Env: MQTT_MULTI_BROKER_ENABLED (default false)
	MultiBrokerEnabled bool

	// Brokers is the raw JSON list of broker connections.
	// Env: MQTT_BROKERS (default "[]")
	Brokers string

	// Connections are the resolved broker connections. In single-broker
	// mode it holds exactly one entry.
	Connections []MQTTConnectionConfigs
}

func defaultMQTTConnection() MQTTConnectionConfigs {
	return MQTTConnectionConfigs{
		Tag:        "default",
		BrokerKind: MQTTBrokerKindDefault,
		Host:       "localhost",
		Transport:  MQTTTransportTCP,
		Port:       1883,
		User:       "mqtt_user",
		Password:   "password",
	}
}

// DefaultMQTT returns the MQTT section with a single default connection.
func DefaultMQTT() MQTTConfigs {
	return MQTTConfigs{
		Brokers:     "[]",
		Connections: []MQTTConnectionConfigs{defaultMQTTConnection()},
	}
}

// NewMQTT resolves the MQTT section from src. In multi-broker mode the
// MQTT_BROKERS JSON list is decoded into Connections; a list that cannot
// be decoded leaves the default single connection in place.
func NewMQTT(src EnvSource) MQTTConfigs {
	cfg := DefaultMQTT()

	cfg.MultiBrokerEnabled = resolveBool(src, MQTTMultiBrokerEnabledEnvKey, cfg.MultiBrokerEnabled)
	cfg.Brokers = resolveString(src, MQTTBrokersEnvKey, cfg.Brokers)

	if cfg.MultiBrokerEnabled {
		var connections []MQTTConnectionConfigs
		if err := json.Unmarshal([]byte(cfg.Brokers), &connections); err == nil && len(connections) > 0 {
			for i := range connections {
				// Token fields always hold a valid variant, even when the
				// list entry leaves them out.
				if connections[i].BrokerKind == "" {
					connections[i].BrokerKind = MQTTBrokerKindDefault
				}
				if connections[i].Transport == "" {
					connections[i].Transport = MQTTTransportTCP
				}
			}
			cfg.Connections = connections
		}

		return cfg
	}

	conn := &cfg.Connections[0]
	conn.BrokerKind = resolveToken(src, MQTTBrokerKindEnvKey, conn.BrokerKind, MQTTBrokerKindFrom)
	conn.Host = resolveString(src, MQTTHostEnvKey, conn.Host)
	conn.Transport = resolveToken(src, MQTTTransportEnvKey, conn.Transport, MQTTTransportFrom)
	conn.Port = resolveUint64(src, MQTTPortEnvKey, conn.Port)
	conn.User = resolveString(src, MQTTUserEnvKey, conn.User)
	conn.Password = resolveString(src, MQTTPasswordEnvKey, conn.Password)
	conn.RootCAPath = resolveString(src, MQTTCACertPathEnvKey, conn.RootCAPath)
	conn.CertPath = resolveString(src, MQTTCertPathEnvKey, conn.CertPath)
	conn.PrivateKeyPath = resolveString(src, MQTTPrivateKeyPathEnvKey, conn.PrivateKeyPath)

	return cfg
}
