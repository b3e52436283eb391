// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "time"

// Environment variable keys for the Kafka section.
const (
	KafkaHostEnvKey               = "KAFKA_HOST"
	KafkaPortEnvKey               = "KAFKA_PORT"
	KafkaTimeoutEnvKey            = "KAFKA_TIMEOUT"
	KafkaSecurityProtocolEnvKey   = "KAFKA_SECURITY_PROTOCOL"
	KafkaSASLMechanismsEnvKey     = "KAFKA_SASL_MECHANISMS"
	KafkaCertificatePathEnvKey    = "KAFKA_CERTIFICATE_PATH"
	KafkaCAPathEnvKey             = "KAFKA_CA_PATH"
	KafkaTrustStorePathEnvKey     = "KAFKA_TRUST_STORE_PATH"
	KafkaTrustStorePasswordEnvKey = "KAFKA_TRUST_STORE_PASSWORD"
	KafkaKeyStorePathEnvKey       = "KAFKA_KEY_STORE_PATH"
	KafkaKeyStorePasswordEnvKey   = "KAFKA_KEY_STORE_PASSWORD"

	KafkaEndpointIdentificationAlgorithmEnvKey = "KAFKA_ENDPOINT_IDENTIFICATION_ALGORITHM"

	KafkaUserEnvKey     = "KAFKA_USER"
	KafkaPasswordEnvKey = "KAFKA_PASSWORD"
)

// KafkaConfigs holds Apache Kafka connection and security settings.
type KafkaConfigs struct {
	// Host is the broker host.
	// Env: KAFKA_HOST (default "localhost")
	Host string

	// Port is the broker port.
	// Env: KAFKA_PORT (default 9094)
	Port uint64

	// Timeout is the connection timeout, read as an integer number of
	// milliseconds.
	// Env: KAFKA_TIMEOUT (default 6000)
	Timeout time.Duration

	// SecurityProtocol is the broker security protocol.
	// Env: KAFKA_SECURITY_PROTOCOL (default "SASL_SSL")
	SecurityProtocol string

	// SASLMechanisms is the SASL mechanism used for authentication.
	// Env: KAFKA_SASL_MECHANISMS (default "PLAIN")
	SASLMechanisms string

	// CertificatePath points at the SSL certificate file.
	// Env: KAFKA_CERTIFICATE_PATH (default "")
	CertificatePath string

	// CAPath points at the CA certificate file.
	// Env: KAFKA_CA_PATH (default "")
	CAPath string

	// TrustStorePath points at the trust store.
	// Env: KAFKA_TRUST_STORE_PATH (default "")
	TrustStorePath string

	// TrustStorePassword unlocks the trust store.
	// Env: KAFKA_TRUST_STORE_PASSWORD (default "")
	TrustStorePassword string

	// KeyStorePath points at the key store.
	// Env: KAFKA_KEY_STORE_PATH (default "")
	KeyStorePath string

	// KeyStorePassword unlocks the key store.
	// Env: KAFKA_KEY_STORE_PASSWORD (default "")
	KeyStorePassword string

	// EndpointIdentificationAlgorithm verifies the broker endpoint.
	// Env: KAFKA_ENDPOINT_IDENTIFICATION_ALGORITHM (default "")
	EndpointIdentificationAlgorithm string

	// User is the SASL username.
	// Env: KAFKA_USER (default "")
	User string

	// Password is the SASL password.
	// Env: KAFKA_PASSWORD (default "")
	Password string
}

// DefaultKafka returns the Kafka section with every field at its
// documented default.
func DefaultKafka() KafkaConfigs {
	return KafkaConfigs{
		Host:             "localhost",
		Port:             9094,
		Timeout:          6000 * time.Millisecond,
		SecurityProtocol: "SASL_SSL",
		SASLMechanisms:   "PLAIN",
	}
}

// NewKafka resolves the Kafka section from src.
func NewKafka(src EnvSource) KafkaConfigs {
	cfg := DefaultKafka()

	cfg.Host = resolveString(src, KafkaHostEnvKey, cfg.Host)
	cfg.Port = resolveUint64(src, KafkaPortEnvKey, cfg.Port)
	cfg.Timeout = resolveMillis(src, KafkaTimeoutEnvKey, cfg.Timeout)
	cfg.SecurityProtocol = resolveString(src, KafkaSecurityProtocolEnvKey, cfg.SecurityProtocol)
	cfg.SASLMechanisms = resolveString(src, KafkaSASLMechanismsEnvKey, cfg.SASLMechanisms)
	cfg.CertificatePath = resolveString(src, KafkaCertificatePathEnvKey, cfg.CertificatePath)
	cfg.CAPath = resolveString(src, KafkaCAPathEnvKey, cfg.CAPath)
	cfg.TrustStorePath = resolveString(src, KafkaTrustStorePathEnvKey, cfg.TrustStorePath)
	cfg.TrustStorePassword = resolveString(src, KafkaTrustStorePasswordEnvKey, cfg.TrustStorePassword)
	cfg.KeyStorePath = resolveString(src, KafkaKeyStorePathEnvKey, cfg.KeyStorePath)
	cfg.KeyStorePassword = resolveString(src, KafkaKeyStorePasswordEnvKey, cfg.KeyStorePassword)
	cfg.EndpointIdentificationAlgorithm = resolveString(src, KafkaEndpointIdentificationAlgorithmEnvKey, cfg.EndpointIdentificationAlgorithm)
	cfg.User = resolveString(src, KafkaUserEnvKey, cfg.User)
	cfg.Password = resolveString(src, KafkaPasswordEnvKey, cfg.Password)

	return cfg
}
