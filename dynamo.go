// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "time"

// Environment variable keys for the DynamoDB section.
const (
	DynamoEndpointEnvKey = "DYNAMO_ENDPOINT"
	DynamoRegionEnvKey   = "DYNAMO_REGION"
	DynamoTableEnvKey    = "DYNAMO_TABLE"
	DynamoExpireEnvKey   = "DYNAMO_EXPIRE"
)

// DynamoConfigs holds DynamoDB settings.
type DynamoConfigs struct {
	// Endpoint is the DynamoDB endpoint.
	// Env: DYNAMO_ENDPOINT (default "localhost")
	Endpoint string

	// Region is the AWS region the table lives in.
	// Env: DYNAMO_REGION (default "us-east-1")
	Region string

	// Table is the table name.
	// Env: DYNAMO_TABLE (default "")
	Table string

	// Expire is the item TTL, read as an integer number of seconds.
	// Env: DYNAMO_EXPIRE (default 31536000, one year)
	Expire time.Duration
}

// DefaultDynamo returns the DynamoDB section with every field at its
// documented default.
func DefaultDynamo() DynamoConfigs {
	return DynamoConfigs{
		Endpoint: "localhost",
		Region:   "us-east-1",
		Expire:   31536000 * time.Second,
	}
}

// NewDynamo resolves the DynamoDB section from src.
func NewDynamo(src EnvSource) DynamoConfigs {
	cfg := DefaultDynamo()

	cfg.Endpoint = resolveString(src, DynamoEndpointEnvKey, cfg.Endpoint)
	cfg.Region = resolveString(src, DynamoRegionEnvKey, cfg.Region)
	cfg.Table = resolveString(src, DynamoTableEnvKey, cfg.Table)
	cfg.Expire = resolveSeconds(src, DynamoExpireEnvKey, cfg.Expire)

	return cfg
}
