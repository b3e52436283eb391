// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

// AWSDefaultRegion is the region assumed when a deployment does not pick
// one of its own.
const AWSDefaultRegion = "us-east-1"

// Environment variable keys for the AWS credentials section. The IAM
// spellings win; the standard SDK spellings are honored as fallbacks.
const (
	AWSIAMAccessKeyIDEnvKey     = "AWS_IAM_ACCESS_KEY_ID"
	AWSAccessKeyIDEnvKey        = "AWS_ACCESS_KEY_ID"
	AWSIAMSecretAccessKeyEnvKey = "AWS_IAM_SECRET_ACCESS_KEY"
	AWSSecretAccessKeyEnvKey    = "AWS_SECRET_ACCESS_KEY"
	AWSSessionTokenEnvKey       = "AWS_SESSION_TOKEN"
)

// AwsConfigs holds AWS credentials.
type AwsConfigs struct {
	// AccessKeyID is the IAM access key id.
	// Env: AWS_IAM_ACCESS_KEY_ID, falling back to AWS_ACCESS_KEY_ID
	// (default "local")
	AccessKeyID string

	// SecretAccessKey is the IAM secret access key.
	// Env: AWS_IAM_SECRET_ACCESS_KEY, falling back to
	// AWS_SECRET_ACCESS_KEY (default "local")
	SecretAccessKey string

	// SessionToken is the optional STS session token.
	// Env: AWS_SESSION_TOKEN (default "")
	SessionToken string
}

// DefaultAws returns the AWS section with every field at its documented
// default. The "local" placeholders suit local stacks that only need
// non-empty credentials.
func DefaultAws() AwsConfigs {
	return AwsConfigs{
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	}
}

// NewAws resolves the AWS section from src.
func NewAws(src EnvSource) AwsConfigs {
	cfg := DefaultAws()

	cfg.AccessKeyID = resolveString(src, AWSIAMAccessKeyIDEnvKey,
		resolveString(src, AWSAccessKeyIDEnvKey, cfg.AccessKeyID))
	cfg.SecretAccessKey = resolveString(src, AWSIAMSecretAccessKeyEnvKey,
		resolveString(src, AWSSecretAccessKeyEnvKey, cfg.SecretAccessKey))
	cfg.SessionToken = resolveString(src, AWSSessionTokenEnvKey, cfg.SessionToken)

	return cfg
}
