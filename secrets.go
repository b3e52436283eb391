// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "strings"

// SecretsManagerKind selects which secrets management backend, if any, the
// application uses.
type SecretsManagerKind uint8

const (
	// SecretsManagerNone disables secrets management, the default.
	SecretsManagerNone SecretsManagerKind = iota
	// SecretsManagerAWS selects AWS Secrets Manager.
	SecretsManagerAWS
)

// SecretsManagerKindFrom maps a raw value onto a SecretsManagerKind.
// Matching is case-insensitive; anything other than "aws" is
// [SecretsManagerNone].
func SecretsManagerKindFrom(value string) SecretsManagerKind {
	if strings.EqualFold(value, "aws") {
		return SecretsManagerAWS
	}

	return SecretsManagerNone
}

// String renders the canonical token for the kind.
func (k SecretsManagerKind) String() string {
	if k == SecretsManagerAWS {
		return "aws"
	}

	return "none"
}
