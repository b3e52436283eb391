// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import "os"

// EnvSource supplies raw environment values to the resolver. Abstracting
// the process environment behind this one-method interface lets tests
// inject a [MapSource] instead of mutating real process state.
type EnvSource interface {
	// Lookup returns the raw value bound to key and whether the key is
	// present at all. An empty string with ok == true is a present value.
	Lookup(key string) (string, bool)
}

// OSSource reads the real process environment. It is the source used by
// [New] unless overridden with [WithSource].
type OSSource struct{}

// Lookup implements EnvSource via os.LookupEnv.
func (OSSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource is an in-memory EnvSource backed by a plain map, intended for
// tests and tooling.
type MapSource map[string]string

// Lookup implements EnvSource.
func (m MapSource) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
