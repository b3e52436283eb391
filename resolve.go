// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

import (
	"time"

	"github.com/spf13/cast"
)

// resolve looks up key in src and converts the raw value with parse.
// An absent key, or a value parse cannot convert, yields def: every field
// resolution is total and never surfaces an error. A present empty string
// is handed to parse like any other value.
func resolve[T any](src EnvSource, key string, def T, parse func(string) (T, error)) T {
	raw, ok := src.Lookup(key)
	if !ok {
		return def
	}

	value, err := parse(raw)
	if err != nil {
		return def
	}

	return value
}

// resolveToken is resolve for token-style values whose parsers are total
// (unknown tokens map onto a well-known fallback variant).
func resolveToken[T any](src EnvSource, key string, def T, from func(string) T) T {
	raw, ok := src.Lookup(key)
	if !ok {
		return def
	}

	return from(raw)
}

func resolveString(src EnvSource, key, def string) string {
	raw, ok := src.Lookup(key)
	if !ok {
		return def
	}

	// Empty string is a valid value and overrides a non-empty default.
	return raw
}

func resolveBool(src EnvSource, key string, def bool) bool {
	return resolve(src, key, def, func(raw string) (bool, error) { return cast.ToBoolE(raw) })
}

func resolveUint16(src EnvSource, key string, def uint16) uint16 {
	return resolve(src, key, def, func(raw string) (uint16, error) { return cast.ToUint16E(raw) })
}

func resolveUint64(src EnvSource, key string, def uint64) uint64 {
	return resolve(src, key, def, func(raw string) (uint64, error) { return cast.ToUint64E(raw) })
}

func resolveFloat64(src EnvSource, key string, def float64) float64 {
	return resolve(src, key, def, func(raw string) (float64, error) { return cast.ToFloat64E(raw) })
}

// resolveSeconds reads an integer number of seconds into a time.Duration.
func resolveSeconds(src EnvSource, key string, def time.Duration) time.Duration {
	return resolve(src, key, def, func(raw string) (time.Duration, error) {
		seconds, err := cast.ToUint64E(raw)
		if err != nil {
			return 0, err
		}

		return time.Duration(seconds) * time.Second, nil
	})
}

// resolveMillis reads an integer number of milliseconds into a
// time.Duration.
func resolveMillis(src EnvSource, key string, def time.Duration) time.Duration {
	return resolve(src, key, def, func(raw string) (time.Duration, error) {
		millis, err := cast.ToUint64E(raw)
		if err != nil {
			return 0, err
		}

		return time.Duration(millis) * time.Millisecond, nil
	})
}
