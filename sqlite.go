// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

// SqliteFileNameEnvKey is the environment variable naming the SQLite
// database file.
const SqliteFileNameEnvKey = "SQLITE_FILE_NAME"

// SqliteConfigs holds SQLite settings.
type SqliteConfigs struct {
	// File is the path to the database file.
	// Env: SQLITE_FILE_NAME (default "")
	File string
}

// DefaultSqlite returns the SQLite section with every field at its
// documented default.
func DefaultSqlite() SqliteConfigs {
	return SqliteConfigs{}
}

// NewSqlite resolves the SQLite section from src.
func NewSqlite(src EnvSource) SqliteConfigs {
	cfg := DefaultSqlite()

	cfg.File = resolveString(src, SqliteFileNameEnvKey, cfg.File)

	return cfg
}
