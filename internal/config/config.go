// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// LauncherConfig holds the options of the launcher process itself. Launcher
// settings proper (paths, flags, texts) live in LauncherConfig.xml and are
// served by the settings package; nothing here changes where that file is.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type LauncherConfig struct {
	// Log controls the diagnostic output channel.
	Log Log `envPrefix:"LOG_"`

	// Maintenance selects one-shot actions run instead of, or after, the
	// normal start sequence.
	Maintenance Maintenance `envPrefix:"MAINTENANCE_"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LAUNCHER_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the log file. Empty means a "logs" file next to
	// the executable.
	// Env: LAUNCHER_LOG_FILE
	File string `env:"FILE"`

	// Console switches to human-readable output on stderr.
	// Env: LAUNCHER_LOG_CONSOLE
	Console bool `env:"CONSOLE"`
}

// Maintenance holds flags for actions that are never taken implicitly.
type Maintenance struct {
	// Dump writes every active configuration value to the log.
	// Env: LAUNCHER_MAINTENANCE_DUMP
	Dump bool `env:"DUMP"`

	// View opens the interactive configuration browser.
	// Env: LAUNCHER_MAINTENANCE_VIEW
	View bool `env:"VIEW"`

	// WriteDefault writes the built-in configuration to LauncherConfig.xml.
	// Env: LAUNCHER_MAINTENANCE_WRITE_DEFAULT
	WriteDefault bool `env:"WRITE_DEFAULT"`

	// Force allows WriteDefault to replace an existing file.
	// Env: LAUNCHER_MAINTENANCE_FORCE
	Force bool `env:"FORCE"`
}

// defaultLogLevel applies when neither env nor flags set a level.
const defaultLogLevel = "info"

// GetLauncherConfig loads, merges, and validates launcher options from the
// following sources (last source wins for non-zero fields):
//  1. Environment variables prefixed with LAUNCHER_
//  2. Command-line flags in args
func GetLauncherConfig(args []string) (*LauncherConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
