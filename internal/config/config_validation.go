// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"
)

// validate checks the merged [LauncherConfig] before it is used at startup.
func (cfg *LauncherConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return ErrInvalidLogConfigs
	}

	if cfg.Maintenance.Force && !cfg.Maintenance.WriteDefault {
		return ErrInvalidMaintenanceConfigs
	}

	return nil
}

// ZerologLevel returns the parsed log level. It is only meaningful on a
// validated config.
func (l Log) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
