// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [LauncherConfig.validate].
var (
	// ErrInvalidLogConfigs indicates an unknown or empty log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidMaintenanceConfigs indicates contradictory maintenance
	// options (for example, -force without -write-default).
	ErrInvalidMaintenanceConfigs = errors.New("invalid maintenance configuration")
)
