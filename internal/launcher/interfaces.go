// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

// Launcher defines the minimal lifecycle contract for the launcher process.
type Launcher interface {
	// Run starts the launcher and blocks until exit.
	Run() error
}

// Browser opens an interactive view of the configuration.
type Browser interface {
	Browse() error
}
