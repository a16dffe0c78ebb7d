// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package launcher implements the launcher process lifecycle.
//
// It resolves the configuration once at start-up, reports when built-in
// defaults are in effect, and runs the maintenance actions selected on the
// command line.
package launcher
