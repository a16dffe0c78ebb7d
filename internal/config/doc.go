// Package config provides loading, merging, and validation of the launcher
// process options.
//
// Options are assembled from the following sources (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (LAUNCHER_ prefix)
//  3. Command-line flags
//
// The main entry point is [GetLauncherConfig].
package config
