// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel is a zerolog level name. It implements the flag.Value interface.
type LogLevel struct {
	name string
}

// parseFlags parses launcher flags from args.
//
// Flags:
//
//	-log-level zerolog level name (debug, info, warn, error)
//	-log-file log file path
//	-log-console human-readable log output on stderr
//	-dump write all configuration values to the log
//	-view open the configuration browser
//	-write-default write the built-in configuration to LauncherConfig.xml
//	-force allow -write-default to replace an existing file
func parseFlags(args []string) (*LauncherConfig, error) {
	fs := flag.NewFlagSet("launcher", flag.ContinueOnError)

	var level LogLevel
	var logFile string
	var logConsole, dump, view, writeDefault, force bool

	fs.Var(&level, "log-level", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&logConsole, "log-console", false, "Human-readable log output on stderr")
	fs.BoolVar(&dump, "dump", false, "Write all configuration values to the log")
	fs.BoolVar(&view, "view", false, "Open the configuration browser")
	fs.BoolVar(&writeDefault, "write-default", false, "Write the built-in configuration to LauncherConfig.xml")
	fs.BoolVar(&force, "force", false, "Allow -write-default to replace an existing file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &LauncherConfig{
		Log: Log{
			Level:   level.String(),
			File:    logFile,
			Console: logConsole,
		},
		Maintenance: Maintenance{
			Dump:         dump,
			View:         view,
			WriteDefault: writeDefault,
			Force:        force,
		},
	}, nil
}

// IsHelpRequested reports whether err comes from -h or -help. Usage has
// already been printed in that case.
func IsHelpRequested(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// String returns the level name, or "" when unset.
func (l *LogLevel) String() string {
	return l.name
}

// Set validates s with zerolog.ParseLevel and stores its canonical name.
func (l *LogLevel) Set(s string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		return errors.New("empty log level")
	}

	l.name = lvl.String()
	return nil
}
