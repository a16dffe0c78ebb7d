// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// MainFlags is the parsed form of the Main section.
type MainFlags struct {
	DeleteCache           bool
	KeepBackups           bool
	KeepBlizzlikeMPQs     bool
	ForcedRealmlist       bool
	FileProcessingOutputs bool
}

// PathSettings is the Paths section. Values are returned as written; they
// are not checked for reachability.
type PathSettings struct {
	Filelist     string
	Version      string
	Launcher     string
	FilesRoot    string
	Changelog    string
	ChangelogFTP string
	Webpage      string
	Registration string
	Instructions string
	HelloImage   string
}

// Flags returns the Main section parsed at initialization. A missing or
// unparsable flag is false.
func (s *Service) Flags() MainFlags {
	s.Init()
	return s.flags
}

// Paths returns the Paths section read at initialization.
func (s *Service) Paths() PathSettings {
	s.Init()
	return s.paths
}

// Bool parses section/key as a flag. "1"/"0" and the forms accepted by
// strconv.ParseBool are recognized.
func (s *Service) Bool(section, key string) (bool, error) {
	v, err := s.Lookup(section, key)
	if err != nil {
		return false, err
	}
	return parseBool(v)
}

// Int parses section/key as a base 10 integer.
func (s *Service) Int(section, key string) (int, error) {
	v, err := s.Lookup(section, key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, v)
	}
	return n, nil
}

// Float parses section/key as a decimal number with '.' as separator.
func (s *Service) Float(section, key string) (float64, error) {
	v, err := s.Lookup(section, key)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
	}
	return f, nil
}

func parseBool(v string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a flag", ErrInvalidValue, v)
	}
	return b, nil
}

// Called from initialize; must not go through Init.
func (s *Service) readMainFlags() MainFlags {
	flag := func(key string) bool {
		v, err := lookup(s.active, SectionMain, key)
		if err == nil {
			var b bool
			if b, err = parseBool(v); err == nil {
				return b
			}
		}
		s.log.Warn().Err(err).Str("section", SectionMain).Str("key", key).Msg("flag unavailable, treating as 0")
		return false
	}

	return MainFlags{
		DeleteCache:           flag("DeleteCache"),
		KeepBackups:           flag("KeepBackups"),
		KeepBlizzlikeMPQs:     flag("KeepBlizzlikeMPQs"),
		ForcedRealmlist:       flag("ForcedRealmlist"),
		FileProcessingOutputs: flag("FileProcessingOutputs"),
	}
}

func (s *Service) readPaths() PathSettings {
	path := func(key string) string {
		v, err := lookup(s.active, SectionPaths, key)
		if err != nil {
			s.warnMissing(err, SectionPaths, key)
		}
		return v
	}

	return PathSettings{
		Filelist:     path("FilelistPath"),
		Version:      path("VersionPath"),
		Launcher:     path("LauncherPath"),
		FilesRoot:    path("FilesRootPath"),
		Changelog:    path("ChangelogPath"),
		ChangelogFTP: path("ChangelogFTPPath"),
		Webpage:      path("Webpage"),
		Registration: path("Registration"),
		Instructions: path("Instructions"),
		HelloImage:   path("HelloImage"),
	}
}
