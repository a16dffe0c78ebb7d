// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

// Lookup outcomes. Both are expected at runtime and mean "unconfigured".
var (
	// ErrSectionNotFound is returned when the active document has no section
	// with the requested name.
	ErrSectionNotFound = errors.New("section not found")
	// ErrKeyNotFound is returned when the section exists but holds no entry
	// with the requested key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidValue is returned by typed accessors when the stored text
	// cannot be converted to the requested type.
	ErrInvalidValue = errors.New("invalid value")
)

// Load failures. None of them escapes [Service.Init]; each one activates the
// default document instead.
var (
	ErrMalformedDocument = errors.New("malformed configuration document")
	ErrInvalidEncoding   = errors.New("configuration document is not valid UTF-8")
	ErrNoRoot            = errors.New("configuration document has no complete root element")
	ErrMultipleRoots     = errors.New("configuration document has more than one root element")
	ErrSourceFailed      = errors.New("configuration source failed")
)

// Maintenance failures returned by [Service.WriteDefault].
var (
	ErrFileExists     = errors.New("configuration file already exists")
	ErrInvalidComment = errors.New("annotation cannot be written as an XML comment")
	ErrNotWritable    = errors.New("configuration source has no file to write")
)
