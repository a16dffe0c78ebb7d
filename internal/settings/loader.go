// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

//go:generate mockgen -source=loader.go -destination=../mock/settings_source_mock.go -package=mock

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultFileName is the persisted configuration, relative to the working
// directory.
const DefaultFileName = "LauncherConfig.xml"

// Source provides the raw bytes of the persisted configuration.
type Source interface {
	// Read returns the full content. A missing file must be reported with an
	// error matching fs.ErrNotExist.
	Read() ([]byte, error)
	// Location describes where the content comes from, for diagnostics.
	Location() string
}

type fileSource struct {
	path string
}

// NewFileSource returns a [Source] reading the file at path.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (f *fileSource) Read() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f *fileSource) Location() string {
	return f.path
}

// loadDocument reads and parses the persisted configuration. The returned
// error matches fs.ErrNotExist when there is nothing to read. A panicking
// source is reported as [ErrSourceFailed].
func loadDocument(src Source) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %s: %v", ErrSourceFailed, src.Location(), r)
		}
	}()

	data, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", src.Location(), err)
	}

	doc, err = decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", src.Location(), err)
	}

	return doc, nil
}

func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// writeDocument writes doc to path. Unless force is set an existing file is
// left untouched and [ErrFileExists] is returned.
func writeDocument(path string, doc *Document, force bool) error {
	var buf bytes.Buffer
	if err := encodeDocument(&buf, doc); err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("error opening %s: %w", path, err)
	}

	if _, err = buf.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	return f.Close()
}
