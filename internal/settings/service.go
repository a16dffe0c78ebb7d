// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-launcher/internal/logger"
)

// State is the lifecycle stage of a [Service].
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateDefaultActive
	StateLoadedActive
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateDefaultActive:
		return "default-active"
	case StateLoadedActive:
		return "loaded-active"
	default:
		return "unknown"
	}
}

// KeyValue is one entry as exposed by [Service.DumpAll].
type KeyValue struct {
	Key   string
	Value string
}

// Service resolves launcher settings. The first call to any method builds the
// default document and loads the persisted one, exactly once; afterwards the
// active document is immutable and all methods are safe for concurrent use.
type Service struct {
	log      *logger.Logger
	source   Source
	path     string
	generate func() *Document

	once     sync.Once
	state    atomic.Int32
	defaults *Document
	active   *Document
	loadErr  error

	flags MainFlags
	paths PathSettings
}

// Option configures a [Service].
type Option func(*Service)

// WithFile reads the persisted configuration from path instead of
// [DefaultFileName].
func WithFile(path string) Option {
	return func(s *Service) {
		s.path = path
		s.source = NewFileSource(path)
	}
}

// WithSource reads the persisted configuration from src. Unless src was
// created by [NewFileSource], [Service.WriteDefault] has nowhere to write and
// returns [ErrNotWritable].
func WithSource(src Source) Option {
	return func(s *Service) {
		s.source = src
		s.path = ""
		if f, ok := src.(*fileSource); ok {
			s.path = f.path
		}
	}
}

// New returns an uninitialized Service. Nothing is read until first use.
func New(log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log,
		path:     DefaultFileName,
		source:   NewFileSource(DefaultFileName),
		generate: Defaults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init resolves the active document. Concurrent callers block until the
// first one finishes; later calls return immediately.
func (s *Service) Init() {
	s.once.Do(s.initialize)
}

func (s *Service) initialize() {
	s.state.Store(int32(StateInitializing))

	s.defaults = s.generate()
	s.active = s.defaults

	doc, err := loadDocument(s.source)
	switch {
	case err == nil:
		s.active = doc
		s.log.Debug().Str("file", s.source.Location()).Int("sections", doc.Len()).Msg("configuration loaded")
	case isMissing(err):
		s.useDefaults(err)
		s.log.Warn().Str("file", s.source.Location()).Msg("configuration file not found, using defaults")
	default:
		s.useDefaults(err)
		s.log.Warn().Err(err).Str("file", s.source.Location()).Msg("configuration file could not be loaded, using defaults")
	}

	s.flags = s.readMainFlags()
	s.paths = s.readPaths()

	if s.active == s.defaults {
		s.state.Store(int32(StateDefaultActive))
	} else {
		s.state.Store(int32(StateLoadedActive))
	}
}

func (s *Service) useDefaults(cause error) {
	s.active = s.defaults
	s.loadErr = cause
}

// State reports the lifecycle stage without triggering initialization.
func (s *Service) State() State {
	return State(s.state.Load())
}

// IsDefault reports whether the built-in defaults answer lookups because the
// persisted configuration was missing or unreadable.
func (s *Service) IsDefault() bool {
	s.Init()
	return s.State() == StateDefaultActive
}

// LoadError returns the reason defaults are in effect, or nil.
func (s *Service) LoadError() error {
	s.Init()
	return s.loadErr
}

// Active returns the document answering lookups.
func (s *Service) Active() *Document {
	s.Init()
	return s.active
}

// Defaults returns the built-in document, kept even when a file was loaded.
func (s *Service) Defaults() *Document {
	s.Init()
	return s.defaults
}

// Lookup resolves section/key against the active document. The error is
// [ErrSectionNotFound] or [ErrKeyNotFound]; nothing is logged.
func (s *Service) Lookup(section, key string) (string, error) {
	return lookup(s.Active(), section, key)
}

// ValueOf returns the value of section/key, or an empty string after logging
// a warning when either is missing.
func (s *Service) ValueOf(section, key string) string {
	v, err := s.Lookup(section, key)
	if err != nil {
		s.warnMissing(err, section, key)
	}
	return v
}

// LookupSection returns the text payload of a single-value section.
func (s *Service) LookupSection(section string) (string, error) {
	sec, ok := s.Active().section(section)
	if !ok {
		return "", ErrSectionNotFound
	}
	return sec.InnerText(), nil
}

// SectionText is the fail-soft form of [Service.LookupSection].
func (s *Service) SectionText(section string) string {
	v, err := s.LookupSection(section)
	if err != nil {
		s.warnMissing(err, section, "")
	}
	return v
}

// DumpAll yields every section of the active document with its entries.
func (s *Service) DumpAll() iter.Seq2[string, []KeyValue] {
	doc := s.Active()

	return func(yield func(string, []KeyValue) bool) {
		for _, sec := range doc.sections {
			kvs := make([]KeyValue, 0, len(sec.Entries))
			for _, e := range sec.Entries {
				kvs = append(kvs, KeyValue{Key: e.Key, Value: e.Value})
			}
			if !yield(sec.Name, kvs) {
				return
			}
		}
	}
}

// OutputContent writes every value of the active document to the log.
func (s *Service) OutputContent() {
	s.log.Info().Bool("defaults", s.IsDefault()).Msg("dumping configuration values")
	for section, kvs := range s.DumpAll() {
		s.log.Info().Str("section", section).Int("entries", len(kvs)).Msg("section")
		for _, kv := range kvs {
			s.log.Info().Str("section", section).Str("key", kv.Key).Str("value", kv.Value).Send()
		}
	}
}

// WriteDefault stores the built-in document at the configured location.
// It is a maintenance action: loading never calls it, and an existing file is
// only replaced when force is set.
func (s *Service) WriteDefault(force bool) error {
	if s.path == "" {
		return fmt.Errorf("%w: %s", ErrNotWritable, s.source.Location())
	}
	if err := writeDocument(s.path, s.generate(), force); err != nil {
		return err
	}

	s.log.Info().Str("file", s.path).Bool("force", force).Msg("default configuration written")
	return nil
}

func lookup(doc *Document, section, key string) (string, error) {
	sec, ok := doc.section(section)
	if !ok {
		return "", ErrSectionNotFound
	}

	e, ok := sec.Entry(key)
	if !ok {
		return "", ErrKeyNotFound
	}

	return e.Value, nil
}

func (s *Service) warnMissing(err error, section, key string) {
	ev := s.log.Warn().Str("section", section)
	if errors.Is(err, ErrKeyNotFound) {
		ev = ev.Str("key", key)
	}
	ev.Msg(err.Error() + " in configuration, this may cause critical errors")
}
