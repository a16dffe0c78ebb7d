// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is a single named configuration value. Annotation documents the
// entry for human editors and is never read back from a persisted file.
type Entry struct {
	Key        string
	Value      string
	Annotation string
}

// Section is a named group of entries. Text holds character data placed
// directly inside the section element, if any. Sections obtained from a
// [Document] are copies; changing them does not affect the document.
type Section struct {
	Name       string
	Annotation string
	Text       string
	Entries    []Entry

	index map[string]int
}

// Entry returns the first entry named key.
func (s Section) Entry(key string) (Entry, bool) {
	i, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return s.Entries[i], true
}

// InnerText returns the section's direct text, or the concatenated values of
// its entries when the section has no direct text.
func (s Section) InnerText() string {
	if s.Text != "" {
		return s.Text
	}

	var b strings.Builder
	for _, e := range s.Entries {
		b.WriteString(e.Value)
	}
	return b.String()
}

func (s Section) clone() Section {
	s.Entries = slices.Clone(s.Entries)
	return s
}

// Document is a frozen configuration tree: one root holding an ordered list
// of sections. Its content is only reachable through copies, so a Document
// may be shared between goroutines once built.
type Document struct {
	root     string
	comment  string
	sections []Section

	index map[string]int
}

// Root returns the name of the root element.
func (d *Document) Root() string {
	if d == nil {
		return ""
	}
	return d.root
}

// Comment returns the header comment written before the root element.
func (d *Document) Comment() string {
	if d == nil {
		return ""
	}
	return d.comment
}

// Section returns a copy of the first section named name.
func (d *Document) Section(name string) (Section, bool) {
	sec, ok := d.section(name)
	if !ok {
		return Section{}, false
	}
	return sec.clone(), true
}

// Sections returns a copy of all sections in document order.
func (d *Document) Sections() []Section {
	if d == nil {
		return nil
	}
	out := make([]Section, len(d.sections))
	for i, sec := range d.sections {
		out[i] = sec.clone()
	}
	return out
}

// Len returns the number of sections.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sections)
}

// section returns the stored section without copying. Callers must not
// modify it.
func (d *Document) section(name string) (*Section, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return &d.sections[i], true
}

// DocumentBuilder assembles a [Document]. In strict mode (used by the
// built-in catalog) a duplicate section or key panics; in lenient mode
// (used by the parser) duplicates are kept and lookups resolve to the
// first occurrence.
type DocumentBuilder struct {
	doc    *Document
	strict bool
	built  bool
}

// NewDocumentBuilder returns a strict builder for a document rooted at root.
func NewDocumentBuilder(root, comment string) *DocumentBuilder {
	return &DocumentBuilder{
		doc:    &Document{root: root, comment: comment, index: make(map[string]int)},
		strict: true,
	}
}

func newLenientBuilder(root string) *DocumentBuilder {
	b := NewDocumentBuilder(root, "")
	b.strict = false
	return b
}

// SectionBuilder adds entries to one section of a [DocumentBuilder].
type SectionBuilder struct {
	parent *DocumentBuilder
	pos    int
}

// Section appends a new section and returns a builder for its entries.
func (b *DocumentBuilder) Section(name, annotation string) *SectionBuilder {
	b.mustBeOpen()
	if _, dup := b.doc.index[name]; dup {
		if b.strict {
			panic(fmt.Sprintf("settings: duplicate section %q", name))
		}
	} else {
		b.doc.index[name] = len(b.doc.sections)
	}

	b.doc.sections = append(b.doc.sections, Section{
		Name:       name,
		Annotation: annotation,
		index:      make(map[string]int),
	})
	return &SectionBuilder{parent: b, pos: len(b.doc.sections) - 1}
}

// Add appends an entry without annotation. Use it for display strings.
func (s *SectionBuilder) Add(key, value string) *SectionBuilder {
	return s.Annotated(key, value, "")
}

// Annotated appends an entry with an annotation describing accepted values.
func (s *SectionBuilder) Annotated(key, value, annotation string) *SectionBuilder {
	s.parent.mustBeOpen()
	sec := &s.parent.doc.sections[s.pos]
	if _, dup := sec.index[key]; dup {
		if s.parent.strict {
			panic(fmt.Sprintf("settings: duplicate key %q in section %q", key, sec.Name))
		}
	} else {
		sec.index[key] = len(sec.Entries)
	}

	sec.Entries = append(sec.Entries, Entry{Key: key, Value: value, Annotation: annotation})
	return s
}

func (s *SectionBuilder) setText(text string) {
	s.parent.doc.sections[s.pos].Text = text
}

// Build freezes and returns the document. The builder is unusable afterwards.
func (b *DocumentBuilder) Build() *Document {
	b.mustBeOpen()
	b.built = true
	return b.doc
}

func (b *DocumentBuilder) mustBeOpen() {
	if b.built {
		panic("settings: builder used after Build")
	}
}
