// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const indent = "  "

// decodeDocument parses a persisted configuration. The root element may have
// any name; its children are sections and their children are entries. Text
// nodes made only of whitespace are dropped, other text is kept verbatim.
// Comments are skipped.
func decodeDocument(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		b          *DocumentBuilder
		sec        *SectionBuilder
		depth      int
		rootClosed bool
		key        string
		entryText  strings.Builder
		secText    strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, ErrMultipleRoots
			}
			depth++
			switch depth {
			case 1:
				b = newLenientBuilder(t.Name.Local)
			case 2:
				sec = b.Section(t.Name.Local, "")
				secText.Reset()
			case 3:
				key = t.Name.Local
				entryText.Reset()
			}

		case xml.EndElement:
			switch depth {
			case 3:
				sec.Add(key, entryText.String())
			case 2:
				sec.setText(secText.String())
				sec = nil
			case 1:
				rootClosed = true
			}
			depth--

		case xml.CharData:
			if isBlank(t) {
				continue
			}
			switch {
			case depth >= 3:
				entryText.Write(t)
			case depth == 2:
				secText.Write(t)
			case depth == 0:
				return nil, fmt.Errorf("%w: text outside of root element", ErrMalformedDocument)
			}
		}
	}

	if b == nil || !rootClosed {
		return nil, ErrNoRoot
	}

	return b.Build(), nil
}

// encodeDocument writes doc as indented UTF-8 XML with annotations rendered
// as comments: one before the root, one before each section and one in the
// form "<Key>: <annotation>" before each annotated entry. A whitespace-only
// value is written as is but reads back as "".
func encodeDocument(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(xml.Header)
	if err := writeComment(bw, "", doc.comment); err != nil {
		return err
	}
	fmt.Fprintf(bw, "<%s>\n", doc.root)

	for _, sec := range doc.sections {
		if err := writeComment(bw, indent, sec.Annotation); err != nil {
			return err
		}

		fmt.Fprintf(bw, "%s<%s>", indent, sec.Name)
		if sec.Text != "" {
			if err := xml.EscapeText(bw, []byte(sec.Text)); err != nil {
				return err
			}
		}
		if len(sec.Entries) > 0 {
			bw.WriteString("\n")
			for _, e := range sec.Entries {
				if e.Annotation != "" {
					if err := writeComment(bw, indent+indent, e.Key+": "+e.Annotation); err != nil {
						return err
					}
				}
				fmt.Fprintf(bw, "%s%s<%s>", indent, indent, e.Key)
				if err := xml.EscapeText(bw, []byte(e.Value)); err != nil {
					return err
				}
				fmt.Fprintf(bw, "</%s>\n", e.Key)
			}
			bw.WriteString(indent)
		}
		fmt.Fprintf(bw, "</%s>\n", sec.Name)
	}

	fmt.Fprintf(bw, "</%s>\n", doc.root)
	return bw.Flush()
}

func writeComment(bw *bufio.Writer, prefix, text string) error {
	if text == "" {
		return nil
	}
	if strings.Contains(text, "--") || strings.HasSuffix(text, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidComment, text)
	}

	bw.WriteString(prefix)
	bw.WriteString("<!--")
	bw.WriteString(text)
	bw.WriteString("-->\n")
	return nil
}

func isBlank(b []byte) bool {
	return len(bytes.TrimSpace(b)) == 0
}
