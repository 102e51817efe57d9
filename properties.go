// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"fmt"
	"io"
)

// An Entry is a single key/value property. Keys and values are fully
// decoded: escape sequences have been resolved and any remaining
// backslashes are literal.
type Entry struct {
	Key   string
	Value string
}

// A Document is an ordered collection of properties. Source order is
// preserved and duplicate keys are retained. The zero value is an
// empty document. Documents can be read by multiple concurrent
// goroutines.
type Document struct {
	entries []Entry
}

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// NormalizeKey is called on each decoded key to apply text
	// transformations. This can be used to make keys
	// case-insensitive, for instance. If nil, no transformations are
	// made.
	NormalizeKey func(key string) string
}

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// MalformedUnicodeEscape indicates a "\u" escape not followed by
	// four hexadecimal digits.
	MalformedUnicodeEscape ErrorKind = 1 + iota
	// DanglingEscape indicates a backslash at the end of decodable
	// text with no character after it to escape.
	DanglingEscape
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedUnicodeEscape:
		return `malformed \u escape`
	case DanglingEscape:
		return "dangling escape"
	default:
		return fmt.Sprintf("error(%d)", int(k))
	}
}

// A ParseError reports a malformed escape sequence and where it was
// found. Line and Col are 1-based and identify the physical source
// line, not the continuation-joined logical line.
type ParseError struct {
	Kind ErrorKind
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse properties: line %d, col %d: %v", e.Line, e.Col, e.Kind)
}

// New returns a document containing the given entries in order.
func New(entries ...Entry) *Document {
	d := new(Document)
	d.entries = append(d.entries, entries...)
	return d
}

// Parse parses a properties file. Nil options are treated identically
// as passing the zero value.
//
// Parsing is all-or-nothing: the first malformed escape aborts the
// parse with a *ParseError and no document is returned. Read errors
// from r are reported wrapped, with the line reached.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader, opts *ParseOptions) (*Document, error) {
	d := new(Document)
	sc := newLineScanner(r)
	for {
		ll, ok := sc.next()
		if !ok {
			break
		}
		if ll.text == "" {
			// A degenerate continuation (a lone backslash joined to
			// nothing) yields no entry.
			continue
		}
		e, err := splitEntry(&ll)
		if err != nil {
			return nil, err
		}
		if opts != nil && opts.NormalizeKey != nil {
			e.Key = opts.NormalizeKey(e.Key)
		}
		d.entries = append(d.entries, e)
	}
	if err := sc.err(); err != nil {
		// The failing line was never fully scanned, so it is not
		// counted in lineno yet.
		return nil, fmt.Errorf("parse properties: line %d: %w", sc.lineno+1, err)
	}
	return d, nil
}

// splitEntry splits a logical line at its separator and decodes the
// two halves.
func splitEntry(ll *logicalLine) (Entry, error) {
	rawKey, rawValue, voff := splitLine(ll.text)
	key, e := decode(rawKey)
	if e != nil {
		return Entry{}, e.parseError(ll.position(e.off))
	}
	value, e := decode(rawValue)
	if e != nil {
		return Entry{}, e.parseError(ll.position(voff + e.off))
	}
	return Entry{Key: key, Value: value}, nil
}

// splitLine finds the first unescaped '=', ':', or whitespace run in
// a logical line and splits around it. The returned halves are still
// escaped; voff is the byte offset of rawValue in text. A whitespace
// separator absorbs one immediately following '=' or ':'; leading
// whitespace of the value is consumed, trailing whitespace is kept. A
// line with no separator is all key.
func splitLine(text string) (rawKey, rawValue string, voff int) {
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '\\':
			i++ // never split on an escaped character
		case c == '=' || c == ':':
			v := i + 1
			for v < len(text) && isLineSpace(text[v]) {
				v++
			}
			return text[:i], text[v:], v
		case isLineSpace(c):
			v := i + 1
			for v < len(text) && isLineSpace(text[v]) {
				v++
			}
			if v < len(text) && (text[v] == '=' || text[v] == ':') {
				v++
				for v < len(text) && isLineSpace(text[v]) {
					v++
				}
			}
			return text[:i], text[v:], v
		}
	}
	return text, "", len(text)
}

// Get returns the value of the last property with the given key. If
// the key is not present, Get returns the empty string.
func (d *Document) Get(key string) string {
	v, _ := d.get(key)
	return v
}

func (d *Document) get(key string) (_ string, ok bool) {
	if d == nil {
		return "", false
	}
	for i := len(d.entries) - 1; i >= 0; i-- {
		if d.entries[i].Key == key {
			return d.entries[i].Value, true
		}
	}
	return "", false
}

// Find returns the values of every property with the given key, in
// source order.
func (d *Document) Find(key string) []string {
	if d == nil {
		return nil
	}
	var values []string
	for _, e := range d.entries {
		if e.Key == key {
			values = append(values, e.Value)
		}
	}
	return values
}

// Len returns the number of entries, counting duplicates.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns a copy of the document's entries in source order.
func (d *Document) Entries() []Entry {
	if d == nil {
		return nil
	}
	entries := make([]Entry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// Map returns the document's properties as a map. For duplicate keys
// the last value wins.
func (d *Document) Map() map[string]string {
	if d == nil {
		return nil
	}
	m := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Set sets the property with the given key to the given value.
//
// If the document already has at least one property with the key,
// then the last one is set to value and any defined earlier are
// removed. Otherwise, the property is appended to the end of the
// document.
func (d *Document) Set(key, value string) {
	wrote := false
	for i := len(d.entries) - 1; i >= 0; i-- {
		if d.entries[i].Key != key {
			continue
		}
		if wrote {
			// Delete any previous properties with the same key.
			copy(d.entries[i:], d.entries[i+1:])
			// Zero out truncated element for garbage collection.
			d.entries[len(d.entries)-1] = Entry{}
			d.entries = d.entries[:len(d.entries)-1]
		} else {
			d.entries[i].Value = value
			wrote = true
		}
	}
	if !wrote {
		d.entries = append(d.entries, Entry{Key: key, Value: value})
	}
}

// Add appends properties with the given key, one per value, to the
// end of the document.
func (d *Document) Add(key string, values []string) {
	for _, v := range values {
		d.entries = append(d.entries, Entry{Key: key, Value: v})
	}
}

// Delete removes every property with the given key.
func (d *Document) Delete(key string) {
	n := 0
	for i := range d.entries {
		if d.entries[i].Key != key {
			d.entries[n] = d.entries[i]
			n++
		}
	}
	for i := n; i < len(d.entries); i++ {
		// Zero out for garbage collection.
		d.entries[i] = Entry{}
	}
	d.entries = d.entries[:n]
}
