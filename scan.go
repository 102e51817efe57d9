// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// lineSpace is the set of whitespace characters significant inside a
// line: space, horizontal tab, and form feed. Line breaks are handled
// separately by scanLines.
const lineSpace = " \t\f"

func isLineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// trailingBackslashes counts the backslashes at the end of s. An odd
// count means the final backslash is itself unescaped.
func trailingBackslashes(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	return n
}

// scanLines is a bufio.SplitFunc splitting on "\r\n", "\r", or "\n".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if data[i] == '\n' {
		return i + 1, data[:i], nil
	}
	if i+1 < len(data) {
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return i + 1, data[:i], nil
	}
	// A "\r" at the end of the buffer may be half of a "\r\n".
	return 0, nil, nil
}

// A span records where a contiguous piece of a logical line came from
// in the source text.
type span struct {
	start int // byte offset of the piece in logicalLine.text
	line  int // 1-based physical line number
	col   int // 1-based column of the piece's first byte
}

// A logicalLine is a candidate key/value line after continuation
// joining, with enough bookkeeping to map an offset in the joined
// text back to a physical line and column.
type logicalLine struct {
	text  string
	spans []span
}

// position maps a byte offset in the joined text to the physical line
// and column it came from. Offsets at or past the end of the text map
// to one past the final span's last byte.
func (ll *logicalLine) position(off int) (line, col int) {
	s := ll.spans[0]
	for _, next := range ll.spans[1:] {
		if next.start > off {
			break
		}
		s = next
	}
	return s.line, s.col + (off - s.start)
}

// A lineScanner yields logical lines: physical lines with blanks and
// comments skipped, leading whitespace trimmed, and continuations
// joined. It advances strictly forward and cannot seek.
type lineScanner struct {
	s      *bufio.Scanner
	lineno int
}

// maxLineLen caps a single physical line. The bufio.Scanner default
// (64 KiB) is too small for generated properties files with long
// values.
const maxLineLen = 1 << 30

func newLineScanner(r io.Reader) *lineScanner {
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineLen)
	s.Split(scanLines)
	return &lineScanner{s: s}
}

// next returns the next logical line. ok is false once the input is
// exhausted; callers must then check err for underlying read errors.
func (sc *lineScanner) next() (ll logicalLine, ok bool) {
	for sc.s.Scan() {
		sc.lineno++
		raw := sc.s.Text()
		text := strings.TrimLeft(raw, lineSpace)
		if text == "" {
			continue
		}
		if text[0] == '#' || text[0] == '!' {
			// Comment lines cannot be continued.
			continue
		}
		ll = logicalLine{
			text:  text,
			spans: []span{{start: 0, line: sc.lineno, col: len(raw) - len(text) + 1}},
		}
		// An odd number of trailing backslashes means the final
		// backslash escapes the line break: drop it and join the next
		// physical line, minus its leading whitespace. Input ending on
		// a dangling continuation resolves against an empty line.
		for trailingBackslashes(ll.text)%2 == 1 {
			ll.text = ll.text[:len(ll.text)-1]
			if !sc.s.Scan() {
				break
			}
			sc.lineno++
			raw = sc.s.Text()
			cont := strings.TrimLeft(raw, lineSpace)
			if cont == "" {
				break
			}
			ll.spans = append(ll.spans, span{
				start: len(ll.text),
				line:  sc.lineno,
				col:   len(raw) - len(cont) + 1,
			})
			ll.text += cont
		}
		return ll, true
	}
	return logicalLine{}, false
}

func (sc *lineScanner) err() error {
	return sc.s.Err()
}
