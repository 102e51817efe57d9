// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Decode resolves backslash escape sequences in a key or value
// fragment. It is exposed so callers holding raw (still escaped)
// properties text can decode it without a full parse. Errors are
// reported as a *ParseError positioned within s, treating s as a
// single line.
func Decode(s string) (string, error) {
	out, e := decode(s)
	if e != nil {
		return "", e.parseError(1, e.off+1)
	}
	return out, nil
}

// An escapeError is a decode failure at a byte offset within the
// decoded fragment. The caller maps the offset to a source position.
type escapeError struct {
	kind ErrorKind
	off  int
}

func (e *escapeError) parseError(line, col int) *ParseError {
	return &ParseError{Kind: e.kind, Line: line, Col: col}
}

// decode resolves escape sequences in s. On failure it reports the
// byte offset of the offending backslash.
func decode(s string) (string, *escapeError) {
	i := strings.IndexByte(s, '\\')
	if i < 0 {
		return s, nil
	}
	sb := new(strings.Builder)
	sb.Grow(len(s))
	sb.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", &escapeError{kind: DanglingEscape, off: i}
		}
		switch s[i+1] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case 'u':
			r, ok := decodeUnicodeEscape(s[i+2:])
			if !ok {
				return "", &escapeError{kind: MalformedUnicodeEscape, off: i}
			}
			size := 6
			// A UTF-16 surrogate pair written as two consecutive
			// escapes is one code point. A surrogate half on its own
			// becomes U+FFFD, since Go strings cannot hold it.
			if utf16.IsSurrogate(r) && i+8 <= len(s) && s[i+6] == '\\' && s[i+7] == 'u' {
				if r2, ok := decodeUnicodeEscape(s[i+8:]); ok {
					if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
						r = c
						size = 12
					}
				}
			}
			sb.WriteRune(r)
			i += size
			continue
		default:
			// The backslash is dropped and the character kept. This
			// covers "\\" as well as embedded separators and comment
			// characters like "\:", "\=", "\ ", and "\#".
			r, size := utf8.DecodeRuneInString(s[i+1:])
			sb.WriteRune(r)
			i += 1 + size
			continue
		}
		i += 2
	}
	return sb.String(), nil
}

// decodeUnicodeEscape reads the four hex digits following "\u".
func decodeUnicodeEscape(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		if !isHexDigit(s[i]) {
			return 0, false
		}
		r = r<<4 | rune(fromHex(s[i]))
	}
	return r, true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

func fromHex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 0xa
	default:
		return c - 'A' + 0xa
	}
}

const del = '\x7f'

const hexDigits = "0123456789abcdef"

func appendUnicodeEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf],
		hexDigits[r>>4&0xf], hexDigits[r&0xf])
}

// appendKey escapes key so that re-parsing the output line recovers
// it exactly: backslashes and control characters are escaped, as are
// separator characters, and a leading '#' or '!' that would otherwise
// turn the line into a comment. Non-ASCII text is emitted as literal
// UTF-8.
func appendKey(dst []byte, key string) []byte {
	for i := 0; i < len(key); i++ {
		switch c := key[i]; {
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '=' || c == ':' || c == ' ':
			dst = append(dst, '\\', c)
		case (c == '#' || c == '!') && i == 0:
			dst = append(dst, '\\', c)
		case c < ' ' || c == del:
			dst = appendUnicodeEscape(dst, rune(c))
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// appendValue escapes value for emission after the separator. Unlike
// keys, embedded separators need no escaping; only a leading space
// would be lost to separator trimming on re-parse.
func appendValue(dst []byte, value string) []byte {
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == ' ' && i == 0:
			dst = append(dst, '\\', ' ')
		case c < ' ' || c == del:
			dst = appendUnicodeEscape(dst, rune(c))
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
