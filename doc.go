// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package properties provides a parser and serializer for the Java
.properties file format.

A parsed document is an ordered list of key/value pairs: source order
is preserved and duplicate keys are retained, so callers can apply
whatever duplicate-key policy they need. When retrieving a property in
a single-value context (like *Document.Get), only the last value is
used.

Syntax

A properties file is Unicode text. Each property is a key and value on
one logical line, separated by the first unescaped equals sign ('='),
colon (':'), or run of whitespace:

	key=value
	key: value
	key value

A whitespace run followed by '=' or ':' counts as a single separator,
so "key = value" splits the same as "key=value". A line with no
separator is a key with an empty value. Whitespace at the start of a
line and around the separator is ignored; whitespace at the end of a
value is kept.

If the first non-whitespace character of a line is '#' or '!', the
line is a comment and is discarded. Blank lines are skipped. Comments
are not preserved through a parse/serialize round trip.

A logical line may span several physical lines: a line ending in an
unescaped backslash continues onto the next physical line, whose
leading whitespace is trimmed before joining.

Keys and values may use backslash escape sequences:

	\n      U+000A line feed or newline
	\r      U+000D carriage return
	\t      U+0009 horizontal tab
	\f      U+000C form feed
	\\      U+005C backslash
	\uXXXX  Unicode escape, exactly four hex digits
	\c      any other character c, verbatim

Escaping a separator or comment character ("\:", "\=", "\ ", "\#")
embeds it literally in a key or value.

A UTF-16 surrogate pair written as two consecutive Unicode escapes
decodes to the single code point it encodes, as in Java. A surrogate
half on its own decodes to U+FFFD.
*/
package properties
