// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		s        string
		want     string
		wantKind ErrorKind
		wantCol  int
	}{
		{s: "", want: ""},
		{s: "plain", want: "plain"},
		{s: `a\:b`, want: "a:b"},
		{s: `a\=b`, want: "a=b"},
		{s: `a\ b`, want: "a b"},
		{s: `\#\!`, want: "#!"},
		{s: `\t\n\r\f`, want: "\t\n\r\f"},
		{s: `\\`, want: `\`},
		{s: `\\\\`, want: `\\`},
		{s: `\q`, want: "q"},
		{s: `\é`, want: "é"},
		{s: `A`, want: "A"},
		{s: `é`, want: "é"},
		{s: `é`, want: "é"},
		{s: `aBc`, want: "aBc"},
		{s: `☃`, want: "☃"},
		{s: `😀`, want: "😀"},
		{s: `\ud83d`, want: "�"},
		{s: `\ud83dx`, want: "�x"},
		{s: `\ude00\ud83dy`, want: "��y"},
		{s: `\u004`, wantKind: MalformedUnicodeEscape, wantCol: 1},
		{s: `\uXYZW`, wantKind: MalformedUnicodeEscape, wantCol: 1},
		{s: `ab\u00`, wantKind: MalformedUnicodeEscape, wantCol: 3},
		{s: `abc\`, wantKind: DanglingEscape, wantCol: 4},
		{s: `\`, wantKind: DanglingEscape, wantCol: 1},
	}
	for _, test := range tests {
		got, err := Decode(test.s)
		if test.wantKind == 0 {
			if err != nil {
				t.Errorf("Decode(%q): %v", test.s, err)
				continue
			}
			if got != test.want {
				t.Errorf("Decode(%q) = %q; want %q", test.s, got, test.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("Decode(%q) = %q; want %v error", test.s, got, test.wantKind)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Decode(%q) error %v (type %T) is not a *ParseError", test.s, err, err)
			continue
		}
		if perr.Kind != test.wantKind || perr.Col != test.wantCol {
			t.Errorf("Decode(%q) error = %v; want %v at col %d", test.s, perr, test.wantKind, test.wantCol)
		}
	}
}
