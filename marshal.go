// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import "bytes"

// MarshalText serializes the document in properties format. Every
// entry occupies exactly one "key=value" line, with keys and values
// escaped so that parsing the output reproduces the document's
// entries in order. The returned error is always nil.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for _, e := range d.entries {
		buf = appendKey(buf, e.Key)
		buf = append(buf, '=')
		buf = appendValue(buf, e.Value)
		buf = append(buf, '\n')
	}
	return buf, nil
}

// UnmarshalText parses properties data with default options,
// replacing any entries in d.
func (d *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data), nil)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
