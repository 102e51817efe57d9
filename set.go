// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"fmt"
	"os"
)

// FileSet is a list of documents to obtain configuration from in
// descending order of precedence.
type FileSet []*Document

// ParseFiles parses the files at the given paths and returns a
// FileSet. If the returned error is nil, the returned set's length
// will be the same as the number of arguments. ParseFiles will stop
// on the first error, but ignores missing file errors, instead
// filling the corresponding element of the set with a nil *Document.
func ParseFiles(opts *ParseOptions, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse properties files: %w", err)
		}
		parsed, err := Parse(f, opts)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return fset, fmt.Errorf("parse properties files: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// Get returns the value of the last property with the given key in
// the highest-precedence document that has one. If no document has
// the key, Get returns the empty string.
func (fset FileSet) Get(key string) string {
	for _, d := range fset {
		if v, ok := d.get(key); ok {
			return v
		}
	}
	return ""
}

// Find returns all the values associated with the given key across
// the set, in ascending order of precedence.
func (fset FileSet) Find(key string) []string {
	var values []string
	for i := len(fset) - 1; i >= 0; i-- {
		values = append(values, fset[i].Find(key)...)
	}
	return values
}

// Map returns the merged properties of the set as a map. Values from
// higher-precedence documents win; within a document the last value
// wins.
func (fset FileSet) Map() map[string]string {
	merged := make(map[string]string)
	for i := len(fset) - 1; i >= 0; i-- {
		for k, v := range fset[i].Map() {
			merged[k] = v
		}
	}
	return merged
}
