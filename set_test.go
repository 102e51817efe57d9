// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNilFileSet(t *testing.T) {
	fset := (FileSet)(nil)
	if got := fset.Get("foo"); got != "" {
		t.Errorf("Get(...) = %q; want empty", got)
	}
	if got := fset.Find("foo"); len(got) > 0 {
		t.Errorf("Find(...) = %q; want empty", got)
	}
	if got := fset.Map(); len(got) > 0 {
		t.Errorf("Map() = %v; want empty", got)
	}
}

func TestFileSetAccess(t *testing.T) {
	tests := []struct {
		name     string
		sources  []string
		key      string
		wantGet  string
		wantFind []string
	}{
		{
			name:     "ExistsInFirst",
			sources:  []string{"FOO=bar\n", "BAZ=quux\n"},
			key:      "FOO",
			wantGet:  "bar",
			wantFind: []string{"bar"},
		},
		{
			name:     "ExistsInSecond",
			sources:  []string{"FOO=bar\n", "BAZ=quux\n"},
			key:      "BAZ",
			wantGet:  "quux",
			wantFind: []string{"quux"},
		},
		{
			name:     "DoesNotExist",
			sources:  []string{"FOO=bar\n", "BAZ=quux\n"},
			key:      "bork",
			wantGet:  "",
			wantFind: []string{},
		},
		{
			name:     "FirstFileWins",
			sources:  []string{"FOO=bar\n", "FOO=baz\n"},
			key:      "FOO",
			wantGet:  "bar",
			wantFind: []string{"baz", "bar"},
		},
		{
			name:     "NilDocumentSkipped",
			sources:  []string{"", "FOO=bar\n"},
			key:      "FOO",
			wantGet:  "bar",
			wantFind: []string{"bar"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var fset FileSet
			for _, src := range test.sources {
				if src == "" {
					fset = append(fset, nil)
					continue
				}
				d, err := Parse(strings.NewReader(src), nil)
				if err != nil {
					t.Fatal(err)
				}
				fset = append(fset, d)
			}
			if got := fset.Get(test.key); got != test.wantGet {
				t.Errorf("fset.Get(%q) = %q; want %q", test.key, got, test.wantGet)
			}
			got := fset.Find(test.key)
			if diff := cmp.Diff(test.wantFind, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("fset.Find(%q) (-want +got):\n%s", test.key, diff)
			}
		})
	}
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := ioutil.WriteFile(path, []byte(content), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}
	local := writeFile("local.properties", "host=localhost\ndebug=true\n")
	defaults := writeFile("default.properties", "host=example.com\nport=8080\n")
	missing := filepath.Join(dir, "missing.properties")

	fset, err := ParseFiles(nil, local, missing, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if len(fset) != 3 {
		t.Fatalf("len(fset) = %d; want 3", len(fset))
	}
	if fset[1] != nil {
		t.Errorf("fset[1] = %v; want nil for missing file", fset[1])
	}
	if got, want := fset.Get("host"), "localhost"; got != want {
		t.Errorf("fset.Get(\"host\") = %q; want %q", got, want)
	}
	if got, want := fset.Get("port"), "8080"; got != want {
		t.Errorf("fset.Get(\"port\") = %q; want %q", got, want)
	}
	wantMap := map[string]string{"host": "localhost", "debug": "true", "port": "8080"}
	if diff := cmp.Diff(wantMap, fset.Map()); diff != "" {
		t.Errorf("fset.Map() (-want +got):\n%s", diff)
	}
}

func TestParseFilesError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.properties")
	if err := ioutil.WriteFile(path, []byte(`k=\u12Z`+"\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFiles(nil, path); err == nil {
		t.Error("ParseFiles did not return error for malformed file")
	} else if !strings.Contains(err.Error(), path) {
		t.Errorf("ParseFiles error %q does not mention %q", err, path)
	}
}
