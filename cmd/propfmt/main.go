// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// propfmt rewrites Java .properties files in a canonical form: one
// "key=value" line per property, comments and blank lines removed,
// escaping normalized. With no arguments it filters stdin to stdout.
package main

import (
	"context"
	"flag"
	"io"
	"io/ioutil"
	"os"

	"github.com/yourbase/properties"
	"zombiezen.com/go/log"
)

func main() {
	write := flag.Bool("w", false, "write result back to the source file instead of stdout")
	flag.Parse()
	ctx := context.Background()

	ok := true
	if flag.NArg() == 0 {
		if err := format(os.Stdin, os.Stdout); err != nil {
			log.Errorf(ctx, "<stdin>: %v", err)
			ok = false
		}
	}
	for _, path := range flag.Args() {
		if err := formatFile(path, *write); err != nil {
			log.Errorf(ctx, "%s: %v", path, err)
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

func format(r io.Reader, w io.Writer) error {
	doc, err := properties.Parse(r, nil)
	if err != nil {
		return err
	}
	out, _ := doc.MarshalText()
	_, err = w.Write(out)
	return err
}

func formatFile(path string, write bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	doc, err := properties.Parse(f, nil)
	f.Close() // Close errors irrelevant; the file is only read.
	if err != nil {
		return err
	}
	out, _ := doc.MarshalText()
	if !write {
		_, err := os.Stdout.Write(out)
		return err
	}
	return ioutil.WriteFile(path, out, 0666)
}
