// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colornames provides the named-color datasets consumed by the
// pigment parsers: the standard CSS names, the Crayola crayon set, the
// crowd-sourced xkcd survey, and two sizes of the community-voted
// meodai color names list.
//
// Each dataset is an immutable [Table] mapping a lowercase color name
// to a 6-hex-digit string, loaded once from an embedded JSON snapshot
// of its upstream catalog. Table contents are not validated beyond key
// normalization; a malformed value surfaces when the hex parser
// rejects it at lookup time.
package colornames

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

//go:embed css.json crayola.json xkcd.json meodai-best.json meodai.json
var datasets embed.FS

// Table is an immutable mapping from lowercase color name to a
// 6-hex-digit string value, optionally prefixed with #.
type Table struct {
	name string
	hex  map[string]string
}

// New returns a Table with the given dataset name and entries. Keys
// are lowercased; on duplicates the last entry wins.
func New(name string, entries map[string]string) *Table {
	t := &Table{name: name, hex: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.hex[strings.ToLower(k)] = v
	}
	return t
}

// Name returns the dataset label, as used in diagnostics.
func (t *Table) Name() string { return t.name }

// Hex returns the hex string for the given lowercase name.
func (t *Table) Hex(name string) (string, bool) {
	v, ok := t.hex[name]
	return v, ok
}

// Len returns the number of named colors in the table.
func (t *Table) Len() int { return len(t.hex) }

// Names returns all names in the table, sorted.
func (t *Table) Names() []string {
	ns := make([]string, 0, len(t.hex))
	for n := range t.hex {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

func load(name, file string) *Table {
	b, err := datasets.ReadFile(file)
	if err != nil {
		panic(fmt.Sprintf("colornames: reading %s: %v", file, err))
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		panic(fmt.Sprintf("colornames: decoding %s: %v", file, err))
	}
	return New(name, m)
}

// The five datasets, loaded at init and never mutated.
var (
	// CSS contains the standard CSS named colors.
	CSS = load("css", "css.json")

	// Crayola contains the Crayola crayon color names.
	Crayola = load("crayola", "crayola.json")

	// XKCD contains the names from the xkcd color survey.
	XKCD = load("xkcd", "xkcd.json")

	// MeodaiBest contains the best-of subset of the meodai
	// color names list.
	MeodaiBest = load("meodai-best", "meodai-best.json")

	// Meodai contains the full meodai color names list.
	Meodai = load("meodai", "meodai.json")
)
