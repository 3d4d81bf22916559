// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// A folder lower-cases text one rune at a time. Each rune maps to exactly one
// rune, so positions in folded text equal positions in the original text.
// A rune whose lower-case form has more than one rune is left unchanged.
type folder struct {
	lower cases.Caser
	t     transform.Transformer
	cache map[rune]rune
}

func newFolder(t language.Tag) *folder {
	f := &folder{
		lower: cases.Lower(t),
		cache: make(map[rune]rune),
	}
	f.t = runes.Map(f.foldRune)
	return f
}

func (f *folder) foldRune(r rune) rune {
	if m, ok := f.cache[r]; ok {
		return m
	}
	m := r
	if s := f.lower.String(string(r)); utf8.RuneCountInString(s) == 1 {
		m, _ = utf8.DecodeRuneInString(s)
	}
	f.cache[r] = m
	return m
}

// String returns the folded form of s.
func (f *folder) String(s string) (string, error) {
	res, _, err := transform.String(f.t, s)
	if err != nil {
		return "", fmt.Errorf("search: case folding: %w", err)
	}
	return res, nil
}
