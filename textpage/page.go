// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpage provides the flattened text of a document page together
// with the mapping between positions in that text and per-character document
// indices.
//
// A page is a sequence of characters as produced by a text extractor. Most
// characters carry a Unicode value and appear in the page text; characters
// without a Unicode mapping keep their document index but are left out of the
// text. Text indices and character indices therefore diverge after the first
// unmapped character, and the Page translates between the two.
//
// All indices count code points, not bytes.
package textpage

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Kind classifies a character of a page.
type Kind int

const (
	// Normal characters were drawn on the page.
	Normal Kind = iota

	// Generated characters were synthesised by the extractor, such as the
	// space between two text runs or a line break.
	Generated

	// Hyphen marks a hyphen at the end of a line.
	Hyphen

	// NotUnicode characters have no Unicode value. They occupy a document
	// index but are not part of the page text.
	NotUnicode
)

// Char is a single character of a page.
type Char struct {
	Rune rune
	Kind Kind
}

// A segment maps the text indices [text, text+n) onto the character indices
// [char, char+n).
type segment struct {
	text, char, n int
}

// A Page holds the characters of a page and its text. It is immutable and safe
// for concurrent use.
type Page struct {
	chars []Char
	text  string
	nText int
	segs  []segment
}

// New returns a Page for the given characters. The slice is copied.
func New(chars []Char) *Page {
	p := &Page{chars: append([]Char(nil), chars...)}
	var b strings.Builder
	for i, c := range p.chars {
		if c.Kind == NotUnicode {
			continue
		}
		if k := len(p.segs) - 1; k >= 0 && p.segs[k].char+p.segs[k].n == i {
			p.segs[k].n++
		} else {
			p.segs = append(p.segs, segment{text: p.nText, char: i, n: 1})
		}
		b.WriteRune(c.Rune)
		p.nText++
	}
	p.text = b.String()
	return p
}

// FromString returns a Page in which every rune of s is a Normal character.
func FromString(s string) *Page {
	chars := make([]Char, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		chars = append(chars, Char{Rune: r})
	}
	return New(chars)
}

// Text returns the text of the page.
func (p *Page) Text() string {
	return p.text
}

// Len reports the number of code points in the page text.
func (p *Page) Len() int {
	return p.nText
}

// CountChars reports the number of characters of the page, including those
// that are not part of the text.
func (p *Page) CountChars() int {
	return len(p.chars)
}

// Char returns the character with document index i.
func (p *Page) Char(i int) (c Char, ok bool) {
	if i < 0 || i >= len(p.chars) {
		return Char{}, false
	}
	return p.chars[i], true
}

// CharIndex returns the document index of the character at text index i.
func (p *Page) CharIndex(i int) (index int, ok bool) {
	k := sort.Search(len(p.segs), func(k int) bool {
		return p.segs[k].text+p.segs[k].n > i
	})
	if k == len(p.segs) || i < p.segs[k].text {
		return 0, false
	}
	s := p.segs[k]
	return s.char + i - s.text, true
}

// TextIndex returns the text index of the character with document index i.
// It reports false for characters that are not part of the text.
func (p *Page) TextIndex(i int) (index int, ok bool) {
	k := sort.Search(len(p.segs), func(k int) bool {
		return p.segs[k].char+p.segs[k].n > i
	})
	if k == len(p.segs) || i < p.segs[k].char {
		return 0, false
	}
	s := p.segs[k]
	return s.text + i - s.char, true
}

// A Builder assembles the characters of a page in reading order.
// The zero value is ready to use.
type Builder struct {
	chars []Char
}

// WriteString appends the runes of s as Normal characters.
func (b *Builder) WriteString(s string) {
	for _, r := range s {
		b.chars = append(b.chars, Char{Rune: r})
	}
}

// WriteGenerated appends a character synthesised by the extractor.
func (b *Builder) WriteGenerated(r rune) {
	b.chars = append(b.chars, Char{Rune: r, Kind: Generated})
}

// WriteHyphen appends a hyphen that ends a line.
func (b *Builder) WriteHyphen() {
	b.chars = append(b.chars, Char{Rune: '-', Kind: Hyphen})
}

// WriteUnmapped appends n characters without a Unicode value.
func (b *Builder) WriteUnmapped(n int) {
	for ; n > 0; n-- {
		b.chars = append(b.chars, Char{Kind: NotUnicode})
	}
}

// Page returns a Page holding the characters written so far.
func (b *Builder) Page() *Page {
	return New(b.chars)
}
