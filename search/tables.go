// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

type runeRange struct {
	lo, hi rune
}

// spacedRanges lists the blocks of scripts that separate words with spaces.
// Characters outside these blocks are word-breaking: each forms a token of its
// own and may directly follow or precede another token in the text.
var spacedRanges = []runeRange{
	{0x0000, 0x00FF}, // Basic Latin, Latin-1 Supplement
	{0x0400, 0x04FF}, // Cyrillic
	{0x0500, 0x052F}, // Cyrillic Supplement
	{0x0600, 0x06FF}, // Arabic
	{0x2000, 0x206F}, // General Punctuation
	{0x2113, 0x2113}, // SCRIPT SMALL L
	{0x2DE0, 0x2DFF}, // Cyrillic Extended-A
	{0x3000, 0x303F}, // CJK Symbols and Punctuation
	{0xA640, 0xA69F}, // Cyrillic Extended-B
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

// gapRunes may separate the tokens of a match.
var gapRunes = []rune{'\n', '\r', ' ', '\u00a0'}

var (
	spaced = newTable(spacedRanges)
	gap    = rangetable.New(gapRunes...)

	// wordFlank holds the characters that may not border a whole-word match.
	wordFlank = rangetable.Merge(unicode.Latin, newTable([]runeRange{{'0', '9'}}))
)

func newTable(rs []runeRange) *unicode.RangeTable {
	tabs := make([]*unicode.RangeTable, len(rs))
	for i, r := range rs {
		tabs[i] = &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(r.lo), Hi: uint16(r.hi), Stride: 1}},
		}
	}
	return rangetable.Merge(tabs...)
}

// rightSingleQuote does not break a word when it follows another character of
// the word, as in "don’t".
const rightSingleQuote = '\u2019'

// IsWordBreaking reports whether r belongs to a script that does not separate
// words with spaces, such as Han, Hiragana or Hangul.
func IsWordBreaking(r rune) bool {
	return !unicode.Is(spaced, r)
}

// IsGapSpace reports whether r may appear between the tokens of a match: line
// feed, carriage return, space or no-break space.
func IsGapSpace(r rune) bool {
	return unicode.Is(gap, r)
}

func isWordFlank(r rune) bool {
	return unicode.Is(wordFlank, r)
}
