// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"slices"
	"strings"
)

// A Token is a unit of a query: a word fragment, a single word-breaking
// character, or the empty gap token standing for an additional space.
type Token string

// Tokenize splits query into tokens. It returns nil if query consists of
// spaces only.
//
// The query is split at each space; the piece between two adjacent spaces, or
// before a leading or after a trailing space, yields an empty gap token. Each
// word-breaking character of a piece becomes a token of its own and splits the
// surrounding characters into separate tokens.
func Tokenize(query string) []Token {
	if strings.Trim(query, " ") == "" {
		return nil
	}
	var toks []Token
	for _, w := range strings.Split(query, " ") {
		if w == "" {
			toks = append(toks, "")
			continue
		}
		toks = appendWord(toks, []rune(w))
	}
	return toks
}

func appendWord(toks []Token, w []rune) []Token {
	start := 0
	for i, r := range w {
		if !IsWordBreaking(r) || (i > start && r == rightSingleQuote) {
			continue
		}
		if i > start {
			toks = append(toks, Token(w[start:i]))
		}
		toks = append(toks, Token(r))
		start = i + 1
	}
	if start < len(w) {
		toks = append(toks, Token(w[start:]))
	}
	return toks
}

// A Pattern is a compiled query. It is safe for concurrent use.
type Pattern struct {
	tokens []Token
	words  [][]rune // nil for gap tokens
	first  int      // index of the first word token
}

// Compile tokenizes query and returns the resulting Pattern. The query is
// matched as is: a case-insensitive search needs query and text lower-cased.
func Compile(query string) (*Pattern, error) {
	toks := Tokenize(query)
	if len(toks) == 0 {
		return nil, ErrEmptyQuery
	}
	p := &Pattern{
		tokens: toks,
		words:  make([][]rune, len(toks)),
		first:  -1,
	}
	for i, t := range toks {
		if t == "" {
			continue
		}
		p.words[i] = []rune(string(t))
		if p.first < 0 {
			p.first = i
		}
	}
	return p, nil
}

// Tokens returns the tokens of p.
func (p *Pattern) Tokens() []Token {
	return slices.Clone(p.tokens)
}

// Index returns the first match of p in text that starts at or after position
// from. It reports false if there is none.
func (p *Pattern) Index(text []rune, from int, wholeWord bool) (s Span, ok bool) {
	if from < 0 {
		from = 0
	}
	s, _, ok = p.next(text, from, wholeWord)
	return s, ok
}

// next scans text for the tokens of p in order and returns the match together
// with the position of its first word token, which is at or after from even
// when leading gap tokens extend the span before it. Whenever a candidate
// fails, the scan resumes one past the occurrence of the first word token, not
// past its end: "aa b" must still match at 1 in "aaa b".
func (p *Pattern) next(text []rune, from int, wholeWord bool) (s Span, anchor int, ok bool) {
scan:
	for from < len(text) {
		s = Span{}
		var (
			cur    = from
			prev   rune // last rune of the previous word token
			gapped bool // a gap token consumed a space since prev
		)
		for i, w := range p.words {
			if w == nil {
				if i < p.first || cur == len(text) {
					continue
				}
				if !IsGapSpace(text[cur]) {
					from = anchor + 1
					continue scan
				}
				cur++
				gapped = true
				continue
			}
			k := index(text[cur:], w)
			if k < 0 {
				return Span{}, 0, false
			}
			k += cur
			if i == p.first {
				anchor = k
				s.Start = k
				for j := 1; j <= p.first && k-j >= 0; j++ {
					if !IsGapSpace(text[k-j]) {
						from = anchor + 1
						continue scan
					}
					s.Start = k - j
				}
			} else if !adjacent(text[cur:k], prev, w[0], gapped) {
				from = anchor + 1
				continue scan
			}
			cur = k + len(w)
			prev = w[len(w)-1]
			gapped = false
		}
		s.End = cur - 1
		if wholeWord && !IsWholeWord(text, s.Start, s.End) {
			from = anchor + 1
			continue
		}
		return s, anchor, true
	}
	return Span{}, 0, false
}

// adjacent reports whether two consecutive word tokens ending in prev and
// starting with cur may be separated by between.
func adjacent(between []rune, prev, cur rune, gapped bool) bool {
	if len(between) == 0 {
		return gapped || IsWordBreaking(prev) || IsWordBreaking(cur)
	}
	for _, r := range between {
		if !IsGapSpace(r) {
			return false
		}
	}
	return true
}

// index returns the position of the first occurrence of w in s, or -1.
func index(s, w []rune) int {
	for i, n := 0, len(s)-len(w); i <= n; i++ {
		if s[i] == w[0] && slices.Equal(s[i:i+len(w)], w) {
			return i
		}
	}
	return -1
}

// IsWholeWord reports whether text[start:end+1] is a whole word: neither the
// character before nor the one after it is a Latin letter or a digit. A match
// consisting of a single character beyond Latin-1 is always a whole word.
// Positions outside text impose no constraint.
func IsWholeWord(text []rune, start, end int) bool {
	if start < 0 || start > end || end >= len(text) {
		return false
	}
	if start == end && text[start] > 0xFF {
		return true
	}
	if start > 0 && isWordFlank(text[start-1]) {
		return false
	}
	// A digit on either side also keeps "12" from matching inside "123".
	if end+1 < len(text) && isWordFlank(text[end+1]) {
		return false
	}
	return true
}
