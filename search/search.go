// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search finds occurrences of a query in the text of a document page.
//
// A query is split into tokens: words, single characters of scripts that do
// not separate words with spaces (such as CJK), and empty gap tokens for
// repeated spaces. A match places the tokens in order in the page text, allowing
// only whitespace between them. Matching can be restricted to whole words and
// made case-insensitive.
//
// A Finder iterates over the matches of one query in both directions:
//
//	f := search.NewFinder(page)
//	if err := f.FindFirst("find me", search.Options{}); err != nil {
//		return err
//	}
//	for f.FindNext() {
//		start, n, _ := f.Match()
//		...
//	}
//
// Positions in page text count code points. Match reports document character
// indices, as translated by the Page.
package search

import (
	"errors"
	"io"
	"log/slog"

	"golang.org/x/text/language"
)

var (
	// ErrEmptyQuery is returned by FindFirst for a query without any
	// characters other than spaces.
	ErrEmptyQuery = errors.New("search: empty query")

	// ErrNoMatch indicates that no further match exists in the requested
	// direction.
	ErrNoMatch = errors.New("search: no match")

	// ErrNotStarted indicates that FindNext or FindPrev was called without a
	// successful FindFirst, or that the page has no text.
	ErrNotStarted = errors.New("search: search not started")
)

// A Page provides the text to search and translates positions in that text to
// document character indices.
type Page interface {
	// Text returns the full text of the page.
	Text() string

	// CharIndex returns the character index for the given text position.
	CharIndex(textIndex int) (int, bool)
}

// Options controls how a query is matched.
type Options struct {
	// MatchCase requires the case of query and text to agree. Otherwise both
	// are lower-cased before matching.
	MatchCase bool

	// MatchWholeWord requires a match not to be adjacent to letters or
	// digits.
	MatchWholeWord bool

	// Consecutive lets successive matches overlap: the next search starts one
	// past the first word of the previous match instead of after its end.
	Consecutive bool
}

// An Option configures a Finder.
type Option func(*options)

type options struct {
	logger *slog.Logger
	tag    language.Tag
}

// Logger sets the logger that receives debug records of a Finder.
func Logger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Language sets the language whose rules are used to lower-case text for
// case-insensitive matching. The default is language.Und.
func Language(t language.Tag) Option {
	return func(o *options) {
		o.tag = t
	}
}

func getOpts(opts ...Option) options {
	o := options{tag: language.Und}
	for _, f := range opts {
		f(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// A Span is an inclusive range of positions in the page text.
type Span struct {
	Start, End int
}

// Len reports the number of positions covered by s.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// pos is a text position that may be absent.
type pos struct {
	n  int
	ok bool
}

func at(n int) pos {
	if n < 0 {
		return pos{}
	}
	return pos{n: n, ok: true}
}

// A Finder holds the state of a search over a single page. A Finder must not be
// used concurrently; independent searches over the same page each need their
// own Finder.
type Finder struct {
	page Page
	options
	fold *folder

	text   []rune // page text, lower-cased unless MatchCase
	loaded bool
	folded bool

	query string
	opts  Options
	pat   *Pattern

	next, prev pos
	span       Span
	matched    bool
	err        error
}

// NewFinder returns a Finder for the text of p.
func NewFinder(p Page, opts ...Option) *Finder {
	return &Finder{
		page:    p,
		options: getOpts(opts...),
	}
}

// FindFirst prepares a search for query from the start of the page. FindNext
// then returns the first match; FindPrev starts from the end of the page.
func (f *Finder) FindFirst(query string, o Options) error {
	return f.findFirst(query, o, pos{})
}

// FindFirstAt is like FindFirst, but the search starts at text position start
// in both directions. A negative start is treated as 0.
func (f *Finder) FindFirstAt(query string, o Options, start int) error {
	if start < 0 {
		start = 0
	}
	return f.findFirst(query, o, at(start))
}

func (f *Finder) findFirst(query string, o Options, start pos) error {
	if err := f.load(o.MatchCase); err != nil {
		return err
	}
	q := query
	if !o.MatchCase {
		var err error
		if q, err = f.folder().String(q); err != nil {
			return err
		}
	}
	p, err := Compile(q)
	if err != nil {
		f.reset()
		return err
	}
	f.query = query
	f.opts = o
	f.pat = p
	f.span, f.matched, f.err = Span{}, false, nil
	f.next = at(0)
	f.prev = at(len(f.text) - 1)
	if start.ok {
		f.next, f.prev = start, start
	}
	f.logger.Debug("search: compiled query", "tokens", len(p.tokens), "textLen", len(f.text))
	return nil
}

// load fetches the page text if it has not been fetched yet, if it was empty,
// or if it was folded for a different case setting.
func (f *Finder) load(matchCase bool) error {
	if f.loaded && len(f.text) > 0 && f.folded == !matchCase {
		return nil
	}
	s := f.page.Text()
	if !matchCase {
		var err error
		if s, err = f.folder().String(s); err != nil {
			return err
		}
	}
	f.text = []rune(s)
	f.loaded = true
	f.folded = !matchCase
	f.logger.Debug("search: loaded page text", "len", len(f.text), "folded", f.folded)
	return nil
}

func (f *Finder) folder() *folder {
	if f.fold == nil {
		f.fold = newFolder(f.tag)
	}
	return f.fold
}

func (f *Finder) reset() {
	f.query = ""
	f.pat = nil
	f.next, f.prev = pos{}, pos{}
	f.span, f.matched, f.err = Span{}, false, nil
}

// FindNext advances to the next match. It reports false if there is none, in
// which case the position of the Finder is unchanged and Err reports why.
func (f *Finder) FindNext() bool {
	if f.pat == nil || len(f.text) == 0 {
		f.err = ErrNotStarted
		return false
	}
	if !f.next.ok || f.next.n >= len(f.text) {
		f.err = ErrNoMatch
		return false
	}
	s, anchor, ok := f.pat.next(f.text, f.next.n, f.opts.MatchWholeWord)
	if !ok {
		f.err = ErrNoMatch
		return false
	}
	f.setMatch(s, anchor)
	return true
}

// FindPrev moves to the last match that ends at or before the previous search
// position. It reports false if there is none, in which case the position of
// the Finder is unchanged and Err reports why.
//
// FindPrev replays the search forward from the start of the page, so each call
// is linear in the length of the text.
func (f *Finder) FindPrev() bool {
	if f.pat == nil || len(f.text) == 0 {
		f.err = ErrNotStarted
		return false
	}
	if !f.prev.ok {
		f.err = ErrNoMatch
		return false
	}
	var (
		last       Span
		lastAnchor int
	)
	found, n := false, 0
	for from := 0; from < len(f.text); {
		s, anchor, ok := f.pat.next(f.text, from, f.opts.MatchWholeWord)
		if !ok || s.End > f.prev.n {
			break
		}
		last, lastAnchor, found = s, anchor, true
		n++
		from = f.advance(s, anchor)
	}
	f.logger.Debug("search: replayed matches", "count", n, "bound", f.prev.n)
	if !found {
		f.err = ErrNoMatch
		return false
	}
	f.setMatch(last, lastAnchor)
	return true
}

// advance returns the position at which the search following s starts. The
// first word token of s is at anchor, which leading gap tokens may place after
// s.Start; a consecutive search resumes one past anchor.
func (f *Finder) advance(s Span, anchor int) int {
	if f.opts.Consecutive {
		return anchor + 1
	}
	return s.End + 1
}

func (f *Finder) setMatch(s Span, anchor int) {
	f.span, f.matched, f.err = s, true, nil
	f.next = at(f.advance(s, anchor))
	if f.opts.Consecutive {
		f.prev = at(s.End - 1)
	} else {
		f.prev = at(s.Start - 1)
	}
}

// Span returns the current match in text positions.
func (f *Finder) Span() (s Span, ok bool) {
	return f.span, f.matched
}

// Match returns the current match as the character index of its first character
// and the number of characters up to and including its last one. It reports
// false if there is no current match or its ends have no character index.
func (f *Finder) Match() (start, length int, ok bool) {
	if !f.matched {
		return 0, 0, false
	}
	start, ok = f.page.CharIndex(f.span.Start)
	if !ok {
		return 0, 0, false
	}
	end, ok := f.page.CharIndex(f.span.End)
	if !ok {
		return 0, 0, false
	}
	return start, end - start + 1, true
}

// Err returns the reason the last call to FindNext or FindPrev reported false,
// or nil if it succeeded.
func (f *Finder) Err() error {
	return f.err
}

// Query returns the query of the current search.
func (f *Finder) Query() string {
	return f.query
}

// Options returns the options of the current search.
func (f *Finder) Options() Options {
	return f.opts
}
