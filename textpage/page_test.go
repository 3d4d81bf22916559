// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpage

import "testing"

func buildPage() *Page {
	var b Builder
	b.WriteString("ab")   // chars 0-1, text 0-1
	b.WriteUnmapped(2)    // chars 2-3
	b.WriteString("cd")   // chars 4-5, text 2-3
	b.WriteGenerated(' ') // char 6, text 4
	b.WriteUnmapped(1)    // char 7
	b.WriteString("é")    // char 8, text 5
	b.WriteHyphen()       // char 9, text 6
	return b.Page()
}

func TestText(t *testing.T) {
	p := buildPage()
	if got, want := p.Text(), "abcd é-"; got != want {
		t.Errorf("Text: got %q; want %q", got, want)
	}
	if got, want := p.Len(), 7; got != want {
		t.Errorf("Len: got %d; want %d", got, want)
	}
	if got, want := p.CountChars(), 10; got != want {
		t.Errorf("CountChars: got %d; want %d", got, want)
	}
	if c, ok := p.Char(6); !ok || c.Kind != Generated || c.Rune != ' ' {
		t.Errorf("Char(6): got %+v, %v; want generated space", c, ok)
	}
	if _, ok := p.Char(10); ok {
		t.Error("Char(10): got ok; want out of range")
	}
}

func TestCharIndex(t *testing.T) {
	p := buildPage()
	for _, tc := range []struct {
		text int
		char int
		ok   bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{1, 1, true},
		{2, 4, true},
		{3, 5, true},
		{4, 6, true},
		{5, 8, true},
		{6, 9, true},
		{7, 0, false},
	} {
		char, ok := p.CharIndex(tc.text)
		if ok != tc.ok || (ok && char != tc.char) {
			t.Errorf("CharIndex(%d): got %d, %v; want %d, %v", tc.text, char, ok, tc.char, tc.ok)
		}
	}
}

func TestTextIndex(t *testing.T) {
	p := buildPage()
	for _, tc := range []struct {
		char int
		text int
		ok   bool
	}{
		{0, 0, true},
		{1, 1, true},
		{2, 0, false},
		{3, 0, false},
		{4, 2, true},
		{6, 4, true},
		{7, 0, false},
		{8, 5, true},
		{9, 6, true},
		{10, 0, false},
	} {
		text, ok := p.TextIndex(tc.char)
		if ok != tc.ok || (ok && text != tc.text) {
			t.Errorf("TextIndex(%d): got %d, %v; want %d, %v", tc.char, text, ok, tc.text, tc.ok)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	p := buildPage()
	for i := 0; i < p.Len(); i++ {
		c, ok := p.CharIndex(i)
		if !ok {
			t.Fatalf("CharIndex(%d): not mapped", i)
		}
		if got, ok := p.TextIndex(c); !ok || got != i {
			t.Errorf("TextIndex(CharIndex(%d)): got %d, %v; want %d", i, got, ok, i)
		}
	}
}

func TestFromString(t *testing.T) {
	p := FromString("héllo")
	if got, want := p.Len(), 5; got != want {
		t.Errorf("Len: got %d; want %d", got, want)
	}
	if c, ok := p.CharIndex(4); !ok || c != 4 {
		t.Errorf("CharIndex(4): got %d, %v; want 4, true", c, ok)
	}
	if p := FromString(""); p.Text() != "" || p.Len() != 0 {
		t.Errorf("empty page: got %q", p.Text())
	}
}

func TestNewCopies(t *testing.T) {
	chars := []Char{{Rune: 'a'}, {Rune: 'b'}}
	p := New(chars)
	chars[0].Rune = 'x'
	if c, _ := p.Char(0); c.Rune != 'a' {
		t.Errorf("Char(0): got %q; want 'a'", c.Rune)
	}
}
