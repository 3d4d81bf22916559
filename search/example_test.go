// Copyright 2026 The Textfind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search_test

import (
	"fmt"

	"github.com/pagefind/textfind/search"
	"github.com/pagefind/textfind/textpage"
)

func ExampleFinder() {
	page := textpage.FromString("The cat sat on the category mat.")
	f := search.NewFinder(page)
	if err := f.FindFirst("CAT", search.Options{MatchWholeWord: true}); err != nil {
		fmt.Println(err)
		return
	}
	for f.FindNext() {
		start, n, _ := f.Match()
		fmt.Println(start, n)
	}
	fmt.Println(f.Err())
	// Output:
	// 4 3
	// search: no match
}

func ExampleFinder_FindPrev() {
	var b textpage.Builder
	b.WriteString("one two")
	b.WriteUnmapped(3)
	b.WriteGenerated('\n')
	b.WriteString("one two")
	f := search.NewFinder(b.Page())
	if err := f.FindFirst("one two", search.Options{}); err != nil {
		fmt.Println(err)
		return
	}
	for f.FindPrev() {
		s, _ := f.Span()
		start, n, _ := f.Match()
		fmt.Printf("text %d-%d, chars %d+%d\n", s.Start, s.End, start, n)
	}
	// Output:
	// text 8-14, chars 11+7
	// text 0-6, chars 0+7
}

func ExampleTokenize() {
	fmt.Printf("%q\n", search.Tokenize("東京 tower  top"))
	// Output: ["東" "京" "tower" "" "top"]
}
