// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import (
	"strconv"
	"strings"
)

// ExtractFootnotes collects footnote body lines ("^3 See id. at 12") in line
// order. The body text keeps its internal formatting but not the marker.
func ExtractFootnotes(text string) []Footnote {
	var notes []Footnote
	for _, line := range strings.Split(text, "\n") {
		m := FootnoteText.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		notes = append(notes, Footnote{Number: n, Text: m[2]})
	}

	return notes
}

// ExtractFootnoteReferences collects in-text footnote markers ("word^3") in
// occurrence order across the whole text.
func ExtractFootnoteReferences(text string) []FootnoteReference {
	var refs []FootnoteReference
	for _, m := range FootnoteMarker.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		refs = append(refs, FootnoteReference{Word: m[1], Number: n})
	}

	return refs
}
