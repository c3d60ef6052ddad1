// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

// DocumentType is one entry of the ordered classification table.
type DocumentType struct {
	// Label is the coarse document category ("contract", "motion", ...).
	Label string `json:"label" yaml:"label"`
	// Keywords are matched as case-insensitive substrings, in order.
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Footnote is one footnote body line ("^3 See id. at 12").
type Footnote struct {
	// Number is the footnote marker numeral.
	Number int `json:"number" yaml:"number"`
	// Text is the footnote body following the marker.
	Text string `json:"text" yaml:"text"`
}

// FootnoteReference is one in-text footnote marker ("word^3").
type FootnoteReference struct {
	// Word is the word immediately preceding the marker.
	Word string `json:"word" yaml:"word"`
	// Number is the footnote numeral the marker points at.
	Number int `json:"number" yaml:"number"`
}

// PageRange is one page citation ("p. 12" or "pp. 12-14").
type PageRange struct {
	// First is the first cited page.
	First int `json:"first" yaml:"first"`
	// Last is the last cited page, equal to First for single-page cites.
	Last int `json:"last" yaml:"last"`
}
