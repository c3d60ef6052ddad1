// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "regexp"

// Precompiled legal formatting patterns.
//
// Compiled once at init and read-only afterwards, so unrestricted concurrent
// use is safe. Exported for callers who need lower-level matching than the
// helper functions provide.
var (
	// ParagraphNumber matches a leading bracketed paragraph marker "[12]".
	ParagraphNumber = regexp.MustCompile(`^\s*\[(\d+)\]\s*`)
	// SectionNumber matches a leading section marker "§ 1.2.3".
	SectionNumber = regexp.MustCompile(`^\s*§\s*(\d+(?:\.\d+)*)\s*`)
	// ArticleNumber matches a leading article heading "Article IV" or "Article 4".
	ArticleNumber = regexp.MustCompile(`(?i)^\s*Article\s+([IVXLCDM]+|\d+)\s*`)

	// FootnoteMarker matches an in-text footnote marker "word^3".
	FootnoteMarker = regexp.MustCompile(`(\w+)\s*\^(\d+)`)
	// FootnoteText matches a footnote body line "^3 See id. at 12".
	FootnoteText = regexp.MustCompile(`^\s*\^(\d+)\s*(.+)`)

	// LegalDate matches long-form dates as cited in legal text
	// ("January 2, 2026", "Jan. 2 2026").
	LegalDate = regexp.MustCompile(
		`\b(?:January|February|March|April|May|June|July|August|September|October|November|December|` +
			`Jan\.?|Feb\.?|Mar\.?|Apr\.?|May\.?|Jun\.?|Jul\.?|Aug\.?|Sep\.?|Sept\.?|Oct\.?|Nov\.?|Dec\.?)\s+` +
			`\d{1,2},?\s+\d{4}\b`)

	// PageNumber matches a whole line holding a bare or "Page N" page marker.
	PageNumber = regexp.MustCompile(`(?i)^\s*(?:Page\s+)?(\d+)\s*$`)
	// PageCitation matches page citations "p. 12" and "pp. 12-14".
	PageCitation = regexp.MustCompile(`\bpp?\.\s*(\d+)(?:\s*-\s*(\d+))?\b`)

	// Corporation matches corporate suffix tokens as standalone words.
	// Suffixes ending in a period carry no trailing \b: a boundary cannot
	// exist between "." and a following space, so "Corp. filed" would never
	// match with one.
	Corporation = regexp.MustCompile(`\b(?:Inc\.|LLC\b|L\.L\.C\.|Corp\.|Corporation\b|Company\b|Co\.)`)
	// PartyName matches a case caption "Plaintiff v. Defendant" with
	// capital-initial party names, optionally terminated by a comma.
	PartyName = regexp.MustCompile(`^([A-Z][A-Za-z\s,.]+?)\s+v\.\s+([A-Z][A-Za-z\s,.]+?)(?:\s*,|$)`)
)
