// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import (
	"regexp"
	"strings"
)

// OCR cleanup patterns applied by CleanLegalText, in application order.
var (
	anyWhitespaceRun  = regexp.MustCompile(`\s+`)
	standaloneLowerL  = regexp.MustCompile(`\bl\b`)
	standaloneUpperO  = regexp.MustCompile(`\bO\b`)
	spaceBeforePeriod = regexp.MustCompile(`\s+\.`)
	spaceBeforeComma  = regexp.MustCompile(`\s+,`)
)

// CleanLegalText normalizes whitespace and fixes common OCR artifacts in
// legal text.
//
// Rewrites run in a fixed order over the whole text:
//  1. collapse every whitespace run (newlines included) to one space
//  2. standalone "l" becomes "1"
//  3. standalone "O" becomes "0"
//  4. doubled section symbol "§§" becomes "§"
//  5. drop whitespace before a period
//  6. drop whitespace before a comma
//
// then surrounding whitespace is stripped. The "§§" rewrite is single-pass:
// "§§§§" collapses one level to "§§", not all the way to "§".
func CleanLegalText(text string) string {
	text = anyWhitespaceRun.ReplaceAllString(text, " ")

	text = standaloneLowerL.ReplaceAllString(text, "1")
	text = standaloneUpperO.ReplaceAllString(text, "0")
	text = strings.ReplaceAll(text, "§§", "§")
	text = spaceBeforePeriod.ReplaceAllString(text, ".")
	text = spaceBeforeComma.ReplaceAllString(text, ",")

	return strings.TrimSpace(text)
}
