// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "strings"

// FormatLegalDate trims surrounding whitespace from a date string.
//
// It does not reparse or reformat the date into a canonical form; callers
// depend on the input passing through otherwise untouched.
func FormatLegalDate(dateStr string) string {
	return strings.TrimSpace(dateStr)
}

// ExtractLegalDates collects long-form dates ("January 2, 2026", "Jan. 2
// 2026") in occurrence order, as written.
func ExtractLegalDates(text string) []string {
	return LegalDate.FindAllString(text, -1)
}
