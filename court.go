// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "strings"

// NormalizeCourtName expands a court abbreviation to its full name.
//
// An input matching a CourtAbbreviations key exactly returns the mapped name
// verbatim. Otherwise each whitespace-delimited token is expanded on its own
// and the tokens are rejoined with single spaces; tokens without a table entry
// pass through unchanged. Multi-word keys ("S. Ct.") only resolve through the
// exact path.
func NormalizeCourtName(abbr string) string {
	if full, ok := CourtAbbreviations[abbr]; ok {
		return full
	}

	parts := strings.Fields(abbr)
	for i, part := range parts {
		if full, ok := CourtAbbreviations[part]; ok {
			parts[i] = full
		}
	}

	return strings.Join(parts, " ")
}
