// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "strings"

// caseSeparator splits plaintiff from defendant in a case caption.
const caseSeparator = " v. "

// ExtractPartyNames splits a case citation into plaintiff and defendant.
//
// Strategy, first hit wins:
// - PartyName pattern match, both captures whitespace-trimmed
// - plain split on the first " v. " occurrence
// - no separator at all: whole input as plaintiff, empty defendant
func ExtractPartyNames(caseName string) (plaintiff, defendant string) {
	if m := PartyName.FindStringSubmatch(caseName); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	if strings.Contains(caseName, caseSeparator) {
		parts := strings.SplitN(caseName, caseSeparator, 2)
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	return caseName, ""
}

// IsLegalEntity reports whether text mentions a corporate entity by one of
// the standalone suffix tokens Inc., LLC, L.L.C., Corp., Corporation,
// Company, Co. Matching is case-sensitive and never fires inside a longer
// token ("Incorporated" is not an entity mention).
func IsLegalEntity(text string) bool {
	return Corporation.MatchString(text)
}
