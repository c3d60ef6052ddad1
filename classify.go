// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "strings"

// ExtractDocumentType classifies document text against DocumentTypes.
//
// Decision policy:
// - table order, then keyword order; first match wins
// - keywords match as case-insensitive substrings
// - UnknownDocumentType when nothing matches
func ExtractDocumentType(text string) string {
	lower := strings.ToLower(text)

	for _, dt := range DocumentTypes {
		for _, keyword := range dt.Keywords {
			if strings.Contains(lower, keyword) {
				return dt.Label
			}
		}
	}

	return UnknownDocumentType
}
