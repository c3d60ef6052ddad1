// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import (
	"slices"
	"testing"
)

func TestFormatLegalDate(t *testing.T) {
	t.Parallel()

	// Trim only; the date itself passes through untouched.
	if got := FormatLegalDate("  January 2, 2026 "); got != "January 2, 2026" {
		t.Fatalf("FormatLegalDate=%q", got)
	}

	if got := FormatLegalDate("2/1/2026"); got != "2/1/2026" {
		t.Fatalf("non-canonical date must pass through, got %q", got)
	}

	if got := FormatLegalDate(""); got != "" {
		t.Fatalf("empty input => %q", got)
	}
}

func TestExtractLegalDates(t *testing.T) {
	t.Parallel()

	text := "Filed January 2, 2026, argued Jan. 15 1999, decided Sept. 30, 2001."
	got := ExtractLegalDates(text)
	want := []string{"January 2, 2026", "Jan. 15 1999", "Sept. 30, 2001"}
	if !slices.Equal(got, want) {
		t.Fatalf("dates=%v, want %v", got, want)
	}

	if got := ExtractLegalDates("filed on 2026-01-02"); len(got) != 0 {
		t.Fatalf("numeric dates must not match, got %v", got)
	}
}
