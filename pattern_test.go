// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "testing"

// The pattern values and the result structs share the package namespace;
// both must stay addressable by their own names.
func TestExportedPatternsAndTypesCoexist(t *testing.T) {
	t.Parallel()

	m := FootnoteMarker.FindStringSubmatch("claim^2 fails")
	if m == nil || m[1] != "claim" || m[2] != "2" {
		t.Fatalf("FootnoteMarker submatch=%v", m)
	}

	ref := FootnoteReference{Word: m[1], Number: 2}
	if ref.Word != "claim" || ref.Number != 2 {
		t.Fatalf("ref=%+v", ref)
	}

	m = PageCitation.FindStringSubmatch("pp. 12-14")
	if m == nil || m[1] != "12" || m[2] != "14" {
		t.Fatalf("PageCitation submatch=%v", m)
	}

	pr := PageRange{First: 12, Last: 14}
	if pr != (PageRange{First: 12, Last: 14}) {
		t.Fatalf("pr=%+v", pr)
	}
}

func TestExportedPatternsLowLevel(t *testing.T) {
	t.Parallel()

	if !ParagraphNumber.MatchString("[12] text") {
		t.Fatal("ParagraphNumber must match a leading marker")
	}

	if m := SectionNumber.FindStringSubmatch("§ 1.2 Scope"); m == nil || m[1] != "1.2" {
		t.Fatalf("SectionNumber submatch=%v", m)
	}

	if m := FootnoteText.FindStringSubmatch("^3 See id."); m == nil || m[1] != "3" || m[2] != "See id." {
		t.Fatalf("FootnoteText submatch=%v", m)
	}

	if !PageNumber.MatchString("Page 42") {
		t.Fatal("PageNumber must match a page marker line")
	}
}
