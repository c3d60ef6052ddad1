// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "testing"

func TestExtractFootnotes(t *testing.T) {
	t.Parallel()

	notes := ExtractFootnotes("body text\n^1 See supra note 3.\n ^2 Id. at 12.\nmore body")
	if len(notes) != 2 {
		t.Fatalf("len(notes)=%d, want 2", len(notes))
	}

	if notes[0].Number != 1 || notes[0].Text != "See supra note 3." {
		t.Fatalf("notes[0]=%+v", notes[0])
	}

	if notes[1].Number != 2 || notes[1].Text != "Id. at 12." {
		t.Fatalf("notes[1]=%+v", notes[1])
	}

	if notes := ExtractFootnotes("no markers here"); len(notes) != 0 {
		t.Fatalf("unexpected notes %+v", notes)
	}
}

func TestExtractFootnoteReferences(t *testing.T) {
	t.Parallel()

	refs := ExtractFootnoteReferences("the claim^2 fails, see precedent^10 and id.")
	if len(refs) != 2 {
		t.Fatalf("len(refs)=%d, want 2", len(refs))
	}

	if refs[0].Word != "claim" || refs[0].Number != 2 {
		t.Fatalf("refs[0]=%+v", refs[0])
	}

	if refs[1].Word != "precedent" || refs[1].Number != 10 {
		t.Fatalf("refs[1]=%+v", refs[1])
	}
}
