// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

// CourtAbbreviations maps citation short forms to canonical court names.
//
// Lookup only, never mutated. Multi-word keys ("S. Ct.", "D.C. Cir.") resolve
// only through the exact-match path of NormalizeCourtName; the per-token
// fallback cannot reassemble them.
var CourtAbbreviations = map[string]string{
	// Federal courts
	"S. Ct.": "Supreme Court",
	"U.S.":   "United States Supreme Court",

	// Circuit courts
	"1st Cir.":  "First Circuit",
	"2d Cir.":   "Second Circuit",
	"3d Cir.":   "Third Circuit",
	"4th Cir.":  "Fourth Circuit",
	"5th Cir.":  "Fifth Circuit",
	"6th Cir.":  "Sixth Circuit",
	"7th Cir.":  "Seventh Circuit",
	"8th Cir.":  "Eighth Circuit",
	"9th Cir.":  "Ninth Circuit",
	"10th Cir.": "Tenth Circuit",
	"11th Cir.": "Eleventh Circuit",
	"D.C. Cir.": "D.C. Circuit",
	"Fed. Cir.": "Federal Circuit",

	// District courts
	"D.":   "District",
	"E.D.": "Eastern District",
	"W.D.": "Western District",
	"N.D.": "Northern District",
	"S.D.": "Southern District",
	"C.D.": "Central District",
	"M.D.": "Middle District",

	// State courts
	"Sup. Ct.":   "Supreme Court",
	"App.":       "Appellate",
	"App. Div.":  "Appellate Division",
	"Ct. App.":   "Court of Appeals",
	"Super. Ct.": "Superior Court",
}

// DocumentTypes is the ordered classification table.
//
// Order is semantic: ExtractDocumentType returns the first type whose first
// matching keyword appears in the text, so earlier entries shadow later ones
// (a "petition" classifies as "motion", never "complaint").
var DocumentTypes = []DocumentType{
	{Label: "contract", Keywords: []string{"agreement", "contract", "covenant", "deed", "lease"}},
	{Label: "motion", Keywords: []string{"motion", "petition", "application", "request"}},
	{Label: "brief", Keywords: []string{"brief", "memorandum", "memo"}},
	{Label: "complaint", Keywords: []string{"complaint", "petition", "claim"}},
	{Label: "order", Keywords: []string{"order", "judgment", "decree", "ruling", "decision"}},
	{Label: "opinion", Keywords: []string{"opinion", "decision", "judgment"}},
	{Label: "statute", Keywords: []string{"statute", "act", "code", "law"}},
	{Label: "regulation", Keywords: []string{"regulation", "rule", "cfr", "administrative"}},
}

// UnknownDocumentType is returned when no keyword of any type matches.
const UnknownDocumentType = "unknown"
