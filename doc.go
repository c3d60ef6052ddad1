// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

/*
Package legaltext implements lookup tables and pattern helpers for recognizing
structural elements of legal documents.

The package is a flat collection of static tables, precompiled patterns, and
pure functions over plain text. Nothing holds state between calls; tables and
patterns are built once at init and are safe for unrestricted concurrent
read-only use.

Surface:
  - classify document text by keyword table (`ExtractDocumentType`)
  - expand court abbreviations (`NormalizeCourtName`)
  - split case captions into parties (`ExtractPartyNames`)
  - detect corporate entities (`IsLegalEntity`)
  - pull numbered structure out of text (`ExtractParagraphNumbers`,
    `ExtractSectionNumbers`, `ExtractArticleNumbers`)
  - collect footnotes, dates, and page references (`ExtractFootnotes`,
    `ExtractFootnoteReferences`, `ExtractLegalDates`, `ParsePageNumber`,
    `ExtractPageRanges`)
  - normalize OCR-damaged text (`CleanLegalText`, `FormatLegalDate`)

Callers who need lower-level matching than the helpers provide can use the
exported pattern values (`ParagraphNumber`, `FootnoteMarker`, `PageCitation`,
`Corporation`, `PartyName`, ...)
directly.
*/
package legaltext
