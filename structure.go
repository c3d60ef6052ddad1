// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import (
	"strconv"
	"strings"
)

// ExtractParagraphNumbers collects bracketed paragraph markers "[N]" that
// open a line, in line order. Duplicates are preserved; lines without a
// leading marker contribute nothing.
func ExtractParagraphNumbers(text string) []int {
	var numbers []int
	for _, line := range strings.Split(text, "\n") {
		m := ParagraphNumber.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		numbers = append(numbers, n)
	}

	return numbers
}

// ExtractSectionNumbers collects leading section markers "§ N.N" in line
// order, returning the dotted numerals as written ("12", "1.2.3").
func ExtractSectionNumbers(text string) []string {
	var sections []string
	for _, line := range strings.Split(text, "\n") {
		if m := SectionNumber.FindStringSubmatch(line); m != nil {
			sections = append(sections, m[1])
		}
	}

	return sections
}

// ExtractArticleNumbers collects leading article headings ("Article IV",
// "article 4") in line order, returning the identifier as written.
func ExtractArticleNumbers(text string) []string {
	var articles []string
	for _, line := range strings.Split(text, "\n") {
		if m := ArticleNumber.FindStringSubmatch(line); m != nil {
			articles = append(articles, m[1])
		}
	}

	return articles
}
