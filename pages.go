// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/legaltext

package legaltext

import "strconv"

// ParsePageNumber reports whether a line is a bare page marker ("42",
// "Page 42", case-insensitive) and returns the page when it is.
func ParsePageNumber(line string) (int, bool) {
	m := PageNumber.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return n, true
}

// ExtractPageRanges collects page citations ("p. 12", "pp. 12-14") in
// occurrence order. Single-page cites come back with Last equal to First.
func ExtractPageRanges(text string) []PageRange {
	var ranges []PageRange
	for _, m := range PageCitation.FindAllStringSubmatch(text, -1) {
		first, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		pr := PageRange{First: first, Last: first}
		if m[2] != "" {
			last, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}

			pr.Last = last
		}

		ranges = append(ranges, pr)
	}

	return ranges
}
