// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package cliutil

import (
	"strings"
)

// Wrap wraps the string `s` to a maximum width `w`.  Pass `w` == 0 to do no
// wrapping.
//
// In order to have some room for slop to avoid things like a short word
// being on a line by itself, most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent wraps the string `s` to a maximum width `w` with leading indent
// `i`.  The first line is not indented (this is assumed to be done by the
// caller).  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word
// being on a line by itself, most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	limit := width - 5
	if limit <= indent {
		return s
	}

	var ret strings.Builder
	for lineNum, line := range strings.Split(s, "\n") {
		if lineNum > 0 {
			ret.WriteString("\n")
			ret.WriteString(strings.Repeat(" ", indent))
		}
		// Split on space runs, but keep the runs: deliberate
		// double-spacing after sentences survives wrapping (except
		// right at a line break, where the run is replaced by the
		// break itself).
		col := indent
		rest := strings.TrimRight(line, " ")
		first := true
		for rest != "" {
			sepLen := 0
			for sepLen < len(rest) && rest[sepLen] == ' ' {
				sepLen++
			}
			sep := rest[:sepLen]
			rest = rest[sepLen:]
			wordLen := strings.IndexByte(rest, ' ')
			if wordLen < 0 {
				wordLen = len(rest)
			}
			word := rest[:wordLen]
			rest = rest[wordLen:]

			if !first && col+len(sep)+len(word) >= limit {
				ret.WriteString("\n")
				ret.WriteString(strings.Repeat(" ", indent))
				col = indent
			} else {
				ret.WriteString(sep)
				col += len(sep)
			}
			ret.WriteString(word)
			col += len(word)
			first = false
		}
	}
	return ret.String()
}
