// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value for inclusion in a test failure message.
func Dump(val interface{}) string {
	return spewConfig.Sdump(val)
}

// AssertEqualText compares two multi-line strings, reporting any mismatch as
// a unified diff rather than as a pair of giant quoted strings.
func AssertEqualText(t *testing.T, exp, act string) bool {
	t.Helper()

	if exp == act {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(exp),
		B:        difflib.SplitLines(act),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  3,
	})
	t.Errorf("Text diff:\n%s", diff)
	return false
}
