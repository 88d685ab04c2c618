// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package distver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uqfoundation/relgen/pkg/python/distver"
)

func intPtr(x int) *int {
	return &x
}

func mustParseVersion(t *testing.T, str string) distver.Version {
	t.Helper()
	ver, err := distver.ParseVersion(str)
	require.NoError(t, err)
	require.NotNil(t, ver)
	return *ver
}
