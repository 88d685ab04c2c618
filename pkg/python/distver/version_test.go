// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package distver_test

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uqfoundation/relgen/pkg/python/distver"
	"github.com/uqfoundation/relgen/pkg/testutil"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testcases := map[string]struct {
		Input    string
		Expected *distver.Version
		ExpStr   string
	}{
		"stable":    {"0.3.1", &distver.Version{Release: []int{0, 3, 1}}, "0.3.1"},
		"two-seg":   {"1.0", &distver.Version{Release: []int{1, 0}}, "1.0"},
		"one-seg":   {"2", &distver.Version{Release: []int{2}}, "2"},
		"dev":       {"0.3.2.dev0", &distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(0)}, "0.3.2.dev0"},
		"dev-n":     {"0.3.2.dev12", &distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(12)}, "0.3.2.dev12"},
		"dev-bare":  {"0.3.2.dev", &distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(0)}, "0.3.2.dev0"},
		"dev-dash":  {"0.3.2-dev0", &distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(0)}, "0.3.2.dev0"},
		"dev-glued": {"0.3.2dev0", &distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(0)}, "0.3.2.dev0"},
		"dated": {
			"0.3.2.dev0-20180403",
			&distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(0), Date: "20180403"},
			"0.3.2.dev0-20180403",
		},
		"v-prefix":    {"v1.2.3", &distver.Version{Release: []int{1, 2, 3}}, "1.2.3"},
		"whitespace":  {"  0.3.1\n", &distver.Version{Release: []int{0, 3, 1}}, "0.3.1"},
		"upper":       {"0.3.2.DEV0", &distver.Version{Release: []int{0, 3, 2}, Dev: intPtr(0)}, "0.3.2.dev0"},
		"zero":        {"0", &distver.Version{Release: []int{0}}, "0"},
		"empty":       {"", nil, ""},
		"words":       {"bogus", nil, ""},
		"trailing":    {"0.3.1x", nil, ""},
		"short-date":  {"0.3.2.dev0-2018", nil, ""},
		"dated-final": {"0.3.2-20180403", nil, ""},
		"pre-release": {"4.3rc2", nil, ""},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			ver, err := distver.ParseVersion(tcData.Input)
			if tcData.Expected == nil {
				assert.Error(t, err)
				assert.Nil(t, ver)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ver)
			assert.Equal(t, *tcData.Expected, *ver)
			assert.Equal(t, tcData.ExpStr, ver.String())
		})
	}
}

func TestSort(t *testing.T) {
	t.Parallel()
	testcases := map[string][]string{
		"final-releases": {
			"0.9",
			"0.9.1",
			"0.9.2",
			"0.9.10",
			"0.9.11",
			"1.0",
			"1.0.1",
			"1.1",
			"2.0",
		},
		"developmental-releases": {
			"0.3.1",
			"0.3.2.dev0",
			"0.3.2.dev0-20180403",
			"0.3.2.dev0-20180525",
			"0.3.2.dev1",
			"0.3.2",
		},
		"zero-padding": {
			"1.0.dev0",
			"1",
			"1.0.1",
		},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			sorted := make([]distver.Version, 0, len(tcData))
			for _, str := range tcData {
				sorted = append(sorted, mustParseVersion(t, str))
			}
			for i := range sorted {
				for j := range sorted {
					exp := 0
					switch {
					case i < j:
						exp = -1
					case i > j:
						exp = 1
					}
					assert.Equalf(t, exp, sorted[i].Cmp(sorted[j]),
						"%q.Cmp(%q)", sorted[i], sorted[j])
				}
			}

			shuffled := make([]distver.Version, len(sorted))
			copy(shuffled, sorted)
			rand.New(rand.NewSource(time.Now().UnixNano())).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			sort.Slice(shuffled, func(i, j int) bool {
				return shuffled[i].Cmp(shuffled[j]) < 0
			})
			assert.Equal(t, sorted, shuffled)
		})
	}
}

func TestZeroEquality(t *testing.T) {
	t.Parallel()
	a := mustParseVersion(t, "1.0")
	b := mustParseVersion(t, "1.0.0")
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, 0, b.Cmp(a))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t,
		func(ver distver.Version) bool {
			parsed, err := distver.ParseVersion(ver.String())
			if err != nil {
				t.Logf("%#v: %v", ver, err)
				return false
			}
			return parsed.Cmp(ver) == 0 && parsed.String() == ver.String()
		},
		testutil.QuickConfig{},
		[]interface{}{mustParseVersion(t, "0.3.2.dev0-20180403")},
		[]interface{}{mustParseVersion(t, "0.3.1")},
	)
}

func TestWithHelpers(t *testing.T) {
	t.Parallel()

	base := mustParseVersion(t, "0.3.2")
	dev := base.WithDev(0)
	assert.Equal(t, "0.3.2.dev0", dev.String())
	assert.True(t, dev.IsDev())
	assert.False(t, base.IsDev())

	dated := dev.WithDate(time.Date(2018, 4, 3, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "0.3.2.dev0-20180403", dated.String())

	// The receiver is unchanged.
	assert.Equal(t, "0.3.2.dev0", dev.String())
	assert.Equal(t, "0.3.2", base.String())

	assert.Panics(t, func() { base.WithDate(time.Now()) })
}
