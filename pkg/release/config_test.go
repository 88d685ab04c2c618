// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uqfoundation/relgen/pkg/release"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "relgen.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	filename := writeConfig(t, `
name: mystic
stableVersion: "0.3.1"
targetVersion: "0.3.2"
datedSnapshots: true
metadata:
  description: highly-constrained non-convex optimization and uncertainty quantification
  author: Mike McKerns
  license: 3-clause BSD
packages:
  - name: mystic
  - name: mystic.math
    dir: _math
scripts:
  - scripts/mystic_log_reader.py
dependencies:
  requires:
    - name: numpy
      range: ">=1.0"
    - name: sympy
      range: ">=0.6.7"
  optional:
    - name: scipy
      range: ">=0.6.0"
  tiers:
    - maxPython: "2.5"
      ranges:
        numpy: ">=1.0, <1.8.0"
        sympy: ">=0.6.7, <1.1"
`)
	cfg, err := release.LoadConfig(filename)
	require.NoError(t, err)

	assert.Equal(t, "mystic", cfg.Name)
	assert.Equal(t, "0.3.1", cfg.Stable().String())
	assert.Equal(t, "0.3.2", cfg.Target().String())
	assert.True(t, cfg.DatedSnapshots)

	// Conventional defaults are derived from the name.
	assert.Equal(t, "mystic/info.py", cfg.InfoFile)
	assert.Equal(t, "README.tmpl", cfg.ReadmeTemplate)
	assert.Equal(t, "README", cfg.ReadmeFile)
	assert.Equal(t, "LICENSE", cfg.LicenseFile)

	require.Len(t, cfg.Packages, 2)
	assert.Equal(t, "_math", cfg.Packages[1].Dir)
	require.Len(t, cfg.Dependencies.Requires, 2)
	require.Len(t, cfg.Dependencies.Optional, 1)
	require.Len(t, cfg.Dependencies.Tiers, 1)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	testcases := map[string]string{
		"no-name": `
stableVersion: "0.3.1"
targetVersion: "0.3.2"
`,
		"bad-stable": `
name: mystic
stableVersion: bogus
targetVersion: "0.3.2"
`,
		"bad-target": `
name: mystic
stableVersion: "0.3.1"
targetVersion: bogus
`,
		"target-behind-stable": `
name: mystic
stableVersion: "0.3.2"
targetVersion: "0.3.1"
`,
		"unknown-field": `
name: mystic
stableVersion: "0.3.1"
targetVersion: "0.3.2"
stableVresion: "oops"
`,
		"not-yaml": `{{{`,
	}
	for tcName, content := range testcases {
		content := content
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			cfg, err := release.LoadConfig(writeConfig(t, content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		cfg, err := release.LoadConfig(filepath.Join(t.TempDir(), "relgen.yaml"))
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadConfigReleaseMode(t *testing.T) {
	t.Parallel()
	// Equal constants are fine; that's what a release build looks like.
	cfg, err := release.LoadConfig(writeConfig(t, `
name: mystic
stableVersion: "0.3.1"
targetVersion: "0.3.1"
`))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Stable().Cmp(cfg.Target()))
}
