// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release_test

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uqfoundation/relgen/pkg/release"
)

var buildDate = time.Date(2018, 4, 3, 12, 0, 0, 0, time.UTC)

func testConfig(t *testing.T, stable, target string) *release.Config {
	t.Helper()
	dir := t.TempDir()
	return &release.Config{
		Name:           "mystic",
		StableVersion:  stable,
		TargetVersion:  target,
		InfoFile:       filepath.Join(dir, "info.py"),
		ReadmeTemplate: filepath.Join(dir, "README.tmpl"),
		ReadmeFile:     filepath.Join(dir, "README"),
		LicenseFile:    filepath.Join(dir, "LICENSE"),
	}
}

func TestResolveDevBuild(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// stable != target, no date flag, no prior info file.
	cfg := testConfig(t, "0.3.1", "0.3.2")
	resolved, err := release.Resolve(ctx, cfg, buildDate)
	require.NoError(t, err)
	assert.Equal(t, "0.3.2.dev0", resolved.String())
}

func TestResolveReleaseBuild(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// stable == target resolves to exactly the stable version, date flag
	// or not.
	for _, dated := range []bool{false, true} {
		cfg := testConfig(t, "0.3.1", "0.3.1")
		cfg.DatedSnapshots = dated
		resolved, err := release.Resolve(ctx, cfg, buildDate)
		require.NoError(t, err)
		assert.Equal(t, "0.3.1", resolved.String())
	}
}

func TestResolveDatedBuild(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := testConfig(t, "0.3.1", "0.3.2")
	cfg.DatedSnapshots = true
	resolved, err := release.Resolve(ctx, cfg, buildDate)
	require.NoError(t, err)
	assert.Equal(t, "0.3.2.dev0-20180403", resolved.String())
	assert.Regexp(t, regexp.MustCompile(`-[0-9]{8}$`), resolved.String())
}

func TestResolveExistingInfoWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// A version recorded by a previous run wins over the constants, even
	// though they have since been bumped.
	cfg := testConfig(t, "0.3.1", "0.3.2")
	require.NoError(t, release.WriteInfo(release.Metadata{
		ThisVersion:   "0.3.0",
		StableVersion: "0.3.0",
		Readme:        "readme",
		License:       "license",
	}, cfg.InfoFile))

	resolved, err := release.Resolve(ctx, cfg, buildDate)
	require.NoError(t, err)
	assert.Equal(t, "0.3.0", resolved.String())
}

func TestResolveCorruptInfo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := testConfig(t, "0.3.1", "0.3.2")
	require.NoError(t, release.WriteInfo(release.Metadata{
		ThisVersion:   "not a version",
		StableVersion: "0.3.0",
	}, cfg.InfoFile))

	_, err := release.Resolve(ctx, cfg, buildDate)
	assert.Error(t, err)
}

func TestResolveBadConstants(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := testConfig(t, "bogus", "0.3.2")
	_, err := release.Resolve(ctx, cfg, buildDate)
	assert.Error(t, err)

	cfg = testConfig(t, "0.3.1", "bogus")
	_, err = release.Resolve(ctx, cfg, buildDate)
	assert.Error(t, err)
}
