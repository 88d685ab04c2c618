// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/datawire/dlib/dlog"

	"github.com/uqfoundation/relgen/pkg/python/distver"
)

// Resolve computes the version string to use for this build:
//
//  1. If the configured info file already exists, its recorded version is
//     used verbatim.  This keeps an unpacked source distribution's version
//     stable across rebuilds, even if the version constants have since been
//     bumped; clear the generated module to re-version a tree.
//  2. Otherwise, if the stable and target versions are equal, this is a
//     stable release build and the resolved version is exactly the stable
//     version.
//  3. Otherwise this is a development build: target + ".dev0", with a
//     -YYYYMMDD date stamp appended when the project builds dated
//     snapshots.
//
// now supplies the date for rule 3; pass reproducible.Now() so that
// SOURCE_DATE_EPOCH pins it.
func Resolve(ctx context.Context, cfg *Config, now time.Time) (distver.Version, error) {
	if meta, err := ReadInfo(cfg.InfoFile); err == nil {
		ver, err := distver.ParseVersion(meta.ThisVersion)
		if err != nil {
			return distver.Version{}, fmt.Errorf("release.Resolve: %q: recorded version: %w",
				cfg.InfoFile, err)
		}
		dlog.Infof(ctx, "using version %s recorded in %s (delete it to re-version)",
			ver, cfg.InfoFile)
		return *ver, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return distver.Version{}, fmt.Errorf("release.Resolve: %w", err)
	}

	stable, err := distver.ParseVersion(cfg.StableVersion)
	if err != nil {
		return distver.Version{}, fmt.Errorf("release.Resolve: stableVersion: %w", err)
	}
	target, err := distver.ParseVersion(cfg.TargetVersion)
	if err != nil {
		return distver.Version{}, fmt.Errorf("release.Resolve: targetVersion: %w", err)
	}

	if stable.Cmp(*target) == 0 {
		return *stable, nil
	}

	resolved := target.WithDev(0)
	if cfg.DatedSnapshots {
		resolved = resolved.WithDate(now)
	}
	return resolved, nil
}
