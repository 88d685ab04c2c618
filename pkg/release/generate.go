// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"

	"github.com/uqfoundation/relgen/pkg/fsutil"
	"github.com/uqfoundation/relgen/pkg/python/distver"
)

// Generate writes the release artifacts for an already-resolved version: the
// README rendered from the project's template, and the generated metadata
// module.
//
// All inputs are read before anything is written, so a missing license file
// or a broken template aborts the build without leaving a partial artifact
// behind.
func Generate(ctx context.Context, cfg *Config, resolved distver.Version) error {
	licenseBytes, err := os.ReadFile(cfg.LicenseFile)
	if err != nil {
		return fmt.Errorf("release.Generate: license: %w", err)
	}
	tmplBytes, err := os.ReadFile(cfg.ReadmeTemplate)
	if err != nil {
		return fmt.Errorf("release.Generate: readme template: %w", err)
	}
	readme, err := RenderReadme(string(tmplBytes), ReadmeData{
		This:    resolved.String(),
		Release: cfg.StableVersion,
	})
	if err != nil {
		return fmt.Errorf("release.Generate: %w", err)
	}

	if err := fsutil.WriteFileAtomic(cfg.ReadmeFile, []byte(readme), 0o644); err != nil {
		return fmt.Errorf("release.Generate: %w", err)
	}
	dlog.Infof(ctx, "wrote %s", cfg.ReadmeFile)

	meta := Metadata{
		ThisVersion:   resolved.String(),
		StableVersion: cfg.StableVersion,
		Readme:        readme,
		License:       string(licenseBytes),
	}
	if err := WriteInfo(meta, cfg.InfoFile); err != nil {
		return fmt.Errorf("release.Generate: %w", err)
	}
	dlog.Infof(ctx, "wrote %s", cfg.InfoFile)

	return nil
}
