// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

// Package release generates the release artifacts of a Python source
// distribution: it resolves the build's version string from the project's
// stable/target version constants (and any previously generated metadata
// module), renders the README, writes the generated info module, and
// constructs the descriptor handed to the packaging tool.
package release

import (
	"fmt"
	"os"
	"path"

	"sigs.k8s.io/yaml"

	"github.com/uqfoundation/relgen/pkg/depcheck"
	"github.com/uqfoundation/relgen/pkg/python/distver"
)

// Config is a project's release configuration, normally loaded from a
// relgen.yaml at the root of the source tree.
type Config struct {
	// Name is the distribution name.
	Name string `json:"name"`

	// StableVersion is the version of the last public release;
	// TargetVersion is the version under development.  Equality means a
	// stable release is being built.
	StableVersion string `json:"stableVersion"`
	TargetVersion string `json:"targetVersion"`

	// DatedSnapshots stamps development builds with the build date.
	DatedSnapshots bool `json:"datedSnapshots,omitempty"`

	// File locations, relative to the source tree root.  Each has a
	// conventional default derived from Name.
	InfoFile       string `json:"infoFile,omitempty"`
	ReadmeTemplate string `json:"readmeTemplate,omitempty"`
	ReadmeFile     string `json:"readmeFile,omitempty"`
	LicenseFile    string `json:"licenseFile,omitempty"`

	Metadata ProjectMetadata `json:"metadata,omitempty"`

	// Packages lists the sub-packages to install and, where the source
	// directory differs from the package name, the directory mapping.
	Packages []PackageDir `json:"packages,omitempty"`

	// Scripts lists installable helper scripts.
	Scripts []string `json:"scripts,omitempty"`

	Dependencies depcheck.DependencyPolicy `json:"dependencies,omitempty"`
}

// ProjectMetadata carries the descriptive fields that go in the packaging
// descriptor verbatim.
type ProjectMetadata struct {
	Description string   `json:"description,omitempty"`
	Author      string   `json:"author,omitempty"`
	Maintainer  string   `json:"maintainer,omitempty"`
	License     string   `json:"license,omitempty"`
	URL         string   `json:"url,omitempty"`
	// DownloadURL is a template; see ReadmeData for the fields.
	DownloadURL string   `json:"downloadUrl,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	Classifiers []string `json:"classifiers,omitempty"`
}

// PackageDir maps an installable package name to its source directory.
type PackageDir struct {
	Name string `json:"name"`
	// Dir defaults to the package name with dots replaced by slashes.
	Dir string `json:"dir,omitempty"`
}

// LoadConfig reads and validates a project configuration file.
func LoadConfig(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return nil, fmt.Errorf("release.LoadConfig: %q: %w", filename, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("release.LoadConfig: %q: %w", filename, err)
	}
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.InfoFile == "" && cfg.Name != "" {
		cfg.InfoFile = path.Join(cfg.Name, "info.py")
	}
	if cfg.ReadmeTemplate == "" {
		cfg.ReadmeTemplate = "README.tmpl"
	}
	if cfg.ReadmeFile == "" {
		cfg.ReadmeFile = "README"
	}
	if cfg.LicenseFile == "" {
		cfg.LicenseFile = "LICENSE"
	}
}

func (cfg *Config) validate() error {
	if cfg.Name == "" {
		return fmt.Errorf("name must be set")
	}
	stable, err := distver.ParseVersion(cfg.StableVersion)
	if err != nil {
		return fmt.Errorf("stableVersion: %w", err)
	}
	target, err := distver.ParseVersion(cfg.TargetVersion)
	if err != nil {
		return fmt.Errorf("targetVersion: %w", err)
	}
	// The target version is always the next release (or this very
	// release); a target behind the stable release is a typo.
	if target.Cmp(*stable) < 0 {
		return fmt.Errorf("targetVersion %q is older than stableVersion %q",
			cfg.TargetVersion, cfg.StableVersion)
	}
	return nil
}

// Stable returns the parsed stable version.  It panics on a Config that did
// not come from LoadConfig or otherwise pass validate.
func (cfg *Config) Stable() distver.Version {
	ver, err := distver.ParseVersion(cfg.StableVersion)
	if err != nil {
		panic(err)
	}
	return *ver
}

// Target returns the parsed target version, under the same contract as
// Stable.
func (cfg *Config) Target() distver.Version {
	ver, err := distver.ParseVersion(cfg.TargetVersion)
	if err != nil {
		panic(err)
	}
	return *ver
}
