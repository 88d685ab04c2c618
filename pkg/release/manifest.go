// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release

import (
	"fmt"
	"strings"

	yamlv2 "gopkg.in/yaml.v2"

	"github.com/uqfoundation/relgen/pkg/depcheck"
	"github.com/uqfoundation/relgen/pkg/python/distver"
)

// BuildManifest constructs the declarative descriptor that is handed to the
// external packaging tool: distribution name, the resolved version, the
// descriptive metadata, sub-package directory mappings, the (tier-resolved)
// hard requirements, and the installable scripts.
//
// The descriptor is data for a black-box consumer; relgen does not itself
// build or upload any archive.
func BuildManifest(cfg *Config, resolved distver.Version, reqs []depcheck.Requirement) (yamlv2.MapSlice, error) {
	data := ReadmeData{
		This:    resolved.String(),
		Release: cfg.StableVersion,
	}

	ret := yamlv2.MapSlice{
		{Key: "name", Value: cfg.Name},
		{Key: "version", Value: resolved.String()},
	}
	addStr := func(key, val string) {
		if val != "" {
			ret = append(ret, yamlv2.MapItem{Key: key, Value: val})
		}
	}
	addStr("description", cfg.Metadata.Description)
	addStr("author", cfg.Metadata.Author)
	addStr("maintainer", cfg.Metadata.Maintainer)
	addStr("license", cfg.Metadata.License)
	if len(cfg.Metadata.Platforms) > 0 {
		ret = append(ret, yamlv2.MapItem{Key: "platforms", Value: cfg.Metadata.Platforms})
	}
	addStr("url", cfg.Metadata.URL)
	if cfg.Metadata.DownloadURL != "" {
		// The download URL is versioned; it goes through the same
		// template data as the README.
		downloadURL, err := RenderReadme(cfg.Metadata.DownloadURL, data)
		if err != nil {
			return nil, fmt.Errorf("release.BuildManifest: downloadUrl: %w", err)
		}
		ret = append(ret, yamlv2.MapItem{Key: "downloadUrl", Value: downloadURL})
	}
	if len(cfg.Metadata.Classifiers) > 0 {
		ret = append(ret, yamlv2.MapItem{Key: "classifiers", Value: cfg.Metadata.Classifiers})
	}

	if len(cfg.Packages) > 0 {
		pkgNames := make([]string, 0, len(cfg.Packages))
		pkgDirs := yamlv2.MapSlice{}
		for _, pkg := range cfg.Packages {
			pkgNames = append(pkgNames, pkg.Name)
			dir := pkg.Dir
			if dir == "" {
				dir = strings.ReplaceAll(pkg.Name, ".", "/")
			}
			pkgDirs = append(pkgDirs, yamlv2.MapItem{Key: pkg.Name, Value: dir})
		}
		ret = append(ret,
			yamlv2.MapItem{Key: "packages", Value: pkgNames},
			yamlv2.MapItem{Key: "packageDir", Value: pkgDirs})
	}

	var installRequires []string
	for _, req := range reqs {
		if req.Optional {
			continue
		}
		installRequires = append(installRequires, req.Name+req.Specifier.String())
	}
	if len(installRequires) > 0 {
		ret = append(ret, yamlv2.MapItem{Key: "installRequires", Value: installRequires})
	}

	if len(cfg.Scripts) > 0 {
		ret = append(ret, yamlv2.MapItem{Key: "scripts", Value: cfg.Scripts})
	}

	return ret, nil
}

// MarshalManifest renders the descriptor as YAML.
func MarshalManifest(manifest yamlv2.MapSlice) ([]byte, error) {
	return yamlv2.Marshal(manifest)
}
