// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package depcheck

import (
	"fmt"

	"github.com/uqfoundation/relgen/pkg/python/distver"
	"github.com/uqfoundation/relgen/pkg/python/interp"
)

// Historically the version ranges for the numeric dependencies were chosen
// by ad-hoc branching on the running interpreter's version tuple.  Here the
// policy is a static table instead: an ordered list of tier rules, each
// bounding an inclusive interpreter-version window and overriding the
// default range for the dependencies it names.  First matching rule wins; a
// rule with no bounds matches everything.

// DependencyPolicy is the dependency section of a project configuration.
type DependencyPolicy struct {
	// Requires lists the hard dependencies.
	Requires []RequirementConfig `json:"requires,omitempty"`
	// Optional lists dependencies that are probed and warned about but
	// never required.
	Optional []RequirementConfig `json:"optional,omitempty"`
	// Tiers lists interpreter-version-specific range overrides.
	Tiers []TierRule `json:"tiers,omitempty"`
}

// RequirementConfig is one dependency declaration.
type RequirementConfig struct {
	Name string `json:"name"`
	// Range is the default version range, e.g. ">=1.0"; a matching tier
	// rule may override it.
	Range string `json:"range,omitempty"`
}

// TierRule overrides dependency ranges for a window of interpreter versions.
type TierRule struct {
	// MinPython and MaxPython bound the window, inclusive on both ends;
	// an empty bound is unbounded on that side.
	MinPython string `json:"minPython,omitempty"`
	MaxPython string `json:"maxPython,omitempty"`
	// Ranges maps dependency name to the version range to use inside the
	// window.
	Ranges map[string]string `json:"ranges"`
}

func (rule TierRule) matches(py interp.VersionTuple) (bool, error) {
	if rule.MinPython != "" {
		min, err := interp.ParseVersionTuple(rule.MinPython)
		if err != nil {
			return false, fmt.Errorf("tier rule minPython: %w", err)
		}
		if py.Cmp(min) < 0 {
			return false, nil
		}
	}
	if rule.MaxPython != "" {
		max, err := interp.ParseVersionTuple(rule.MaxPython)
		if err != nil {
			return false, fmt.Errorf("tier rule maxPython: %w", err)
		}
		if py.Cmp(max) > 0 {
			return false, nil
		}
	}
	return true, nil
}

// RangesFor resolves the policy against an interpreter version, returning
// the full requirement list (hard dependencies first, then optional ones)
// with any tier overrides applied.
func (policy DependencyPolicy) RangesFor(py interp.VersionTuple) ([]Requirement, error) {
	overrides := map[string]string{}
	for _, rule := range policy.Tiers {
		ok, err := rule.matches(py)
		if err != nil {
			return nil, fmt.Errorf("depcheck: %w", err)
		}
		if ok {
			overrides = rule.Ranges
			break
		}
	}

	var ret []Requirement
	appendReqs := func(cfgs []RequirementConfig, optional bool) error {
		for _, cfg := range cfgs {
			rangeStr := cfg.Range
			if override, ok := overrides[cfg.Name]; ok {
				rangeStr = override
			}
			spec, err := distver.ParseVersionSpecifier(rangeStr)
			if err != nil {
				return fmt.Errorf("depcheck: dependency %q: %w", cfg.Name, err)
			}
			ret = append(ret, Requirement{
				Name:      cfg.Name,
				Specifier: spec,
				Optional:  optional,
			})
		}
		return nil
	}
	if err := appendReqs(policy.Requires, false); err != nil {
		return nil, err
	}
	if err := appendReqs(policy.Optional, true); err != nil {
		return nil, err
	}
	return ret, nil
}

// Defaults resolves the policy with no tier overrides applied, for contexts
// where no target interpreter is known.
func (policy DependencyPolicy) Defaults() ([]Requirement, error) {
	stripped := DependencyPolicy{
		Requires: policy.Requires,
		Optional: policy.Optional,
	}
	return stripped.RangesFor(interp.VersionTuple{})
}
