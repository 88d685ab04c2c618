// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

// Package depcheck checks whether a Python installation satisfies a set of
// dependency requirements.
//
// The check is split from the probing: Check walks a requirement list and
// asks a caller-supplied Probe whether each module is importable and at what
// version.  The normal probe shells out to an interpreter (see
// pkg/python/interp); tests substitute a fake.
package depcheck

import (
	"context"
	"fmt"

	"github.com/datawire/dlib/dlog"

	"github.com/uqfoundation/relgen/pkg/python/distver"
)

// Requirement is one dependency and the version range that satisfies it.
type Requirement struct {
	Name      string
	Specifier distver.VersionSpecifier
	Optional  bool
}

// String implements fmt.Stringer, rendering the conventional
// "name >=X, <Y" form.
func (req Requirement) String() string {
	if len(req.Specifier) == 0 {
		return req.Name
	}
	return req.Name + " " + req.Specifier.String()
}

// Probe reports whether the named module is importable, and if so at what
// version ("" if the module doesn't say).  A non-nil error does not mean
// "not importable"; it means the probe itself could not run.
type Probe func(ctx context.Context, module string) (version string, ok bool, err error)

// Unresolved is a requirement the installation does not satisfy.
type Unresolved struct {
	Requirement
	// Have is the version that is installed, or "" if the module is not
	// importable at all.
	Have string
}

// Check probes each requirement and returns the ones that are unresolved:
// not importable, or importable at a version outside the required range.  A
// module that reports no version at all is taken at its word that it is
// present (the legacy behavior; import success was the only signal).
func Check(ctx context.Context, reqs []Requirement, probe Probe) ([]Unresolved, error) {
	var unresolved []Unresolved
	for _, req := range reqs {
		have, ok, err := probe(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("depcheck: %w", err)
		}
		if !ok {
			dlog.Debugf(ctx, "dependency %q: not importable", req.Name)
			unresolved = append(unresolved, Unresolved{Requirement: req})
			continue
		}
		if have == "" || len(req.Specifier) == 0 {
			dlog.Debugf(ctx, "dependency %q: present", req.Name)
			continue
		}
		haveVer, err := distver.ParseVersion(have)
		if err != nil {
			// A version string we can't parse is not grounds to
			// fail the build; report it as satisfying nothing.
			dlog.Debugf(ctx, "dependency %q: unparseable version %q", req.Name, have)
			unresolved = append(unresolved, Unresolved{Requirement: req, Have: have})
			continue
		}
		if !req.Specifier.Match(*haveVer) {
			dlog.Debugf(ctx, "dependency %q: version %q outside range %q",
				req.Name, have, req.Specifier)
			unresolved = append(unresolved, Unresolved{Requirement: req, Have: have})
			continue
		}
		dlog.Debugf(ctx, "dependency %q: version %q ok", req.Name, have)
	}
	return unresolved, nil
}
