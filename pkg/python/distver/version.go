// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

// Package distver implements the legacy distutils-style version scheme used
// by pydist-era scientific packages.
//
// The scheme is a strict subset of what modern packaging tools accept::
//
//     N(.N)*[.devN][-YYYYMMDD]
//
// A version is a dotted run of release segments, optionally followed by a
// development-release suffix, optionally followed by a date stamp.  The date
// stamp only ever appears on dated development snapshots; it is the build
// date in ISO "basic" form (digits only, no separators).
//
// Note that the date stamp makes these identifiers *not* PEP 440 compliant:
// PEP 440 would spell it as a local version label (``+20260829``).  The
// hyphenated form predates PEP 440 and is kept for compatibility with
// existing source distributions.
package distver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Version is a parsed version identifier.
type Version struct {
	// Release segments: ``N(.N)*``
	Release []int
	// Development release suffix: ``.devN``
	Dev *int
	// Date stamp for dated development snapshots: ``-YYYYMMDD``
	Date string
}

var reVersion = regexp.MustCompile(`(?i)^\s*` + regexp.MustCompile(`(?:\s+|#.*)`).ReplaceAllString(`
		v?
		(?P<release>[0-9]+(?:\.[0-9]+)*)                  # release segment
		(?P<dev>                                          # dev release
		    [-_\.]?
		    dev
		    (?P<dev_n>[0-9]+)?
		)?
		(?:-(?P<date>[0-9]{8}))?                          # date stamp
	`, ``) + `\s*$`)

// ParseVersion parses a string to a Version object, performing normalization
// (a leading "v", alternate dev-suffix separators, and surrounding
// whitespace are all accepted and canonicalized away).
func ParseVersion(str string) (*Version, error) {
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return nil, fmt.Errorf("distver.ParseVersion: invalid version: %q", str)
	}

	var ver Version

	for _, segStr := range strings.Split(match[reVersion.SubexpIndex("release")], ".") {
		segInt, err := strconv.Atoi(segStr)
		if err != nil {
			return nil, fmt.Errorf("distver.ParseVersion: %w", err)
		}
		ver.Release = append(ver.Release, segInt)
	}

	// The "dev" keyword with no number means dev0.
	if match[reVersion.SubexpIndex("dev")] != "" {
		n := 0
		if devN := match[reVersion.SubexpIndex("dev_n")]; devN != "" {
			var err error
			n, err = strconv.Atoi(devN)
			if err != nil {
				return nil, fmt.Errorf("distver.ParseVersion: %w", err)
			}
		}
		ver.Dev = &n
	}

	ver.Date = match[reVersion.SubexpIndex("date")]
	if ver.Date != "" && ver.Dev == nil {
		return nil, fmt.Errorf("distver.ParseVersion: date stamp on a non-development version: %q", str)
	}

	return &ver, nil
}

// String implements fmt.Stringer, rendering the canonical form.
func (ver Version) String() string {
	var ret strings.Builder
	if len(ver.Release) == 0 {
		panic("invalid version: no release segments")
	}
	fmt.Fprintf(&ret, "%d", ver.Release[0])
	for _, segment := range ver.Release[1:] {
		fmt.Fprintf(&ret, ".%d", segment)
	}
	if ver.Dev != nil {
		fmt.Fprintf(&ret, ".dev%d", *ver.Dev)
	}
	if ver.Date != "" {
		fmt.Fprintf(&ret, "-%s", ver.Date)
	}
	return ret.String()
}

// GoString implements fmt.GoStringer.
func (ver Version) GoString() string {
	dev := "nil"
	if ver.Dev != nil {
		dev = fmt.Sprintf("intPtr(%#v)", *ver.Dev)
	}
	return fmt.Sprintf("distver.Version{Release:%#v, Dev:%s, Date:%q}",
		ver.Release, dev, ver.Date)
}

// IsDev reports whether this is a development release.
func (ver Version) IsDev() bool {
	return ver.Dev != nil
}

// WithDev returns a copy of the version with the given development-release
// number and no date stamp.
func (ver Version) WithDev(n int) Version {
	ret := Version{
		Release: append([]int(nil), ver.Release...),
		Dev:     &n,
	}
	return ret
}

// WithDate returns a copy of the version stamped with the given date.  It
// panics if the version is not a development release, because only
// development snapshots carry date stamps.
func (ver Version) WithDate(t time.Time) Version {
	if ver.Dev == nil {
		panic("distver: date stamp on a non-development version")
	}
	n := *ver.Dev
	return Version{
		Release: append([]int(nil), ver.Release...),
		Dev:     &n,
		Date:    t.Format("20060102"),
	}
}

// Cmp returns -1 if ver is less than other, 0 if they are equal, and 1 if
// ver is greater than other.
//
// Release segments compare numerically position-wise, with missing trailing
// segments treated as zero (so "1.0" == "1.0.0").  A development release
// sorts before the final release it leads up to; development numbers and
// then date stamps break ties ("0.3.2.dev0" < "0.3.2.dev0-20260829" <
// "0.3.2.dev1" < "0.3.2").
func (ver Version) Cmp(other Version) int {
	for i := 0; i < len(ver.Release) || i < len(other.Release); i++ {
		var a, b int
		if i < len(ver.Release) {
			a = ver.Release[i]
		}
		if i < len(other.Release) {
			b = other.Release[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	switch {
	case ver.Dev != nil && other.Dev == nil:
		return -1
	case ver.Dev == nil && other.Dev != nil:
		return 1
	case ver.Dev == nil && other.Dev == nil:
		return 0
	}
	switch {
	case *ver.Dev < *other.Dev:
		return -1
	case *ver.Dev > *other.Dev:
		return 1
	}

	// Date stamps are fixed-width digit runs, so string order is
	// chronological order; an unstamped build predates any stamped one.
	switch {
	case ver.Date < other.Date:
		return -1
	case ver.Date > other.Date:
		return 1
	}
	return 0
}
