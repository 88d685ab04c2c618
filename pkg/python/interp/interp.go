// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

// Package interp interrogates a Python interpreter on the host: which
// language version it is, and whether it can import a given module.
//
// Everything here shells out to the interpreter itself rather than guessing
// from filenames, because the interpreter is the only authority on what it
// can import.
package interp

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/datawire/dlib/dexec"
)

// VersionTuple is a Python language version, as in sys.version_info[:2].
type VersionTuple struct {
	Major int
	Minor int
}

// String implements fmt.Stringer.
func (t VersionTuple) String() string {
	return fmt.Sprintf("%d.%d", t.Major, t.Minor)
}

// Cmp returns -1, 0, or 1 as t sorts before, equal to, or after other.
func (t VersionTuple) Cmp(other VersionTuple) int {
	switch {
	case t.Major != other.Major:
		if t.Major < other.Major {
			return -1
		}
		return 1
	case t.Minor != other.Minor:
		if t.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

var reTuple = regexp.MustCompile(`^([0-9]+)\.([0-9]+)$`)

// ParseVersionTuple parses a "MAJOR.MINOR" string.
func ParseVersionTuple(str string) (VersionTuple, error) {
	match := reTuple.FindStringSubmatch(strings.TrimSpace(str))
	if match == nil {
		return VersionTuple{}, fmt.Errorf("interp.ParseVersionTuple: invalid version tuple: %q", str)
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return VersionTuple{}, err
	}
	minor, err := strconv.Atoi(match[2])
	if err != nil {
		return VersionTuple{}, err
	}
	return VersionTuple{Major: major, Minor: minor}, nil
}

// Inspect asks the interpreter at exe for its language version.
func Inspect(ctx context.Context, exe string) (VersionTuple, error) {
	cmd := dexec.CommandContext(ctx, exe, "-c",
		`import sys; sys.stdout.write("%d.%d" % sys.version_info[:2])`)
	out, err := cmd.Output()
	if err != nil {
		return VersionTuple{}, fmt.Errorf("interp.Inspect: %q: %w", exe, err)
	}
	tuple, err := ParseVersionTuple(string(out))
	if err != nil {
		return VersionTuple{}, fmt.Errorf("interp.Inspect: %q: %w", exe, err)
	}
	return tuple, nil
}

// ProbeModule asks the interpreter at exe to import the named module.  It
// returns ok=false with a nil error if the module is simply not importable;
// a non-nil error means the interpreter itself could not be run.
//
// The reported version is the module's __version__ attribute, or "" if the
// module doesn't have one.
func ProbeModule(ctx context.Context, exe, module string) (version string, ok bool, err error) {
	cmd := dexec.CommandContext(ctx, exe, "-c", fmt.Sprintf(`
import importlib, sys
try:
    m = importlib.import_module(%q)
except ImportError:
    sys.stdout.write("absent")
else:
    sys.stdout.write("present " + str(getattr(m, "__version__", "")))
`, module))
	out, err := cmd.Output()
	if err != nil {
		return "", false, fmt.Errorf("interp.ProbeModule: %q: %w", exe, err)
	}
	str := strings.TrimSpace(string(out))
	switch {
	case str == "absent":
		return "", false, nil
	case strings.HasPrefix(str, "present"):
		return strings.TrimSpace(strings.TrimPrefix(str, "present")), true, nil
	}
	return "", false, fmt.Errorf("interp.ProbeModule: %q: unexpected interpreter output: %q", exe, str)
}
