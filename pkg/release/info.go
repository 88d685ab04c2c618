// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release

import (
	"fmt"
	"os"
	"strings"

	"github.com/uqfoundation/relgen/pkg/fsutil"
)

// Metadata is the content of the generated metadata module ("info file"):
// the small Python module written into the package so that the installed
// library can introspect its own version, README, and license text.
type Metadata struct {
	ThisVersion   string
	StableVersion string
	Readme        string
	License       string
}

const infoHeader = "# THIS FILE GENERATED BY RELGEN; DO NOT EDIT\n"

// WriteInfo serializes the metadata module to filename, overwriting any
// prior content.  The write goes through a temporary file, so a failure
// never leaves a truncated module behind.
func WriteInfo(meta Metadata, filename string) error {
	var buf strings.Builder
	buf.WriteString(infoHeader)
	fmt.Fprintf(&buf, "this_version = '%s'\n", escapePy(meta.ThisVersion))
	fmt.Fprintf(&buf, "stable_version = '%s'\n", escapePy(meta.StableVersion))
	fmt.Fprintf(&buf, "readme = '''%s'''\n", escapePy(meta.Readme))
	fmt.Fprintf(&buf, "license = '''%s'''\n", escapePy(meta.License))
	return fsutil.WriteFileAtomic(filename, []byte(buf.String()), 0o644)
}

// ReadInfo parses a previously generated metadata module.  It also reads
// modules written by older generators that did not escape their string
// literals; a stray quote inside such a module is the module's problem, not
// ours, same as it was the original generator's.
func ReadInfo(filename string) (*Metadata, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	fields, err := parseInfo(string(content))
	if err != nil {
		return nil, fmt.Errorf("release.ReadInfo: %q: %w", filename, err)
	}
	meta := &Metadata{
		ThisVersion:   fields["this_version"],
		StableVersion: fields["stable_version"],
		Readme:        fields["readme"],
		License:       fields["license"],
	}
	if meta.ThisVersion == "" {
		return nil, fmt.Errorf("release.ReadInfo: %q: no this_version field", filename)
	}
	return meta, nil
}

func escapePy(str string) string {
	str = strings.ReplaceAll(str, `\`, `\\`)
	str = strings.ReplaceAll(str, `'`, `\'`)
	return str
}

// parseInfo scans a sequence of ``name = '...'`` /  ``name = '''...'''``
// Python assignments, skipping comment lines.
func parseInfo(src string) (map[string]string, error) {
	fields := map[string]string{}
	rest := src
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if rest == "" {
			return fields, nil
		}
		if rest[0] == '#' {
			if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
				rest = rest[idx+1:]
				continue
			}
			return fields, nil
		}

		nameLen := 0
		for nameLen < len(rest) && (rest[nameLen] == '_' ||
			('a' <= rest[nameLen] && rest[nameLen] <= 'z') ||
			('A' <= rest[nameLen] && rest[nameLen] <= 'Z') ||
			(nameLen > 0 && '0' <= rest[nameLen] && rest[nameLen] <= '9')) {
			nameLen++
		}
		if nameLen == 0 {
			return nil, fmt.Errorf("expected an assignment, got %q", truncate(rest))
		}
		name := rest[:nameLen]
		rest = strings.TrimLeft(rest[nameLen:], " \t")
		if !strings.HasPrefix(rest, "=") {
			return nil, fmt.Errorf("field %q: expected '='", name)
		}
		rest = strings.TrimLeft(rest[1:], " \t")

		var delim string
		switch {
		case strings.HasPrefix(rest, "'''"):
			delim = "'''"
		case strings.HasPrefix(rest, "'"):
			delim = "'"
		default:
			return nil, fmt.Errorf("field %q: expected a string literal", name)
		}
		rest = rest[len(delim):]

		var val strings.Builder
		for {
			if rest == "" {
				return nil, fmt.Errorf("field %q: unterminated string literal", name)
			}
			switch {
			case strings.HasPrefix(rest, delim):
				rest = rest[len(delim):]
			case rest[0] == '\\' && len(rest) >= 2 && (rest[1] == '\\' || rest[1] == '\''):
				val.WriteByte(rest[1])
				rest = rest[2:]
				continue
			case rest[0] == '\n' && delim == "'":
				return nil, fmt.Errorf("field %q: newline in single-quoted string", name)
			default:
				val.WriteByte(rest[0])
				rest = rest[1:]
				continue
			}
			break
		}
		fields[name] = val.String()
	}
}

func truncate(str string) string {
	if idx := strings.IndexByte(str, '\n'); idx >= 0 {
		str = str[:idx]
	}
	if len(str) > 40 {
		str = str[:40] + "..."
	}
	return str
}
