// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package release

import (
	"fmt"
	"strings"
	"text/template"
)

// ReadmeData is what a README template (and the downloadUrl template) may
// reference.
type ReadmeData struct {
	// This is the resolved version of the build being described.
	This string
	// Release is the stable (last released) version.
	Release string
}

// RenderReadme executes a README template against the version strings.  The
// template language is text/template; the usual references are {{.This}}
// and {{.Release}}.
func RenderReadme(tmplText string, data ReadmeData) (string, error) {
	tmpl, err := template.New("README").Option("missingkey=error").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("release.RenderReadme: %w", err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("release.RenderReadme: %w", err)
	}
	return buf.String(), nil
}
