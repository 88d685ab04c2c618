// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

// Package reproducible provides the build timestamp, honoring the
// SOURCE_DATE_EPOCH convention so that dated development snapshots can be
// rebuilt byte-for-byte.
//
// https://reproducible-builds.org/specs/source-date-epoch/
package reproducible

import (
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	nowOnce sync.Once
	now     time.Time
)

// Now returns the wall-clock time to attribute to this build.  If
// SOURCE_DATE_EPOCH is set, that instant is returned instead of the actual
// current time; either way the answer is computed once and then frozen for
// the life of the process.
func Now() time.Time {
	nowOnce.Do(func() {
		secs, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64)
		if err == nil {
			now = time.Unix(secs, 0).UTC()
		} else {
			now = time.Now()
		}
	})
	return now
}
