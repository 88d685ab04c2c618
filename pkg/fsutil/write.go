// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

// Package fsutil deals with writing generated files safely.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to filename by way of a temporary file in the
// same directory, renaming it into place only once the full contents have
// been written and synced.  An error on any step leaves either the old
// contents or no file at all; never a truncated artifact.
func WriteFileAtomic(filename string, data []byte, perm fs.FileMode) (err error) {
	tmpfile, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".tmp.")
	if err != nil {
		return err
	}
	tmpname := tmpfile.Name()
	defer func() {
		if err != nil {
			// Best-effort cleanup; the write error is the one to report.
			_ = os.Remove(tmpname)
		}
	}()

	if _, err := tmpfile.Write(data); err != nil {
		_ = tmpfile.Close()
		return err
	}
	if err := tmpfile.Chmod(perm); err != nil {
		_ = tmpfile.Close()
		return err
	}
	if err := tmpfile.Sync(); err != nil {
		_ = tmpfile.Close()
		return err
	}
	if err := tmpfile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpname, filename); err != nil {
		return err
	}
	return nil
}
