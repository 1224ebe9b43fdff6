// Package writer replaces files atomically.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultPerm is used for files that do not exist yet.
const DefaultPerm fs.FileMode = 0o644

// WriteFile replaces name with data via a temp file in the same directory
// and a rename. An existing file keeps its permissions.
func WriteFile(fsys afero.Fs, name string, data []byte) error {
	perm := DefaultPerm
	if info, err := fsys.Stat(name); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	tmpFile, err := afero.TempFile(fsys, filepath.Dir(name), ".crosshair-switcher-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := fsys.Chmod(tmpPath, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := fsys.Rename(tmpPath, name); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
