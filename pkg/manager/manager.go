package manager

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// Manager owns the directory the server exposes.
type Manager struct {
	Dir string
}

// New resolves dir to an absolute path and verifies it exists and is a
// directory. Validation happens here, before any socket is created.
func New(dir string) (*Manager, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve serving directory %q: %w", dir, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("serving directory: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("serving directory %s is not a directory", abs)
	}
	return &Manager{Dir: abs}, nil
}

// FileSystem returns the filesystem served over HTTP.
func (mgr *Manager) FileSystem() http.FileSystem {
	return http.Dir(mgr.Dir)
}
