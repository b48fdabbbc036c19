// Package resources loads assets from a directory resolved relative to the
// running executable, so a built binary finds its shaders next to itself
// regardless of the working directory.
package resources

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrContainsNul marks a text resource with an embedded NUL byte,
	// which cannot be handed to NUL-terminated string consumers.
	ErrContainsNul = errors.New("content contains a NUL byte")
	// ErrExePath marks a failure to locate the running executable.
	ErrExePath = errors.New("cannot resolve executable path")
)

// Loader resolves forward-slash logical names under a fixed root directory.
type Loader struct {
	root string
}

// FromRelativeExePath returns a Loader rooted at the given path relative to
// the directory holding the running executable.
func FromRelativeExePath(rel string) (*Loader, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExePath, err)
	}
	return &Loader{root: filepath.Join(filepath.Dir(exe), filepath.FromSlash(rel))}, nil
}

// FromRoot returns a Loader over an explicit directory.
func FromRoot(root string) *Loader {
	return &Loader{root: root}
}

// Load returns the raw contents of the named resource.
func (l *Loader) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", name, err)
	}
	return data, nil
}

// LoadText returns the contents of a text resource. Content containing a
// NUL byte is rejected with ErrContainsNul, so the result is always safe to
// NUL-terminate downstream.
func (l *Loader) LoadText(name string) (string, error) {
	data, err := l.Load(name)
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("load resource %s: %w", name, ErrContainsNul)
	}
	return string(data), nil
}
