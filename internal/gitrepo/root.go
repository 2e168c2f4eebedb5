// Package gitrepo inspects the working repository so the publisher can
// refuse to run outside a git checkout and derive GitHub URLs from the
// origin remote.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotRepository is returned when no enclosing .git directory exists.
var ErrNotRepository = errors.New("gitrepo: not inside a git repository")

// ErrRemoteUnavailable is returned when the origin remote cannot be read or
// parsed into an owner/name pair.
var ErrRemoteUnavailable = errors.New("gitrepo: origin remote unavailable")

// DetectRoot walks up from path looking for a .git entry and returns the
// repository root.
func DetectRoot(fs afero.Fs, path string) (string, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("gitrepo: resolve path: %w", err)
	}

	current := abs
	for {
		if info, err := fs.Stat(filepath.Join(current, ".git")); err == nil && info != nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotRepository
		}
		current = parent
	}
}

// IsRepository reports whether path sits inside a git checkout.
func IsRepository(fs afero.Fs, path string) bool {
	_, err := DetectRoot(fs, path)
	return err == nil
}

// RemoteURL returns the configured origin remote for the repository at dir.
func RemoteURL(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", "remote.origin.url")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: read remote.origin.url: %v", ErrRemoteUnavailable, err)
	}
	return strings.TrimSpace(string(out)), nil
}
