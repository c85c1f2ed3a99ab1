// Package repo resolves the name of the repository a directory belongs to.
package repo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNoName is returned when neither the repository nor the directory yields
// a usable name.
var ErrNoName = errors.New("could not determine repository name")

// Name returns the base name of the git worktree containing dir, searching
// parent directories. Outside a repository it falls back to the base name of
// dir itself.
func Name(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoName, err)
	}

	if name, ok := worktreeName(abs); ok {
		return name, nil
	}

	name := filepath.Base(abs)
	if !usable(name) {
		return "", fmt.Errorf("%w: %s", ErrNoName, abs)
	}
	return name, nil
}

func worktreeName(abs string) (string, bool) {
	r, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := r.Worktree()
	if err != nil {
		return "", false
	}
	name := filepath.Base(wt.Filesystem.Root())
	return name, usable(name)
}

func usable(name string) bool {
	return name != "" && name != "." && name != string(filepath.Separator)
}
