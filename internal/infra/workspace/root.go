// Package workspace resolves the directory that holds the ledger file.
package workspace

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Resolve returns the workspace root for the given directory: the root of
// the enclosing git worktree when dir is inside a repository, otherwise
// dir itself. The ledger file lives at the workspace root so every
// invocation from anywhere in the tree operates on the same file.
func Resolve(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return dir, nil
		}
		return "", fmt.Errorf("detect workspace root: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: no worktree to anchor to
		if errors.Is(err, git.ErrIsBareRepository) {
			return dir, nil
		}
		return "", fmt.Errorf("resolve worktree: %w", err)
	}

	return wt.Filesystem.Root(), nil
}
