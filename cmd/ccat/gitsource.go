package main

import (
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// readFileAtRevision returns the content of path as stored at the given git
// revision (anything ResolveRevision accepts: HEAD~1, a branch, a tag, a
// short hash). The path is resolved relative to the worktree root of the
// repository enclosing it.
func readFileAtRevision(path, revision string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("resolve revision %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("load commit %s: %w", hash, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}

	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return "", fmt.Errorf("relativize path: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("load tree: %w", err)
	}

	file, err := tree.File(filepath.ToSlash(rel))
	if err != nil {
		return "", fmt.Errorf("lookup %s at %s: %w", rel, revision, err)
	}

	return file.Contents()
}
