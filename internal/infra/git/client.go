// Package git provides repository detection.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// Client gives access to the repository containing a directory.
type Client struct {
	repo     *git.Repository
	repoRoot string // Worktree root
	gitDir   string // .git directory (common dir for linked worktrees)
}

// NewClient detects the repository containing dir, walking up parent
// directories. Returns domain.ErrNotGitRepository when there is none.
func NewClient(dir string) (*Client, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to hold .modes.toml.
		return nil, fmt.Errorf("%w: %v", domain.ErrNotGitRepository, err)
	}

	c := &Client{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
		gitDir:   filepath.Join(wt.Filesystem.Root(), ".git"),
	}
	if fs, ok := repo.Storer.(*filesystem.Storage); ok {
		c.gitDir = fs.Filesystem().Root()
	}
	return c, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// Repository returns the opened repository.
func (c *Client) Repository() *git.Repository {
	return c.repo
}
