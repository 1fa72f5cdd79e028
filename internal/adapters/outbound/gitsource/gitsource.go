// Package gitsource implements domain.RepoSource using go-git.
package gitsource

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// Source clones remote repositories and reads HEAD metadata.
type Source struct{}

var _ domain.RepoSource = (*Source)(nil)

func New() *Source { return &Source{} }

// Fetch materializes url for analysis. Remote URLs are cloned (shallow,
// single branch) into a temp directory removed by cleanup; local paths
// are returned as-is with a no-op cleanup.
func (s *Source) Fetch(url, branch string) (string, func(), error) {
	if !isRemote(url) {
		return url, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "selfdeploy-clone-")
	if err != nil {
		return "", nil, fmt.Errorf("creating clone dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	opts := &git.CloneOptions{URL: url, Depth: 1, SingleBranch: true}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
	}
	if _, err := git.PlainClone(dir, false, opts); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("cloning %s: %w", url, err)
	}
	return dir, cleanup, nil
}

// CommitHash returns the HEAD commit of a local checkout.
func (s *Source) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

func isRemote(url string) bool {
	return strings.Contains(url, "://") || strings.HasPrefix(url, "git@")
}
