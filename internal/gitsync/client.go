package gitsync

import (
	"context"
	"errors"
	"io"

	git "github.com/go-git/go-git/v5"
)

// goGitClient implements Client with go-git. Clones are shallow (depth 1,
// default branch only); full history is not needed for corpus data.
type goGitClient struct{}

func (goGitClient) Clone(ctx context.Context, url, dir string, progress io.Writer) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
		Progress:     progress,
	})
	return err
}

func (goGitClient) Pull(ctx context.Context, dir string, progress io.Writer) (bool, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return false, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return false, err
	}
	err = worktree.PullContext(ctx, &git.PullOptions{
		RemoteName: git.DefaultRemoteName,
		Progress:   progress,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return true, nil
	}
	return false, err
}
