package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// RepoResolver reads HEAD directly from the repository containing Dir.
// Parent directories are searched for the .git directory, matching the
// behaviour of the git binary.
type RepoResolver struct {
	Dir string
}

// NewRepoResolver creates a RepoResolver for dir.
func NewRepoResolver(dir string) *RepoResolver {
	if dir == "" {
		dir = "."
	}
	return &RepoResolver{Dir: dir}
}

func (r *RepoResolver) ResolveHead(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(r.Dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return normalizeCommit([]byte(ref.Hash().String()))
}

// GitDir returns the .git directory of the repository containing dir.
func GitDir(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}
	st, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("repository at %s is not stored on disk", dir)
	}
	return st.Filesystem().Root(), nil
}
