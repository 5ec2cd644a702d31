// Package gitrepo adapts a local git repository to the lifecycle's
// version control port using go-git.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

const (
	fallbackAuthorName  = "ProjectBoard User"
	fallbackAuthorEmail = "user@projectboard.dev"
)

// Repo wraps an opened repository. The token, when set, authenticates
// pushes to HTTPS remotes; pushes to local or SSH remotes ignore it.
type Repo struct {
	repo       *git.Repository
	remoteName string
	token      string
}

// Open discovers the repository containing path, walking up through
// parent directories the way the git CLI does.
func Open(path, remoteName, token string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("no git repository found at or above %s", path)
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &Repo{repo: repo, remoteName: remoteName, token: token}, nil
}

// DiscoverRoot returns the worktree root of the repository containing
// path, without committing to a remote or credentials yet.
func DiscoverRoot(path string) (string, error) {
	repo, err := Open(path, "origin", "")
	if err != nil {
		return "", err
	}
	return repo.Root()
}

// Root returns the filesystem path of the repository worktree.
func (r *Repo) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

func (r *Repo) BranchExists(name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve branch %s: %w", name, err)
	}
	return true, nil
}

func (r *Repo) CreateAndCheckoutBranch(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}
	err = wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
		Keep:   true,
	})
	if err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}
	return nil
}

func (r *Repo) CheckoutBranch(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}
	err = wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Keep:   true,
	})
	if err != nil {
		return fmt.Errorf("checkout %s: %w", name, err)
	}
	return nil
}

func (r *Repo) HasStagedChanges() (bool, error) {
	status, err := r.status()
	if err != nil {
		return false, err
	}
	for _, fs := range status {
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) IsWorkingTreeDirty() (bool, error) {
	status, err := r.status()
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}

func (r *Repo) status() (git.Status, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return status, nil
}

// Commit records the staged changes and returns the new commit hash.
func (r *Repo) Commit(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("worktree: %w", err)
	}
	name, email := r.author()
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: name, Email: email, When: time.Now()},
	})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return hash.String(), nil
}

func (r *Repo) Push(ctx context.Context, branch string) (lifecycle.PushResult, error) {
	refspec := gitcfg.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	opts := &git.PushOptions{
		RemoteName: r.remoteName,
		RefSpecs:   []gitcfg.RefSpec{refspec},
	}
	if r.token != "" {
		if url, err := r.RemoteURL(); err == nil && strings.HasPrefix(url, "https://") {
			opts.Auth = &githttp.BasicAuth{Username: "git", Password: r.token}
		}
	}
	err := r.repo.PushContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return lifecycle.AlreadyUpToDate, nil
	}
	if err != nil {
		return "", fmt.Errorf("push %s to %s: %w", branch, r.remoteName, err)
	}
	return lifecycle.Pushed, nil
}

func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", head.Hash().String()[:8])
	}
	return head.Name().Short(), nil
}

// RemoteURL returns the first URL of the configured remote.
func (r *Repo) RemoteURL() (string, error) {
	remote, err := r.repo.Remote(r.remoteName)
	if err != nil {
		return "", fmt.Errorf("remote %s: %w", r.remoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", r.remoteName)
	}
	return urls[0], nil
}

// UserName returns the configured git user.name, or an empty string
// when none is set anywhere in scope.
func (r *Repo) UserName() string {
	if cfg, err := r.repo.ConfigScoped(gitcfg.SystemScope); err == nil && cfg.User.Name != "" {
		return cfg.User.Name
	}
	return ""
}

func (r *Repo) author() (string, string) {
	cfg, err := r.repo.ConfigScoped(gitcfg.SystemScope)
	if err != nil || cfg.User.Name == "" {
		return fallbackAuthorName, fallbackAuthorEmail
	}
	email := cfg.User.Email
	if email == "" {
		email = fallbackAuthorEmail
	}
	return cfg.User.Name, email
}
