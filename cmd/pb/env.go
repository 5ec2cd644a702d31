package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adit-rah/project-board/internal/config"
	"github.com/adit-rah/project-board/internal/gitrepo"
	"github.com/adit-rah/project-board/internal/lifecycle"
	"github.com/adit-rah/project-board/internal/review"
	"github.com/adit-rah/project-board/internal/store"
)

var errNotInitialized = errors.New("ProjectBoard not initialized. Run 'pb init' first.")

// remoteCallTimeout bounds transitions that may touch the network, so
// a hung push or API call cannot wedge the process.
const remoteCallTimeout = 60 * time.Second

func transitionContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), remoteCallTimeout)
}

// boardEnv holds everything an initialized-board command needs: the
// repository, its config, and the open database.
type boardEnv struct {
	root  string
	cfg   *config.Config
	repo  *gitrepo.Repo
	store *store.Store
}

// withBoard opens the board for the repository containing the current
// directory, runs fn, and closes the database afterwards.
func withBoard(fn func(env *boardEnv) error) error {
	root, err := gitrepo.DiscoverRoot(".")
	if err != nil {
		return err
	}

	dbPath := config.DBPath(root)
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return errNotInitialized
		}
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	repo, err := gitrepo.Open(root, cfg.Remote, config.GitHubToken())
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(&boardEnv{root: root, cfg: cfg, repo: repo, store: st})
}

// orchestrator builds the lifecycle engine for this board. The remote
// review port is real only when the remote is a GitHub repository and
// a token is configured; otherwise remote steps fail with the cause.
func (env *boardEnv) orchestrator() *lifecycle.Orchestrator {
	return lifecycle.NewOrchestrator(env.store, env.repo, env.reviewPort(), env.cfg.BaseBranch)
}

func (env *boardEnv) reviewPort() lifecycle.RemoteReview {
	url, err := env.repo.RemoteURL()
	if err != nil {
		return review.Unavailable{Err: fmt.Errorf("%w: %v", lifecycle.ErrRemoteGone, err)}
	}
	remote, err := review.ParseRemote(url)
	if err != nil {
		return review.Unavailable{Err: fmt.Errorf("%w: %v", lifecycle.ErrRemoteGone, err)}
	}
	client, err := review.NewClient(context.Background(), config.GitHubToken(), remote)
	if err != nil {
		return review.Unavailable{Err: err}
	}
	return client
}

// commentAuthor picks the author for comments: git user.name, then the
// configured author, then "unknown".
func (env *boardEnv) commentAuthor() string {
	if name := env.repo.UserName(); name != "" {
		return name
	}
	if env.cfg.Author != "" {
		return env.cfg.Author
	}
	return "unknown"
}
