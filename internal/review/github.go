// Package review adapts the GitHub pull request API to the lifecycle's
// remote review port.
package review

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/adit-rah/project-board/internal/lifecycle"
)

// Remote locates a GitHub repository.
type Remote struct {
	Owner string
	Repo  string
}

var (
	sshRemote   = regexp.MustCompile(`^git@github\.com:([^/]+)/(.+?)(?:\.git)?$`)
	httpsRemote = regexp.MustCompile(`^https://github\.com/([^/]+)/(.+?)(?:\.git)?/?$`)
	prURLPath   = regexp.MustCompile(`/pull/(\d+)(?:$|[/?#])`)
)

// ParseRemote extracts owner and repository name from a git remote URL.
// Both SSH (git@github.com:owner/repo.git) and HTTPS forms are accepted.
func ParseRemote(url string) (Remote, error) {
	for _, re := range []*regexp.Regexp{sshRemote, httpsRemote} {
		if m := re.FindStringSubmatch(strings.TrimSpace(url)); m != nil {
			return Remote{Owner: m[1], Repo: m[2]}, nil
		}
	}
	return Remote{}, fmt.Errorf("remote %q is not a GitHub repository", url)
}

// Unavailable is a RemoteReview whose every call fails with a fixed
// error. It stands in when no token or GitHub remote is configured, so
// transitions that never reach the remote still run and the ones that
// do fail at their remote step with the real cause.
type Unavailable struct {
	Err error
}

func (u Unavailable) CreatePR(context.Context, string, string, string, string) (lifecycle.PullRequest, error) {
	return lifecycle.PullRequest{}, u.Err
}

func (u Unavailable) FindOpenPR(context.Context, string) (*lifecycle.PullRequest, error) {
	return nil, u.Err
}

func (u Unavailable) Status(context.Context, string) (lifecycle.PRStatus, error) {
	return "", u.Err
}

// Client implements lifecycle.RemoteReview against the GitHub API.
type Client struct {
	gh     *github.Client
	remote Remote
}

// NewClient builds an authenticated client. An empty token is an
// authentication error up front rather than a 401 at the first call.
func NewClient(ctx context.Context, token string, remote Remote) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: no GitHub token configured", lifecycle.ErrAuthentication)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{gh: github.NewClient(tc), remote: remote}, nil
}

// WithBaseURL points the client at a different API endpoint. Used by
// tests and GitHub Enterprise setups.
func (c *Client) WithBaseURL(raw string) error {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse API base URL: %w", err)
	}
	c.gh.BaseURL = u
	return nil
}

func (c *Client) CreatePR(ctx context.Context, branch, base, title, body string) (lifecycle.PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Create(ctx, c.remote.Owner, c.remote.Repo, &github.NewPullRequest{
		Title: github.String(title),
		Head:  github.String(branch),
		Base:  github.String(base),
		Body:  github.String(body),
	})
	if err != nil {
		return lifecycle.PullRequest{}, classify(err, fmt.Sprintf("create pull request for %s", branch))
	}
	return lifecycle.PullRequest{Number: pr.GetNumber(), URL: pr.GetHTMLURL()}, nil
}

func (c *Client) FindOpenPR(ctx context.Context, branch string) (*lifecycle.PullRequest, error) {
	prs, _, err := c.gh.PullRequests.List(ctx, c.remote.Owner, c.remote.Repo, &github.PullRequestListOptions{
		State: "open",
		Head:  fmt.Sprintf("%s:%s", c.remote.Owner, branch),
	})
	if err != nil {
		return nil, classify(err, fmt.Sprintf("list pull requests for %s", branch))
	}
	if len(prs) == 0 {
		return nil, nil
	}
	pr := prs[0]
	return &lifecycle.PullRequest{Number: pr.GetNumber(), URL: pr.GetHTMLURL()}, nil
}

func (c *Client) Status(ctx context.Context, prURL string) (lifecycle.PRStatus, error) {
	number, err := prNumber(prURL)
	if err != nil {
		return "", err
	}
	pr, _, err := c.gh.PullRequests.Get(ctx, c.remote.Owner, c.remote.Repo, number)
	if err != nil {
		return "", classify(err, fmt.Sprintf("fetch pull request #%d", number))
	}
	switch {
	case pr.GetMerged():
		return lifecycle.PRMerged, nil
	case pr.GetState() == "closed":
		return lifecycle.PRClosed, nil
	default:
		return lifecycle.PROpen, nil
	}
}

func prNumber(prURL string) (int, error) {
	m := prURLPath.FindStringSubmatch(prURL)
	if m == nil {
		return 0, fmt.Errorf("cannot find a pull request number in %q", prURL)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("pull request number in %q: %w", prURL, err)
	}
	return n, nil
}

// classify maps GitHub API failures onto the lifecycle sentinels so the
// orchestrator can tell a bad credential from a deleted PR.
func classify(err error, op string) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", lifecycle.ErrAuthentication, op)
		case http.StatusNotFound, http.StatusGone:
			return fmt.Errorf("%w: %s", lifecycle.ErrRemoteGone, op)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
