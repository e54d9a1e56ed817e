// Package github implements the gitrepo.RepoReader port using the official
// go-github library. Wire it up with an authenticated *github.Client from
// apps/repotree/internal/platform/github.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	gogithub "github.com/google/go-github/v75/github"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
)

// Adapter wraps a go-github client and implements gitrepo.RepoReader.
type Adapter struct {
	gh *gogithub.Client
}

// New creates an Adapter from an authenticated *github.Client.
func New(gh *gogithub.Client) *Adapter {
	return &Adapter{gh: gh}
}

// DefaultBranch resolves the repository's default branch from its metadata.
func (a *Adapter) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	r, _, err := a.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", classify("get repository", err)
	}
	if r.DefaultBranch == nil || *r.DefaultBranch == "" {
		return "", gitrepo.MissingDefaultBranchError{Owner: owner, Repo: repo}
	}
	return *r.DefaultBranch, nil
}

// Tree fetches the full recursive tree for ref, preserving the server's
// entry order.
func (a *Adapter) Tree(ctx context.Context, owner, repo, ref string) (*gitrepo.Tree, error) {
	t, _, err := a.gh.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		return nil, classify("get tree", err)
	}

	entries := make([]gitrepo.TreeEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		entry := gitrepo.TreeEntry{
			Path: e.GetPath(),
			Kind: gitrepo.KindFromAPI(e.GetType()),
			SHA:  e.GetSHA(),
			URL:  e.URL,
		}
		if e.Size != nil {
			size := int64(*e.Size)
			entry.Size = &size
		}
		entries = append(entries, entry)
	}

	return &gitrepo.Tree{
		Entries:   entries,
		Truncated: t.GetTruncated(),
	}, nil
}

// classify maps a go-github error onto the pipeline's error kinds: body-shape
// mismatches become DecodeFailedError, everything else (non-2xx responses,
// DNS, connection, TLS) becomes RequestFailedError.
func classify(op string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return gitrepo.DecodeFailedError{Op: op, Err: err}
	}
	return gitrepo.RequestFailedError{Op: op, Err: err}
}
