// Package listing is the use-case orchestrator: resolve the default branch,
// fetch the recursive tree, render it. It depends only on the
// gitrepo.RepoReader port — no HTTP or go-github imports.
package listing

import (
	"context"
	"log/slog"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
	"github.com/tilsley/repotree/apps/repotree/internal/render"
)

// Service runs the branch-then-tree sequence against a RepoReader.
type Service struct {
	reader gitrepo.RepoReader
	log    *slog.Logger
}

// NewService creates a new Service.
func NewService(reader gitrepo.RepoReader, log *slog.Logger) *Service {
	return &Service{reader: reader, log: log}
}

// List resolves the repository's default branch, fetches its full recursive
// tree, and returns the rendered listing. The first failing step aborts the
// run; no step is retried.
func (s *Service) List(ctx context.Context, owner, name string) (string, error) {
	branch, err := s.reader.DefaultBranch(ctx, owner, name)
	if err != nil {
		return "", err
	}
	s.log.Debug("resolved default branch", "owner", owner, "repo", name, "branch", branch)

	tree, err := s.reader.Tree(ctx, owner, name, branch)
	if err != nil {
		return "", err
	}
	if tree.Truncated {
		// The API capped the listing; we render what we got.
		s.log.Warn("tree listing truncated by the API", "owner", owner, "repo", name, "entries", len(tree.Entries))
	}

	return render.Tree(tree.Entries), nil
}
