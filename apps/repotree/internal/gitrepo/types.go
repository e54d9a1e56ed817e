// Package gitrepo holds the domain types the repotree pipeline passes between
// stages, the port the API adapter implements, and the error kinds the CLI
// reports. Everything here is an immutable value object: each stage consumes
// the previous stage's output and produces its own.
package gitrepo

import "context"

// EntryKind classifies a tree node.
type EntryKind string

const (
	// KindDir is a directory ("tree" in the GitHub API).
	KindDir EntryKind = "dir"
	// KindFile is a regular file ("blob" in the GitHub API).
	KindFile EntryKind = "file"
	// KindUnknown covers anything else the API may return (submodule
	// commits, symlinks with unexpected modes).
	KindUnknown EntryKind = "unknown"
)

// KindFromAPI maps a GitHub tree entry type to an EntryKind. Total: any
// unrecognized value maps to KindUnknown.
func KindFromAPI(t string) EntryKind {
	switch t {
	case "tree":
		return KindDir
	case "blob":
		return KindFile
	default:
		return KindUnknown
	}
}

// TreeEntry is one node of a repository tree, path relative to the repo root.
// Size is set for files only; URL is absent for some entry kinds.
type TreeEntry struct {
	Path string
	Kind EntryKind
	SHA  string
	Size *int64
	URL  *string
}

// Tree is the recursive listing of a branch, in the order the API returned
// it. Truncated reports that the API capped the result; callers surface it
// but do not attempt recovery.
type Tree struct {
	Entries   []TreeEntry
	Truncated bool
}

// RepoReader is the port the listing service depends on. The adapters/github
// package implements it against the real API; tests substitute fakes.
type RepoReader interface {
	// DefaultBranch resolves the repository's default branch name.
	DefaultBranch(ctx context.Context, owner, repo string) (string, error)

	// Tree fetches the full recursive tree for ref.
	Tree(ctx context.Context, owner, repo, ref string) (*Tree, error)
}
