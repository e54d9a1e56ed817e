// Package repoid parses the "owner/repo" identifier the CLI takes as its
// positional argument.
package repoid

import (
	"strings"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
)

// RepoID identifies a repository by owner and name.
type RepoID struct {
	Owner string
	Name  string
}

// Parse splits s on "/". It succeeds only when the split yields exactly two
// non-empty segments; no case or whitespace normalization is applied.
func Parse(s string) (RepoID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoID{}, gitrepo.MalformedIdentifierError{Input: s}
	}
	return RepoID{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the identifier in its "owner/repo" input form.
func (id RepoID) String() string {
	return id.Owner + "/" + id.Name
}
