package gitrepo

import "fmt"

// MalformedIdentifierError is returned when the repository argument does not
// split into exactly two non-empty segments.
type MalformedIdentifierError struct {
	Input string
}

// Error implements the error interface.
func (e MalformedIdentifierError) Error() string {
	return fmt.Sprintf("repository %q is not in the form \"owner/repo\"", e.Input)
}

// MissingCredentialError is returned when no token could be resolved from the
// flag, the environment, or a .env file.
type MissingCredentialError struct{}

// Error implements the error interface.
func (e MissingCredentialError) Error() string {
	return "no GitHub token found: pass --token, set GITHUB_TOKEN, or put GITHUB_TOKEN in a .env file"
}

// RequestFailedError is returned on transport failures or non-2xx responses
// from either API call.
type RequestFailedError struct {
	Op  string // "get repository" or "get tree"
	Err error
}

// Error implements the error interface.
func (e RequestFailedError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying transport or API error.
func (e RequestFailedError) Unwrap() error { return e.Err }

// DecodeFailedError is returned when a response body does not match the
// expected JSON shape.
type DecodeFailedError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e DecodeFailedError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying decode error.
func (e DecodeFailedError) Unwrap() error { return e.Err }

// MissingDefaultBranchError is returned when the repository metadata carries
// no default branch.
type MissingDefaultBranchError struct {
	Owner string
	Repo  string
}

// Error implements the error interface.
func (e MissingDefaultBranchError) Error() string {
	return fmt.Sprintf("repository %s/%s has no default branch", e.Owner, e.Repo)
}

// OutputWriteFailedError is returned when the destination file cannot be
// created or written.
type OutputWriteFailedError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e OutputWriteFailedError) Error() string {
	return fmt.Sprintf("write output file %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying filesystem error.
func (e OutputWriteFailedError) Unwrap() error { return e.Err }
