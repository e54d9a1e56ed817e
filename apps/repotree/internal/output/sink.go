// Package output writes the rendered listing to its destination.
package output

import (
	"io"
	"os"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
)

// Sink writes the rendered text either to a file or to stdout. The zero
// value writes to stdout.
type Sink struct {
	// Path is the destination file; empty means stdout.
	Path string

	// Stdout overrides the stdout destination in tests. Nil means os.Stdout.
	Stdout io.Writer
}

// Write emits text in a single write call. A configured file is created or
// truncated; any failure wraps into OutputWriteFailedError.
func (s Sink) Write(text string) error {
	if s.Path != "" {
		if err := os.WriteFile(s.Path, []byte(text), 0o644); err != nil {
			return gitrepo.OutputWriteFailedError{Path: s.Path, Err: err}
		}
		return nil
	}

	w := s.Stdout
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, text); err != nil {
		return gitrepo.OutputWriteFailedError{Path: "stdout", Err: err}
	}
	return nil
}
