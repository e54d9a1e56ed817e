// Package render turns a tree into its flat text listing.
package render

import (
	"strings"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
)

// Tree renders one line per entry: "DIR ", "FILE " or "UNK " followed by the
// path verbatim and a newline. Entry order is preserved; nothing is sorted,
// deduplicated or filtered.
func Tree(entries []gitrepo.TreeEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(label(e.Kind))
		b.WriteByte(' ')
		b.WriteString(e.Path)
		b.WriteByte('\n')
	}
	return b.String()
}

func label(k gitrepo.EntryKind) string {
	switch k {
	case gitrepo.KindDir:
		return "DIR"
	case gitrepo.KindFile:
		return "FILE"
	default:
		return "UNK"
	}
}
