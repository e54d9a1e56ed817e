package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
	"github.com/tilsley/repotree/apps/repotree/internal/render"
)

func entry(path string, kind gitrepo.EntryKind) gitrepo.TreeEntry {
	return gitrepo.TreeEntry{Path: path, Kind: kind, SHA: "deadbeef"}
}

func TestTree_SingleFile(t *testing.T) {
	out := render.Tree([]gitrepo.TreeEntry{entry("README.md", gitrepo.KindFile)})

	assert.Equal(t, "FILE README.md\n", out)
}

func TestTree_DirThenFile_OrderPreserved(t *testing.T) {
	out := render.Tree([]gitrepo.TreeEntry{
		entry("src", gitrepo.KindDir),
		entry("src/main.rs", gitrepo.KindFile),
	})

	assert.Equal(t, "DIR src\nFILE src/main.rs\n", out)
}

func TestTree_UnknownKind(t *testing.T) {
	out := render.Tree([]gitrepo.TreeEntry{entry("submodule", gitrepo.KindUnknown)})

	assert.Equal(t, "UNK submodule\n", out)
}

func TestTree_EmptyInput(t *testing.T) {
	assert.Equal(t, "", render.Tree(nil))
}

func TestTree_LengthPreserving(t *testing.T) {
	entries := []gitrepo.TreeEntry{
		entry("a", gitrepo.KindDir),
		entry("a/b", gitrepo.KindFile),
		entry("a/c", gitrepo.KindFile),
		entry("z", gitrepo.KindUnknown),
	}

	out := render.Tree(entries)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, len(entries))
	for i, e := range entries {
		assert.True(t, strings.HasSuffix(lines[i], " "+e.Path), "line %d should end with entry %d's path", i, i)
	}
}

func TestTree_PathRenderedVerbatim(t *testing.T) {
	out := render.Tree([]gitrepo.TreeEntry{entry("dir with space/Weird File.TXT", gitrepo.KindFile)})

	assert.Equal(t, "FILE dir with space/Weird File.TXT\n", out)
}

func TestTree_Idempotent(t *testing.T) {
	entries := []gitrepo.TreeEntry{
		entry("src", gitrepo.KindDir),
		entry("src/lib.rs", gitrepo.KindFile),
	}

	assert.Equal(t, render.Tree(entries), render.Tree(entries))
}
