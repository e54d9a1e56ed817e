package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
repos:
  - owner: acme
    name: billing-api
    default_branch: main
    tree:
      - {path: src, type: tree}
      - {path: src/main.go, type: blob, size: 120}
  - owner: acme
    name: abandoned
    default_branch: null
`), 0o600))

	s := newStore()
	require.NoError(t, seedFromFile(s, path))

	repo := s.get("acme", "billing-api")
	require.NotNil(t, repo)
	require.NotNil(t, repo.DefaultBranch)
	assert.Equal(t, "main", *repo.DefaultBranch)
	require.Len(t, repo.Entries, 2)
	assert.Equal(t, "040000", repo.Entries[0].Mode)
	assert.Equal(t, "100644", repo.Entries[1].Mode)
	require.NotNil(t, repo.Entries[1].Size)
	assert.Equal(t, int64(120), *repo.Entries[1].Size)
	assert.Len(t, repo.Entries[1].SHA, 40)

	abandoned := s.get("acme", "abandoned")
	require.NotNil(t, abandoned)
	assert.Nil(t, abandoned.DefaultBranch)
}

func TestSeedFromFile_MissingOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repos:\n  - name: orphan\n"), 0o600))

	err := seedFromFile(newStore(), path)

	assert.Error(t, err)
}

func TestSeedDefault_CoversFailureModes(t *testing.T) {
	s := newStore()
	seedDefault(s)

	require.NotNil(t, s.get("acme", "legacy-tools"))
	assert.True(t, s.get("acme", "legacy-tools").Truncated)
	assert.Nil(t, s.get("acme", "abandoned").DefaultBranch)
	assert.Empty(t, s.get("acme", "empty-repo").Entries)
}
