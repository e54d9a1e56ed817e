package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
)

// clearToken unsets GITHUB_TOKEN for the duration of the test, restoring
// whatever was there before (t.Setenv registers the cleanup).
func clearToken(t *testing.T) {
	t.Setenv(EnvVar, "placeholder")
	_ = os.Unsetenv(EnvVar)
}

func TestResolve_FlagWins(t *testing.T) {
	t.Setenv(EnvVar, "from-env")

	tok, err := resolve("from-flag", "does-not-exist.env")

	require.NoError(t, err)
	assert.Equal(t, "from-flag", tok)
}

func TestResolve_EnvWhenNoFlag(t *testing.T) {
	t.Setenv(EnvVar, "from-env")

	tok, err := resolve("", "does-not-exist.env")

	require.NoError(t, err)
	assert.Equal(t, "from-env", tok)
}

func TestResolve_DotEnvFile(t *testing.T) {
	clearToken(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GITHUB_TOKEN=from-file\n"), 0o600))

	tok, err := resolve("", envFile)

	require.NoError(t, err)
	assert.Equal(t, "from-file", tok)
}

func TestResolve_NothingSet(t *testing.T) {
	clearToken(t)

	_, err := resolve("", "does-not-exist.env")

	require.Error(t, err)
	var missing gitrepo.MissingCredentialError
	require.ErrorAs(t, err, &missing)
	// The message must name all three ways to supply the token.
	assert.Contains(t, err.Error(), "--token")
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	assert.Contains(t, err.Error(), ".env")
}
