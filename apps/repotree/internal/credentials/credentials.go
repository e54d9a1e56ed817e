// Package credentials resolves the GitHub token once at startup. Resolution
// order: explicit flag value, then the GITHUB_TOKEN environment variable,
// then a .env file in the working directory. The resolved token is an
// immutable value passed into the API client; nothing here is re-read later.
package credentials

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tilsley/repotree/apps/repotree/internal/gitrepo"
)

// EnvVar is the environment variable consulted after the flag.
const EnvVar = "GITHUB_TOKEN"

// Resolve returns the token from flagValue, the environment, or a .env file,
// in that order. godotenv.Load never overrides variables already set in the
// real environment, so a .env file cannot shadow an exported GITHUB_TOKEN.
func Resolve(flagValue string) (string, error) {
	return resolve(flagValue, ".env")
}

func resolve(flagValue, envFile string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if tok := os.Getenv(EnvVar); tok != "" {
		return tok, nil
	}
	// Missing .env is the common case, not an error.
	_ = godotenv.Load(envFile)
	if tok := os.Getenv(EnvVar); tok != "" {
		return tok, nil
	}
	return "", gitrepo.MissingCredentialError{}
}
