// Command repotree lists every file and directory on a GitHub repository's
// default branch, one entry per line.
//
//	repotree octocat/Hello-World
//	repotree octocat/Hello-World --output-file tree.txt
//
// The GitHub token comes from --token, the GITHUB_TOKEN environment variable,
// or a .env file in the working directory. Set GITHUB_API_URL to point at a
// different API host (e.g. the mock-github app on http://localhost:9090).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	adapter "github.com/tilsley/repotree/apps/repotree/internal/adapters/github"
	"github.com/tilsley/repotree/apps/repotree/internal/credentials"
	"github.com/tilsley/repotree/apps/repotree/internal/listing"
	"github.com/tilsley/repotree/apps/repotree/internal/output"
	platform "github.com/tilsley/repotree/apps/repotree/internal/platform/github"
	"github.com/tilsley/repotree/apps/repotree/internal/repoid"
	"github.com/tilsley/repotree/pkg/logging"
)

// CLI is the kong-declared command surface.
type CLI struct {
	Repo       string `arg:"" name:"repo" help:"GitHub repository in the form 'owner/repo'."`
	Token      string `help:"GitHub token for authentication (defaults to GITHUB_TOKEN or a .env file)."`
	OutputFile string `help:"Write the listing to this file instead of stdout." type:"path"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("repotree"),
		kong.Description("List every file and directory on a GitHub repository's default branch."),
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "repotree: %v\n", err)
		os.Exit(1)
	}
}

// run executes the pipeline: parse → resolve branch → fetch tree → render →
// write. The first failing stage aborts the rest.
func run(cli CLI) error {
	log := logging.New()

	id, err := repoid.Parse(cli.Repo)
	if err != nil {
		return err
	}

	token, err := credentials.Resolve(cli.Token)
	if err != nil {
		return err
	}

	gh := platform.NewTokenClient(token, envOr("GITHUB_API_URL", ""))
	svc := listing.NewService(adapter.New(gh), log)

	text, err := svc.List(context.Background(), id.Owner, id.Name)
	if err != nil {
		return err
	}

	return output.Sink{Path: cli.OutputFile}.Write(text)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
