package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the YAML shape accepted via SEED_FILE:
//
//	repos:
//	  - owner: acme
//	    name: billing-api
//	    default_branch: main
//	    truncated: false
//	    tree:
//	      - {path: src, type: tree}
//	      - {path: src/main.go, type: blob, size: 120}
//
// default_branch may be null to exercise the CLI's missing-branch failure.
type seedFile struct {
	Repos []seedRepo `yaml:"repos"`
}

type seedRepo struct {
	Owner         string      `yaml:"owner"`
	Name          string      `yaml:"name"`
	DefaultBranch *string     `yaml:"default_branch"`
	Truncated     bool        `yaml:"truncated"`
	Tree          []seedEntry `yaml:"tree"`
}

type seedEntry struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
	Size *int64 `yaml:"size"`
}

func seedFromFile(s *store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	for _, sr := range f.Repos {
		if sr.Owner == "" || sr.Name == "" {
			return fmt.Errorf("seed repo missing owner or name: %+v", sr)
		}
		s.add(buildRepo(sr))
	}
	return nil
}

func buildRepo(sr seedRepo) *Repo {
	r := &Repo{
		Owner:         sr.Owner,
		Name:          sr.Name,
		DefaultBranch: sr.DefaultBranch,
		Truncated:     sr.Truncated,
	}
	for _, e := range sr.Tree {
		r.Entries = append(r.Entries, buildEntry(sr.Owner, sr.Name, e))
	}
	return r
}

func buildEntry(owner, name string, e seedEntry) TreeEntry {
	entry := TreeEntry{
		Path: e.Path,
		Type: e.Type,
		SHA:  fakeSHA(owner + "/" + name + ":" + e.Path),
		Size: e.Size,
	}
	switch e.Type {
	case "tree":
		entry.Mode = "040000"
	case "blob":
		entry.Mode = "100644"
		url := fmt.Sprintf("http://localhost:9090/repos/%s/%s/git/blobs/%s", owner, name, entry.SHA)
		entry.URL = &url
	case "commit":
		entry.Mode = "160000"
	}
	return entry
}

// seedDefault populates the store with a handful of repos covering the happy
// path, an empty tree, a truncated tree, and a null default branch.
func seedDefault(s *store) {
	main := "main"
	master := "master"

	s.add(buildRepo(seedRepo{
		Owner:         "acme",
		Name:          "billing-api",
		DefaultBranch: &main,
		Tree: []seedEntry{
			{Path: ".github", Type: "tree"},
			{Path: ".github/workflows", Type: "tree"},
			{Path: ".github/workflows/ci.yaml", Type: "blob", Size: ptr(431)},
			{Path: "README.md", Type: "blob", Size: ptr(212)},
			{Path: "cmd", Type: "tree"},
			{Path: "cmd/billing-api", Type: "tree"},
			{Path: "cmd/billing-api/main.go", Type: "blob", Size: ptr(1840)},
			{Path: "go.mod", Type: "blob", Size: ptr(97)},
			{Path: "vendored-sdk", Type: "commit"},
		},
	}))

	s.add(buildRepo(seedRepo{
		Owner:         "acme",
		Name:          "legacy-tools",
		DefaultBranch: &master,
		Truncated:     true,
		Tree: []seedEntry{
			{Path: "Makefile", Type: "blob", Size: ptr(512)},
			{Path: "scripts", Type: "tree"},
			{Path: "scripts/deploy.sh", Type: "blob", Size: ptr(1024)},
		},
	}))

	s.add(buildRepo(seedRepo{
		Owner:         "acme",
		Name:          "empty-repo",
		DefaultBranch: &main,
	}))

	// No default branch at all: the CLI should fail before fetching a tree.
	s.add(buildRepo(seedRepo{
		Owner: "acme",
		Name:  "abandoned",
	}))
}

func ptr(n int64) *int64 {
	return &n
}
