// Command mock-github emulates the two GitHub REST endpoints the repotree
// CLI calls, for local development without a token or network access:
//
//	GET /repos/:owner/:repo                  repository metadata
//	GET /repos/:owner/:repo/git/trees/:ref   recursive tree listing
//
// Repositories come from a YAML seed file (SEED_FILE env) or a built-in
// default. Point the CLI at it with GITHUB_API_URL=http://localhost:9090.
package main

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/tilsley/repotree/pkg/logging"
)

// TreeEntry mirrors one element of the GitHub git-trees response.
type TreeEntry struct {
	Path string  `json:"path"`
	Mode string  `json:"mode"`
	Type string  `json:"type"`
	SHA  string  `json:"sha"`
	Size *int64  `json:"size,omitempty"`
	URL  *string `json:"url,omitempty"`
}

// Repo is one seeded repository: its metadata and the full recursive tree of
// its default branch.
type Repo struct {
	Owner         string
	Name          string
	DefaultBranch *string
	Truncated     bool
	Entries       []TreeEntry
}

// store holds seeded repos keyed by "owner/name".
type store struct {
	mu    sync.RWMutex
	repos map[string]*Repo
}

func newStore() *store {
	return &store{repos: make(map[string]*Repo)}
}

func (s *store) add(r *Repo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repos[r.Owner+"/"+r.Name] = r
}

func (s *store) get(owner, name string) *Repo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repos[owner+"/"+name]
}

func (s *store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.repos)
}

func main() {
	log := logging.New()
	s := newStore()

	if path := os.Getenv("SEED_FILE"); path != "" {
		if err := seedFromFile(s, path); err != nil {
			log.Error("seed file load failed", "path", path, "error", err)
			os.Exit(1)
		}
		log.Info("seeded repos from file", "path", path, "repos", s.count())
	} else {
		seedDefault(s)
		log.Info("seeded built-in repos", "repos", s.count())
	}

	r := gin.Default()
	registerAPIRoutes(r, s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	log.Info("mock-github starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func registerAPIRoutes(r *gin.Engine, s *store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/repos/:owner/:repo", func(c *gin.Context) {
		repo := s.get(c.Param("owner"), c.Param("repo"))
		if repo == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"name":           repo.Name,
			"full_name":      repo.Owner + "/" + repo.Name,
			"default_branch": repo.DefaultBranch,
		})
	})

	r.GET("/repos/:owner/:repo/git/trees/:ref", func(c *gin.Context) {
		repo := s.get(c.Param("owner"), c.Param("repo"))
		if repo == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		ref := c.Param("ref")
		if repo.DefaultBranch == nil || ref != *repo.DefaultBranch {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No commit found for ref %s", ref)})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sha":       fakeSHA(repo.Owner + "/" + repo.Name + "@" + ref),
			"url":       requestURL(c),
			"truncated": repo.Truncated,
			"tree":      repo.Entries,
		})
	})
}

func requestURL(c *gin.Context) string {
	return "http://" + c.Request.Host + c.Request.URL.Path
}

// fakeSHA derives a stable 40-hex-digit identifier from s. Mock object ids
// only need to look like git SHAs and stay deterministic across restarts.
func fakeSHA(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
