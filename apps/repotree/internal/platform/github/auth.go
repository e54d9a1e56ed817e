// Package github provides the factory for authenticated GitHub API clients.
// Callers use the returned *github.Client with the adapter in
// apps/repotree/internal/adapters/github.
package github

import (
	"context"
	"net/http"
	"net/url"

	gogithub "github.com/google/go-github/v75/github"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com"

// NewTokenClient creates a *github.Client authenticated with a personal
// access token. Pass baseURL="" to use the real GitHub API, or a custom URL
// (e.g. "http://localhost:9090") for the mock server. The oauth2 transport
// attaches the Authorization header to every request; go-github sets its own
// User-Agent.
func NewTokenClient(token, baseURL string) *gogithub.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	c := gogithub.NewClient(httpClient)
	applyBaseURL(c, baseURL)
	return c
}

// NewTokenClientWithTransport is NewTokenClient with an explicit base
// transport, so tests can point the oauth2 client at an httptest server.
func NewTokenClientWithTransport(token, baseURL string, base http.RoundTripper) *gogithub.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts, Base: base},
	}
	c := gogithub.NewClient(httpClient)
	applyBaseURL(c, baseURL)
	return c
}

func applyBaseURL(c *gogithub.Client, baseURL string) {
	if baseURL == "" || baseURL == defaultAPIURL {
		return
	}
	u, err := url.Parse(baseURL + "/")
	if err != nil {
		return
	}
	c.BaseURL = u
}
