package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "project-showcase-backend/internal/errors"

	"github.com/google/go-github/v57/github"
)

// GitHubService fetches public repository metadata for projects that link a
// GitHub repo. Best effort only: callers treat any error as "no metadata".
type GitHubService struct {
	client  *github.Client
	timeout time.Duration
}

// NewGitHubService creates a GitHub client. Token is optional; without one
// the client runs against the unauthenticated rate limit, which is enough
// for cached project-detail reads. baseURL overrides the API endpoint for
// tests and GitHub Enterprise.
func NewGitHubService(token, baseURL string) (*GitHubService, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url: %w", err)
		}
	}
	return &GitHubService{client: client, timeout: 5 * time.Second}, nil
}

// RepoMetadata is the subset of repository details shown on a project page
type RepoMetadata struct {
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	PushedAt    time.Time `json:"pushed_at,omitempty"`
	HTMLURL     string    `json:"html_url"`
}

// GetRepoMetadata resolves a github.com repo URL and fetches its metadata
func (s *GitHubService) GetRepoMetadata(ctx context.Context, repoURL string) (*RepoMetadata, error) {
	owner, repo, err := parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	repository, resp, err := s.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewNotFoundError("repository")
		}
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, repo, err)
	}

	metadata := &RepoMetadata{
		FullName:    repository.GetFullName(),
		Description: repository.GetDescription(),
		Language:    repository.GetLanguage(),
		Stars:       repository.GetStargazersCount(),
		Forks:       repository.GetForksCount(),
		OpenIssues:  repository.GetOpenIssuesCount(),
		HTMLURL:     repository.GetHTMLURL(),
	}
	if pushed := repository.GetPushedAt(); !pushed.IsZero() {
		metadata.PushedAt = pushed.Time
	}
	return metadata, nil
}

// parseRepoURL extracts owner and repo from a github.com URL
func parseRepoURL(repoURL string) (string, string, error) {
	parsed, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository url: %w", err)
	}
	host := strings.ToLower(parsed.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", "", fmt.Errorf("not a github.com url: %s", repoURL)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("url does not name a repository: %s", repoURL)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
