package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "plain repo url",
			url:       "https://github.com/alice/campus-ride-share",
			wantOwner: "alice",
			wantRepo:  "campus-ride-share",
		},
		{
			name:      "www host",
			url:       "https://www.github.com/alice/campus-ride-share",
			wantOwner: "alice",
			wantRepo:  "campus-ride-share",
		},
		{
			name:      "git suffix stripped",
			url:       "https://github.com/alice/campus-ride-share.git",
			wantOwner: "alice",
			wantRepo:  "campus-ride-share",
		},
		{
			name:      "extra path segments ignored",
			url:       "https://github.com/alice/campus-ride-share/tree/main",
			wantOwner: "alice",
			wantRepo:  "campus-ride-share",
		},
		{
			name:    "not github",
			url:     "https://gitlab.com/alice/campus-ride-share",
			wantErr: true,
		},
		{
			name:    "owner only",
			url:     "https://github.com/alice",
			wantErr: true,
		},
		{
			name:    "bare host",
			url:     "https://github.com/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepoURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestNewGitHubServiceInvalidBaseURL(t *testing.T) {
	_, err := NewGitHubService("", "://bad-url")
	assert.Error(t, err)
}
