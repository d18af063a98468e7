// Package github consumes the GitHub REST API to surface beginner-friendly
// repositories, issues, and contribution guides.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/duynguyendang/gitguide/pkg/common/errors"
)

const defaultBaseURL = "https://api.github.com"

// Client is a minimal GitHub REST v3 consumer covering repository search,
// issue listing, and file-content retrieval. Absence of results is a normal
// outcome, not an error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client authenticating with the given token. An empty
// token is allowed; requests then run against the unauthenticated rate limit.
func NewClient(token string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// Repo is the subset of a repository search record this system reads.
type Repo struct {
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
	Language        string `json:"language"`
	UpdatedAt       string `json:"updated_at"`
	OpenIssuesCount int    `json:"open_issues_count"`
	HasIssues       bool   `json:"has_issues"`
}

// Issue is the subset of an issue record this system reads.
type Issue struct {
	ID        int64   `json:"id"`
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	HTMLURL   string  `json:"html_url"`
	CreatedAt string  `json:"created_at"`
	Labels    []Label `json:"labels"`
}

// Label is an issue label.
type Label struct {
	Name string `json:"name"`
}

type searchRepositoriesResponse struct {
	Items []Repo `json:"items"`
}

type fileContentResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// SearchRepositories runs a repository search with the given query string.
func (c *Client) SearchRepositories(ctx context.Context, query, sort, order string, perPage int) ([]Repo, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", sort)
	params.Set("order", order)
	params.Set("per_page", strconv.Itoa(perPage))

	var resp searchRepositoriesResponse
	if err := c.get(ctx, "/search/repositories", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListIssues lists issues of a repository, optionally filtered by a
// comma-separated label list.
func (c *Client) ListIssues(ctx context.Context, repo, labels, state string, perPage int) ([]Issue, error) {
	params := url.Values{}
	if labels != "" {
		params.Set("labels", labels)
	}
	params.Set("state", state)
	params.Set("per_page", strconv.Itoa(perPage))

	var issues []Issue
	if err := c.get(ctx, "/repos/"+repo+"/issues", params, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetFileContent fetches and decodes a file from a repository. A missing path
// yields apperrors.ErrNotFound.
func (c *Client) GetFileContent(ctx context.Context, repo, path string) ([]byte, error) {
	var resp fileContentResponse
	if err := c.get(ctx, "/repos/"+repo+"/contents/"+path, nil, &resp); err != nil {
		return nil, err
	}

	// Contents are base64 with embedded newlines.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(resp.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s in %s: %v", apperrors.ErrRemoteUnavailable, path, repo, err)
	}
	return decoded, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", apperrors.ErrRemoteUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, apperrors.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: status %d", apperrors.ErrRemoteUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", apperrors.ErrRemoteUnavailable, path, err)
	}
	return nil
}
