package github

import (
	"context"

	"github.com/duynguyendang/gitguide/pkg/cache"
)

const (
	// beginnerLabels are the labels that mark an issue as suitable for new
	// contributors.
	beginnerLabels = "good first issue,help wanted,beginner,easy,starter"

	maxIssueResults     = 10
	minBeginnerIssues   = 5
	maxIssueDescription = 300
)

// IssueSummary is a normalized issue record, immutable once built.
type IssueSummary struct {
	Title       string   `json:"title"`
	Number      int      `json:"number"`
	URL         string   `json:"url"`
	Labels      []string `json:"labels"`
	CreatedAt   string   `json:"created_at"`
	Description string   `json:"description"`
}

// IssueSearcher finds open beginner-friendly issues in a repository, caching
// results per repository.
type IssueSearcher struct {
	client *Client
	cache  *cache.Cache[[]IssueSummary]
}

// NewIssueSearcher creates an IssueSearcher backed by the given client and cache.
func NewIssueSearcher(client *Client, c *cache.Cache[[]IssueSummary]) *IssueSearcher {
	return &IssueSearcher{client: client, cache: c}
}

// Search returns up to 10 open issues for repo. Beginner-labeled issues are
// requested first; when fewer than 5 come back, a second unfiltered request
// tops the list up with regular issues, deduplicated by issue id, with
// beginner ones keeping the leading positions.
func (s *IssueSearcher) Search(ctx context.Context, repo string) ([]IssueSummary, error) {
	key := "issues_" + repo
	if issues, ok := s.cache.Get(key); ok {
		return issues, nil
	}

	combined, err := s.client.ListIssues(ctx, repo, beginnerLabels, "open", maxIssueResults)
	if err != nil {
		return nil, err
	}

	if len(combined) < minBeginnerIssues {
		regular, err := s.client.ListIssues(ctx, repo, "", "open", minBeginnerIssues)
		if err != nil {
			return nil, err
		}
		seen := make(map[int64]bool, len(combined))
		for _, issue := range combined {
			seen[issue.ID] = true
		}
		for _, issue := range regular {
			if !seen[issue.ID] {
				combined = append(combined, issue)
			}
		}
	}

	if len(combined) > maxIssueResults {
		combined = combined[:maxIssueResults]
	}

	issues := make([]IssueSummary, 0, len(combined))
	for _, issue := range combined {
		issues = append(issues, summarizeIssue(issue))
	}

	s.cache.Put(key, issues)
	return issues, nil
}

func summarizeIssue(issue Issue) IssueSummary {
	description := issue.Body
	switch {
	case description == "":
		description = "No description available"
	case len(description) > maxIssueDescription:
		description = description[:maxIssueDescription] + "..."
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.Name)
	}

	return IssueSummary{
		Title:       issue.Title,
		Number:      issue.Number,
		URL:         issue.HTMLURL,
		Labels:      labels,
		CreatedAt:   issue.CreatedAt,
		Description: description,
	}
}
