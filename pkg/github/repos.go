package github

import (
	"context"
	"sort"
	"strings"

	"github.com/duynguyendang/gitguide/pkg/cache"
)

const (
	maxRepoResults        = 10
	maxPreferredLanguages = 2

	beginnerFilter   = "(good-first-issues:>0 OR help-wanted-issues:>0)"
	popularityFilter = "stars:>100"
	recencyFilter    = "pushed:>2023-01-01"
	visibilityFilter = "is:public fork:false archived:false"
)

// RepoSummary is a normalized repository search result, immutable once built.
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	UpdatedAt   string `json:"updated_at"`
	OpenIssues  int    `json:"open_issues_count"`
	HasIssues   bool   `json:"has_issues"`
}

// RepoTracker records repositories that were surfaced to a conversation.
type RepoTracker interface {
	TrackRepo(name string)
}

// RepoSearcher finds active, beginner-friendly repositories, caching results
// per effective query.
type RepoSearcher struct {
	client *Client
	cache  *cache.Cache[[]RepoSummary]
}

// NewRepoSearcher creates a RepoSearcher backed by the given client and cache.
func NewRepoSearcher(client *Client, c *cache.Cache[[]RepoSummary]) *RepoSearcher {
	return &RepoSearcher{client: client, cache: c}
}

// Search returns up to 10 repositories matching term, sorted by stars
// descending. An explicit language narrows the search; otherwise up to two of
// the caller's preferred languages are OR-ed in. Every returned repository
// name is pushed to the tracker so follow-up questions can refer back to it.
func (s *RepoSearcher) Search(ctx context.Context, term, language string, preferred []string, tracker RepoTracker) ([]RepoSummary, error) {
	key := term + "_" + language
	if repos, ok := s.cache.Get(key); ok {
		s.track(tracker, repos)
		return repos, nil
	}

	raw, err := s.client.SearchRepositories(ctx, buildRepoQuery(term, language, preferred), "stars", "desc", maxRepoResults)
	if err != nil {
		return nil, err
	}

	repos := make([]RepoSummary, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, summarizeRepo(r))
	}
	sort.SliceStable(repos, func(i, j int) bool { return repos[i].Stars > repos[j].Stars })
	if len(repos) > maxRepoResults {
		repos = repos[:maxRepoResults]
	}

	s.cache.Put(key, repos)
	s.track(tracker, repos)
	return repos, nil
}

func (s *RepoSearcher) track(tracker RepoTracker, repos []RepoSummary) {
	if tracker == nil {
		return
	}
	for _, r := range repos {
		tracker.TrackRepo(r.Name)
	}
}

// buildRepoQuery concatenates the search qualifiers in a fixed order so the
// resulting string doubles as a deterministic description of the query.
func buildRepoQuery(term, language string, preferred []string) string {
	var parts []string
	if term != "" {
		parts = append(parts, term)
	}

	if language != "" {
		parts = append(parts, "language:"+language)
	} else if len(preferred) > 0 {
		langs := preferred
		if len(langs) > maxPreferredLanguages {
			langs = langs[:maxPreferredLanguages]
		}
		filters := make([]string, len(langs))
		for i, lang := range langs {
			filters[i] = "language:" + lang
		}
		parts = append(parts, "("+strings.Join(filters, " OR ")+")")
	}

	parts = append(parts, beginnerFilter, popularityFilter, recencyFilter, visibilityFilter)
	return strings.Join(parts, " ")
}

func summarizeRepo(r Repo) RepoSummary {
	description := r.Description
	if description == "" {
		description = "No description available"
	}
	language := r.Language
	if language == "" {
		language = "Various"
	}
	return RepoSummary{
		Name:        r.FullName,
		Description: description,
		URL:         r.HTMLURL,
		Stars:       r.StargazersCount,
		Language:    language,
		UpdatedAt:   r.UpdatedAt,
		OpenIssues:  r.OpenIssuesCount,
		HasIssues:   r.HasIssues,
	}
}
