package assist

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/duynguyendang/gitguide/internal/session"
	"github.com/duynguyendang/gitguide/pkg/github"
)

// Context payload section names.
const (
	SectionRepositories = "repositories"
	SectionIssues       = "issues"
	SectionGuide        = "guide"
	SectionPreferences  = "preferences"
)

const (
	maxFormattedItems   = 5
	maxInterestsInQuery = 2

	noReposText = "No repositories found matching your criteria."
)

// RepoSource finds beginner-friendly repositories.
type RepoSource interface {
	Search(ctx context.Context, term, language string, preferred []string, tracker github.RepoTracker) ([]github.RepoSummary, error)
}

// IssueSource finds beginner-friendly issues in a repository.
type IssueSource interface {
	Search(ctx context.Context, repo string) ([]github.IssueSummary, error)
}

// GuideSource fetches a repository's contribution guide.
type GuideSource interface {
	Fetch(ctx context.Context, repo string) string
}

// Assembler builds the per-question context payload from session preferences
// and live GitHub data. A failure in one data source never aborts the others;
// partial context is valid and expected.
type Assembler struct {
	repos  RepoSource
	issues IssueSource
	guides GuideSource
}

// NewAssembler creates an Assembler over the three data sources.
func NewAssembler(repos RepoSource, issues IssueSource, guides GuideSource) *Assembler {
	return &Assembler{repos: repos, issues: issues, guides: guides}
}

// Assemble classifies the question and returns the context sections that
// apply, each pre-formatted as a text block. Constructed fresh per question.
func (a *Assembler) Assemble(ctx context.Context, sess *session.Session, question string) map[string]string {
	intent := ClassifyIntent(question)
	payload := make(map[string]string)

	if intent.Repos {
		payload[SectionRepositories] = a.repositoriesSection(ctx, sess)
	}

	// Resolved once per question; every repo-scoped section reuses it.
	repo := ExtractRepo(question, sess.LastRepo())

	if intent.Issues && repo != "" {
		payload[SectionIssues] = a.issuesSection(ctx, repo)
	}

	if (intent.Contribute || intent.Guide) && repo != "" {
		payload[SectionGuide] = a.guides.Fetch(ctx, repo)
	}

	if prefs := formatPreferences(sess.Languages(), sess.Interests()); prefs != "" {
		payload[SectionPreferences] = prefs
	}

	return payload
}

func (a *Assembler) repositoriesSection(ctx context.Context, sess *session.Session) string {
	term := "good first issue"
	interests := sess.Interests()
	if len(interests) > maxInterestsInQuery {
		interests = interests[:maxInterestsInQuery]
	}
	if len(interests) > 0 {
		term += " " + strings.Join(interests, " ")
	}

	languages := sess.Languages()
	language := ""
	if len(languages) > 0 {
		language = languages[0]
	}

	repos, err := a.repos.Search(ctx, term, language, languages, sess)
	if err != nil {
		log.Printf("assist: repository search failed: %v", err)
	}
	return formatRepos(repos)
}

func (a *Assembler) issuesSection(ctx context.Context, repo string) string {
	issues, err := a.issues.Search(ctx, repo)
	if err != nil {
		log.Printf("assist: issue search for %s failed: %v", repo, err)
	}
	return formatIssues(repo, issues)
}

func formatRepos(repos []github.RepoSummary) string {
	if len(repos) == 0 {
		return noReposText
	}
	if len(repos) > maxFormattedItems {
		repos = repos[:maxFormattedItems]
	}

	var lines []string
	for i, repo := range repos {
		lines = append(lines,
			fmt.Sprintf("%d. [%s](%s): %s", i+1, repo.Name, repo.URL, repo.Description),
			fmt.Sprintf("   - Stars: %d, Language: %s", repo.Stars, repo.Language),
			fmt.Sprintf("   - Open Issues: %d, Last Updated: %s", repo.OpenIssues, datePart(repo.UpdatedAt)),
		)
	}
	return strings.Join(lines, "\n")
}

func formatIssues(repo string, issues []github.IssueSummary) string {
	if len(issues) == 0 {
		return fmt.Sprintf("No beginner-friendly issues found in %s.", repo)
	}
	if len(issues) > maxFormattedItems {
		issues = issues[:maxFormattedItems]
	}

	var lines []string
	for i, issue := range issues {
		lines = append(lines, fmt.Sprintf("%d. [Issue #%d](%s): %s", i+1, issue.Number, issue.URL, issue.Title))
		if len(issue.Labels) > 0 {
			lines = append(lines, fmt.Sprintf("   - Labels: %s", strings.Join(issue.Labels, ", ")))
		}
		lines = append(lines,
			fmt.Sprintf("   - Created: %s", datePart(issue.CreatedAt)),
			fmt.Sprintf("   - Description: %s", issue.Description),
		)
	}
	return strings.Join(lines, "\n")
}

func formatPreferences(languages, interests []string) string {
	var lines []string
	if len(languages) > 0 {
		lines = append(lines, "Preferred languages: "+strings.Join(languages, ", "))
	}
	if len(interests) > 0 {
		lines = append(lines, "Interests: "+strings.Join(interests, ", "))
	}
	return strings.Join(lines, "\n")
}

// datePart reduces an RFC 3339 timestamp to its date.
func datePart(timestamp string) string {
	if len(timestamp) > 10 {
		return timestamp[:10]
	}
	return timestamp
}
