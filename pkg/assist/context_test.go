package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynguyendang/gitguide/internal/session"
	"github.com/duynguyendang/gitguide/pkg/github"
)

type fakeRepoSource struct {
	results  []github.RepoSummary
	err      error
	term     string
	language string
	calls    int
}

func (f *fakeRepoSource) Search(ctx context.Context, term, language string, preferred []string, tracker github.RepoTracker) ([]github.RepoSummary, error) {
	f.calls++
	f.term = term
	f.language = language
	if tracker != nil {
		for _, r := range f.results {
			tracker.TrackRepo(r.Name)
		}
	}
	return f.results, f.err
}

type fakeIssueSource struct {
	results []github.IssueSummary
	err     error
	repo    string
}

func (f *fakeIssueSource) Search(ctx context.Context, repo string) ([]github.IssueSummary, error) {
	f.repo = repo
	return f.results, f.err
}

type fakeGuideSource struct {
	guide string
	repo  string
}

func (f *fakeGuideSource) Fetch(ctx context.Context, repo string) string {
	f.repo = repo
	return f.guide
}

type fakeGenerator struct {
	answer string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	mgr := session.NewManager(nil)
	sess, err := mgr.Create(context.Background())
	require.NoError(t, err)
	return sess
}

func TestAssembler_Repositories(t *testing.T) {
	repos := &fakeRepoSource{results: []github.RepoSummary{
		{Name: "golang/go", Description: "The Go language", URL: "https://github.com/golang/go", Stars: 120000, Language: "Go", UpdatedAt: "2025-06-01T10:00:00Z", OpenIssues: 9000},
	}}
	a := NewAssembler(repos, &fakeIssueSource{}, &fakeGuideSource{})
	sess := newTestSession(t)
	sess.AddLanguages("go")
	sess.AddInterests("web", "cloud", "devops")

	payload := a.Assemble(context.Background(), sess, "recommend some repositories")

	// Query combines the fixed term with the first two interests; the top
	// preferred language becomes the explicit filter.
	assert.Equal(t, "good first issue web cloud", repos.term)
	assert.Equal(t, "go", repos.language)

	section := payload[SectionRepositories]
	assert.Contains(t, section, "1. [golang/go](https://github.com/golang/go): The Go language")
	assert.Contains(t, section, "   - Stars: 120000, Language: Go")
	assert.Contains(t, section, "   - Open Issues: 9000, Last Updated: 2025-06-01")
}

func TestAssembler_RepositoriesEmpty(t *testing.T) {
	a := NewAssembler(&fakeRepoSource{}, &fakeIssueSource{}, &fakeGuideSource{})
	sess := newTestSession(t)

	payload := a.Assemble(context.Background(), sess, "any repos for me?")
	assert.Equal(t, "No repositories found matching your criteria.", payload[SectionRepositories])
}

func TestAssembler_Issues(t *testing.T) {
	issues := &fakeIssueSource{results: []github.IssueSummary{
		{Title: "Fix typo", Number: 42, URL: "https://github.com/a/b/issues/42", Labels: []string{"good first issue"}, CreatedAt: "2025-03-02T09:00:00Z", Description: "A typo in the docs"},
	}}
	a := NewAssembler(&fakeRepoSource{}, issues, &fakeGuideSource{})
	sess := newTestSession(t)

	payload := a.Assemble(context.Background(), sess, "find issues in a/b")

	assert.Equal(t, "a/b", issues.repo)
	section := payload[SectionIssues]
	assert.Contains(t, section, "1. [Issue #42](https://github.com/a/b/issues/42): Fix typo")
	assert.Contains(t, section, "   - Labels: good first issue")
	assert.Contains(t, section, "   - Created: 2025-03-02")
	assert.Contains(t, section, "   - Description: A typo in the docs")
}

func TestAssembler_IssuesEmpty(t *testing.T) {
	a := NewAssembler(&fakeRepoSource{}, &fakeIssueSource{}, &fakeGuideSource{})
	sess := newTestSession(t)

	payload := a.Assemble(context.Background(), sess, "issues in x/y please")
	assert.Equal(t, "No beginner-friendly issues found in x/y.", payload[SectionIssues])
}

func TestAssembler_IssuesNeedRepo(t *testing.T) {
	issues := &fakeIssueSource{}
	a := NewAssembler(&fakeRepoSource{}, issues, &fakeGuideSource{})
	sess := newTestSession(t)

	// No owner/name token and no session history: no issues section.
	payload := a.Assemble(context.Background(), sess, "show me some beginner issues")
	_, ok := payload[SectionIssues]
	assert.False(t, ok)
	assert.Empty(t, issues.repo)
}

func TestAssembler_IssuesFallBackToRecentRepo(t *testing.T) {
	issues := &fakeIssueSource{}
	a := NewAssembler(&fakeRepoSource{}, issues, &fakeGuideSource{})
	sess := newTestSession(t)
	sess.TrackRepo("x/y")

	a.Assemble(context.Background(), sess, "show me some beginner issues")
	assert.Equal(t, "x/y", issues.repo)
}

func TestAssembler_Guide(t *testing.T) {
	guides := &fakeGuideSource{guide: "Contribution guide for facebook/react:\n\nBe nice."}
	a := NewAssembler(&fakeRepoSource{}, &fakeIssueSource{}, guides)
	sess := newTestSession(t)

	payload := a.Assemble(context.Background(), sess, "how should I contribute to facebook/react")

	assert.Equal(t, "facebook/react", guides.repo)
	assert.Equal(t, guides.guide, payload[SectionGuide])
}

func TestAssembler_Preferences(t *testing.T) {
	a := NewAssembler(&fakeRepoSource{}, &fakeIssueSource{}, &fakeGuideSource{})
	sess := newTestSession(t)
	sess.AddLanguages("python", "go")
	sess.AddInterests("web")

	payload := a.Assemble(context.Background(), sess, "anything")
	assert.Equal(t, "Preferred languages: python, go\nInterests: web", payload[SectionPreferences])
}

func TestAssembler_PartialContextOnFailure(t *testing.T) {
	repos := &fakeRepoSource{err: fmt.Errorf("remote unavailable")}
	issues := &fakeIssueSource{results: []github.IssueSummary{{Title: "T", Number: 1, URL: "u", CreatedAt: "2025-01-01T00:00:00Z", Description: "d"}}}
	a := NewAssembler(repos, issues, &fakeGuideSource{guide: "g"})
	sess := newTestSession(t)

	payload := a.Assemble(context.Background(), sess, "repositories and issues in a/b and how to contribute")

	// The failed repository search degrades to the empty-result text without
	// aborting the other sections.
	assert.Equal(t, "No repositories found matching your criteria.", payload[SectionRepositories])
	assert.Contains(t, payload[SectionIssues], "[Issue #1]")
	assert.Equal(t, "g", payload[SectionGuide])
}

func TestResponder_EndToEnd(t *testing.T) {
	repos := &fakeRepoSource{}
	gen := &fakeGenerator{answer: "Here are some options."}
	r := NewResponder(NewAssembler(repos, &fakeIssueSource{}, &fakeGuideSource{}), gen, "no-such-file.prompt")
	sess := newTestSession(t)

	answer := r.Respond(context.Background(), sess, "What are some good Python repositories for beginners?", true)

	assert.Equal(t, "Here are some options.", answer)
	assert.Equal(t, []string{"python"}, sess.Languages())
	assert.Equal(t, 1, repos.calls)
	assert.Equal(t, "python", repos.language)
	assert.Contains(t, gen.prompt, `"repositories"`)
	assert.Contains(t, gen.prompt, "What are some good Python repositories for beginners?")
	// Retrieval snippets from the bootstrap knowledge made it into the prompt.
	assert.Contains(t, gen.prompt, "Background knowledge:")

	history := sess.History()
	if assert.Len(t, history, 1) {
		assert.Equal(t, "Here are some options.", history[0].Answer)
	}
}

func TestResponder_FallbackOnGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	r := NewResponder(NewAssembler(&fakeRepoSource{}, &fakeIssueSource{}, &fakeGuideSource{}), gen, "no-such-file.prompt")
	sess := newTestSession(t)

	answer := r.Respond(context.Background(), sess, "help me out", false)

	assert.True(t, strings.HasPrefix(answer, "I apologize, but I encountered an issue"))
	// Failed exchanges are not recorded in history.
	assert.Empty(t, sess.History())
}
