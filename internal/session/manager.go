package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	apperrors "github.com/duynguyendang/gitguide/pkg/common/errors"
	"github.com/duynguyendang/gitguide/pkg/index"
)

// MaxSessions bounds the number of live conversations. Least-recently-used
// conversations are evicted past this, so the session map cannot grow for the
// lifetime of the process.
const MaxSessions = 1000

// curatedTexts extend the bootstrap corpus for every new conversation.
var curatedTexts = []string{
	"freeCodeCamp/freeCodeCamp: Learn to code for free with millions of learners.",
	"firstcontributions/first-contributions: Helps beginners make their first open-source contribution.",
	"github/docs: GitHub's public documentation - perfect for documentation contributions.",
	"microsoft/vscode: Popular code editor with many well-labeled issues.",
	"rust-lang/rust: Programming language with mentored issues for beginners.",
	"The best way to start contributing is to look for issues labeled 'good first issue' or 'help wanted'.",
	"Don't feel intimidated by large codebases - start with documentation or tests.",
	"Most open source projects are happy to receive contributions from beginners.",
	"Always read the CONTRIBUTING.md file for project-specific guidelines.",
	"When in doubt, ask questions in the issue comments before submitting PR.",
}

// Manager owns the conversation id to Session mapping.
type Manager struct {
	sessions *lru.Cache[string, *Session]
	embedder index.Embedder
	mu       sync.Mutex // serializes Reset's check-then-replace
}

// NewManager creates a Manager. The embedder (may be nil) seeds each new
// conversation's knowledge index.
func NewManager(embedder index.Embedder) *Manager {
	sessions, _ := lru.New[string, *Session](MaxSessions)
	return &Manager{
		sessions: sessions,
		embedder: embedder,
	}
}

// Create constructs a fresh conversation with a unique id and a seeded
// knowledge index, stores it, and returns it.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	sess, err := m.seed(ctx, uuid.NewString())
	if err != nil {
		return nil, err
	}
	m.sessions.Add(sess.ID(), sess)
	return sess, nil
}

// Get returns the session for id, or apperrors.ErrNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	sess, ok := m.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, apperrors.ErrNotFound)
	}
	return sess, nil
}

// Reset replaces the session stored under id with a freshly seeded one,
// discarding all prior preferences and history. The id is unchanged.
func (m *Manager) Reset(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions.Get(id); !ok {
		return fmt.Errorf("conversation %s: %w", id, apperrors.ErrNotFound)
	}
	sess, err := m.seed(ctx, id)
	if err != nil {
		return err
	}
	m.sessions.Add(id, sess)
	return nil
}

// Remove deletes the session for id. Removing an unknown id is a no-op.
func (m *Manager) Remove(id string) {
	m.sessions.Remove(id)
}

// Len returns the number of live conversations.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

func (m *Manager) seed(ctx context.Context, id string) (*Session, error) {
	knowledge := index.New(m.embedder)
	if err := knowledge.Initialize(ctx, index.BootstrapTexts(curatedTexts...)); err != nil {
		return nil, err
	}
	return newSession(id, knowledge), nil
}
