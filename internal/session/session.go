// Package session holds per-conversation state and its lifecycle.
package session

import (
	"sync"
	"time"

	"github.com/duynguyendang/gitguide/pkg/index"
)

const (
	// maxRecentRepos bounds the most-recently-seen repository list.
	maxRecentRepos = 10

	// maxHistoryTurns bounds the conversation history handed to the answer
	// generator, to manage token costs.
	maxHistoryTurns = 10
)

// Turn is one question/answer exchange.
type Turn struct {
	Question string
	Answer   string
}

// Session is the accumulated state of one conversation: preferred languages
// and interests in first-seen order, the repositories recently surfaced to
// the user, the exchange history, and the conversation's knowledge index.
//
// All mutation goes through methods guarded by the session's own mutex, so
// concurrent requests against the same conversation id cannot corrupt state.
type Session struct {
	mu          sync.Mutex
	id          string
	languages   []string
	interests   []string
	recentRepos []string
	history     []Turn
	knowledge   *index.Index
	createdAt   time.Time
}

func newSession(id string, knowledge *index.Index) *Session {
	return &Session{
		id:        id,
		knowledge: knowledge,
		createdAt: time.Now(),
	}
}

// ID returns the conversation identifier.
func (s *Session) ID() string { return s.id }

// Knowledge returns the conversation's retrieval index.
func (s *Session) Knowledge() *index.Index { return s.knowledge }

// AddLanguages unions languages into the preference set, preserving
// first-seen order.
func (s *Session) AddLanguages(languages ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languages = appendUnique(s.languages, languages)
}

// AddInterests unions interests into the preference set, preserving
// first-seen order.
func (s *Session) AddInterests(interests ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interests = appendUnique(s.interests, interests)
}

// TrackRepo records a repository as recently seen. Known repositories keep
// their position; past capacity the oldest entry is evicted.
func (s *Session) TrackRepo(name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.recentRepos {
		if existing == name {
			return
		}
	}
	s.recentRepos = append(s.recentRepos, name)
	if len(s.recentRepos) > maxRecentRepos {
		s.recentRepos = s.recentRepos[len(s.recentRepos)-maxRecentRepos:]
	}
}

// Languages returns a copy of the preferred languages in first-seen order.
func (s *Session) Languages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.languages)
}

// Interests returns a copy of the recorded interests in first-seen order.
func (s *Session) Interests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.interests)
}

// RecentRepos returns a copy of the recently seen repositories, oldest first.
func (s *Session) RecentRepos() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.recentRepos)
}

// LastRepo returns the most recently seen repository, or "".
func (s *Session) LastRepo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.recentRepos) == 0 {
		return ""
	}
	return s.recentRepos[len(s.recentRepos)-1]
}

// AddTurn appends an exchange to the history, trimming to the retained bound.
func (s *Session) AddTurn(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, Turn{Question: question, Answer: answer})
	if len(s.history) > maxHistoryTurns {
		s.history = s.history[len(s.history)-maxHistoryTurns:]
	}
}

// History returns a copy of the retained exchange history, oldest first.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]Turn, len(s.history))
	copy(history, s.history)
	return history
}

func appendUnique(existing, incoming []string) []string {
	for _, candidate := range incoming {
		found := false
		for _, have := range existing {
			if have == candidate {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, candidate)
		}
	}
	return existing
}

func copySlice(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
