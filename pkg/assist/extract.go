package assist

import (
	"regexp"
	"strings"
)

// languageVocabulary is the fixed set of recognized programming languages.
// Scan order here defines the order of extraction results.
var languageVocabulary = []string{
	"python", "javascript", "typescript", "java", "c#", "c++", "go", "rust",
	"ruby", "php", "kotlin", "swift", "html", "css", "shell", "scala", "r",
}

// interestVocabulary is the fixed set of recognized topic interests.
var interestVocabulary = []string{
	"web", "mobile", "data science", "machine learning", "ai", "game",
	"database", "frontend", "backend", "fullstack", "devops", "cloud",
	"security", "blockchain", "iot", "embedded", "desktop",
}

var (
	languagePatterns = compileBoundaryPatterns(languageVocabulary)
	interestPatterns = compileBoundaryPatterns(interestVocabulary)
)

func compileBoundaryPatterns(vocabulary []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(vocabulary))
	for i, term := range vocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// repoPattern matches an owner/name token.
var (
	repoPattern       = regexp.MustCompile(`[a-zA-Z0-9][a-zA-Z0-9\-]*/[a-zA-Z0-9.\-_]+`)
	contributePattern = regexp.MustCompile(`(?i)contribute to\s+([a-zA-Z0-9][a-zA-Z0-9\-]*/[a-zA-Z0-9.\-_]+)`)
	issuesInPattern   = regexp.MustCompile(`(?i)issues in\s+([a-zA-Z0-9][a-zA-Z0-9\-]*/[a-zA-Z0-9.\-_]+)`)
)

// Extractor pulls language and topic-interest signals out of free-form text.
//
// Interests match by bare substring by default, which trades precision for
// recall ("ai" matches inside "domain"). WordBoundary switches interests to
// boundary-checked matching for callers that want precision instead.
type Extractor struct {
	WordBoundary bool
}

// Languages returns every vocabulary language whole-word-matched in text,
// once each, in vocabulary order.
func (e Extractor) Languages(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, pattern := range languagePatterns {
		if pattern.MatchString(lower) {
			found = append(found, languageVocabulary[i])
		}
	}
	return found
}

// Interests returns every vocabulary interest matched in text, once each, in
// vocabulary order.
func (e Extractor) Interests(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, term := range interestVocabulary {
		matched := strings.Contains(lower, term)
		if e.WordBoundary {
			matched = interestPatterns[i].MatchString(lower)
		}
		if matched {
			found = append(found, term)
		}
	}
	return found
}

// ExtractRepo resolves the repository a question refers to. Rules apply in
// order: the first bare owner/name token anywhere in the text, then a
// "contribute to owner/name" phrase, then an "issues in owner/name" phrase,
// then the caller-supplied fallback (the conversation's most recently seen
// repository), else "".
func ExtractRepo(text, fallback string) string {
	if match := repoPattern.FindString(text); match != "" {
		return match
	}
	if match := contributePattern.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	if match := issuesInPattern.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	return fallback
}
