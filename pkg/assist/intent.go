package assist

import "strings"

// Intent captures which data sources a question calls for. The flags are not
// mutually exclusive; a single question can ask for repositories and a guide
// at once.
type Intent struct {
	Repos      bool
	Issues     bool
	Contribute bool
	Guide      bool
}

var (
	repoKeywords       = []string{"repository", "repositories", "repos", "projects"}
	contributeKeywords = []string{"contribute", "contributing", "contribution"}
	guideKeywords      = []string{"guide", "how to", "steps", "process"}
)

// ClassifyIntent scans the lower-cased question for the fixed keyword sets.
// Pure function; the assembler branches on the returned flags.
func ClassifyIntent(question string) Intent {
	q := strings.ToLower(question)
	return Intent{
		Repos:      containsAny(q, repoKeywords),
		Issues:     strings.Contains(q, "issue"),
		Contribute: containsAny(q, contributeKeywords),
		Guide:      containsAny(q, guideKeywords),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
