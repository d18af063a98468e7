package github

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/duynguyendang/gitguide/pkg/cache"
	apperrors "github.com/duynguyendang/gitguide/pkg/common/errors"
)

// guidePaths are the candidate locations of a contribution guide, tried in
// order.
var guidePaths = []string{
	"CONTRIBUTING.md",
	".github/CONTRIBUTING.md",
	"docs/CONTRIBUTING.md",
	"CONTRIBUTE.md",
	".github/CONTRIBUTE.md",
	"docs/CONTRIBUTE.md",
	"DEVELOPMENT.md",
	"docs/DEVELOPMENT.md",
}

const (
	maxGuideLength  = 2000
	truncatedMarker = "\n...\n[Guide truncated. See full guide at the repository]"
)

// genericGuide is returned when a repository has no contribution guide at any
// of the candidate paths. The text is fixed so callers can rely on it being
// byte-for-byte stable.
const genericGuide = `No specific contribution guide found. Here are general steps to contribute:

1. Fork the repository
2. Clone your fork locally
3. Create a new branch for your feature or bugfix
4. Make your changes with clear commit messages
5. Push to your fork
6. Submit a pull request to the original repository

Look for issues labeled 'good first issue' or 'help wanted' for beginner-friendly tasks.`

// GuideFetcher retrieves a repository's contribution guide, caching the
// result (the generic fallback included) per repository.
type GuideFetcher struct {
	client *Client
	cache  *cache.Cache[string]
}

// NewGuideFetcher creates a GuideFetcher backed by the given client and cache.
func NewGuideFetcher(client *Client, c *cache.Cache[string]) *GuideFetcher {
	return &GuideFetcher{client: client, cache: c}
}

// Fetch returns the contribution guide for repo: the content of the first
// candidate path that exists, truncated past 2000 characters and prefixed
// with an attribution line, or the generic 6-step procedure when none of the
// paths exist. A failed path attempt is logged and the next path is tried.
func (f *GuideFetcher) Fetch(ctx context.Context, repo string) string {
	key := "guide_" + repo
	if guide, ok := f.cache.Get(key); ok {
		return guide
	}

	guide := genericGuide
	for _, path := range guidePaths {
		content, err := f.client.GetFileContent(ctx, repo, path)
		if err != nil {
			// Missing paths are the expected case; only transport trouble is
			// worth logging.
			if !errors.Is(err, apperrors.ErrNotFound) {
				log.Printf("github: guide %s/%s: %v", repo, path, err)
			}
			continue
		}
		text := string(content)
		if len(text) > maxGuideLength {
			text = text[:maxGuideLength] + truncatedMarker
		}
		guide = fmt.Sprintf("Contribution guide for %s:\n\n%s", repo, text)
		break
	}

	f.cache.Put(key, guide)
	return guide
}
