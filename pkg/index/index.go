// Package index provides a small in-memory retrieval index over curated
// open-source contribution knowledge. Each conversation gets its own index,
// seeded at creation and reset.
package index

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200

	// DefaultTopK is the number of snippets retrieved per question.
	DefaultTopK = 5
)

// Embedder turns a text into a vector. Implementations may fail (quota,
// network); the index then degrades to lexical scoring.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type document struct {
	text   string
	vector []float32 // L2-normalized; nil when embedding was unavailable
}

// Index holds chunked knowledge texts, searchable by embedding similarity
// with a lexical fallback. Safe for concurrent use.
type Index struct {
	mu       sync.RWMutex
	embedder Embedder
	docs     []document
}

// New creates an empty index. A nil embedder is allowed; the index then
// scores lexically only.
func New(embedder Embedder) *Index {
	return &Index{embedder: embedder}
}

// Initialize replaces the index contents with the given texts, split into
// overlapping chunks. Embedding failures are logged and the affected chunks
// fall back to lexical scoring; Initialize itself only fails on context
// cancellation.
func (ix *Index) Initialize(ctx context.Context, texts []string) error {
	chunks := splitChunks(strings.Join(texts, "\n"), chunkSize, chunkOverlap)

	docs := make([]document, 0, len(chunks))
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc := document{text: chunk}
		if ix.embedder != nil {
			vec, err := ix.embedder.Embed(ctx, chunk)
			if err != nil {
				log.Printf("index: embedding chunk failed, scoring lexically: %v", err)
			} else {
				doc.vector = l2Normalize(vec)
			}
		}
		docs = append(docs, doc)
	}

	ix.mu.Lock()
	ix.docs = docs
	ix.mu.Unlock()
	return nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

// Search returns the k chunks most relevant to query, best first. Chunks with
// embeddings are ranked by cosine similarity against the embedded query;
// chunks without, or all chunks when the query cannot be embedded, are ranked
// by lexical similarity.
func (ix *Index) Search(ctx context.Context, query string, k int) []string {
	ix.mu.RLock()
	docs := ix.docs
	ix.mu.RUnlock()

	if len(docs) == 0 || k <= 0 {
		return nil
	}

	var queryVec []float32
	if ix.embedder != nil {
		vec, err := ix.embedder.Embed(ctx, query)
		if err != nil {
			log.Printf("index: embedding query failed, scoring lexically: %v", err)
		} else {
			queryVec = l2Normalize(vec)
		}
	}

	type scored struct {
		text  string
		score float64
	}
	results := make([]scored, 0, len(docs))
	for _, doc := range docs {
		var score float64
		if queryVec != nil && doc.vector != nil {
			score = float64(dotProduct(queryVec, doc.vector))
		} else {
			score = lexicalSimilarity(query, doc.text)
		}
		results = append(results, scored{text: doc.text, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	if len(results) > k {
		results = results[:k]
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.text
	}
	return texts
}

// splitChunks cuts text into chunks of at most size bytes with the given
// overlap, preferring to break at newlines.
func splitChunks(text string, size, overlap int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		// Break at the last newline inside the window when there is one.
		cut := strings.LastIndexByte(text[start:end], '\n')
		if cut > 0 {
			end = start + cut
		}
		chunks = append(chunks, text[start:end])
		next := end - overlap
		if next <= start {
			next = end + 1
		}
		start = next
	}
	return chunks
}
