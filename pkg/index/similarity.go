package index

import (
	"math"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
)

// l2Normalize normalizes a vector in place using the L2 norm and returns it.
func l2Normalize(vec []float32) []float32 {
	var sumSquares float32
	for _, v := range vec {
		sumSquares += v * v
	}

	magnitude := float32(math.Sqrt(float64(sumSquares)))
	if magnitude < 1e-10 {
		for i := range vec {
			vec[i] = 0
		}
		return vec
	}

	invMag := 1.0 / magnitude
	for i := range vec {
		vec[i] *= invMag
	}
	return vec
}

// dotProduct of two L2-normalized vectors equals their cosine similarity.
func dotProduct(v1, v2 []float32) float32 {
	if len(v1) != len(v2) {
		return 0
	}
	var sum float32
	for i := range v1 {
		sum += v1[i] * v2[i]
	}
	return sum
}

// lexicalSimilarity scores how well a chunk matches a query without
// embeddings, combining substring containment with token-wise Levenshtein
// matching so typos and partial keywords still rank relevant chunks first.
func lexicalSimilarity(query, text string) float64 {
	queryLower := strings.ToLower(query)
	textLower := strings.ToLower(text)

	if queryLower == "" || textLower == "" {
		return 0
	}
	if strings.Contains(textLower, queryLower) {
		return 0.95
	}

	queryTokens := tokenize(queryLower)
	if len(queryTokens) == 0 {
		return 0
	}
	textTokens := tokenize(textLower)

	total := 0.0
	for qToken := range queryTokens {
		best := 0.0
		if textTokens[qToken] {
			best = 1.0
		} else {
			for tToken := range textTokens {
				dist := levenshtein.Distance(qToken, tToken, nil)
				max := float64(len(qToken))
				if len(tToken) > int(max) {
					max = float64(len(tToken))
				}
				if max == 0 {
					continue
				}
				score := 1.0 - float64(dist)/max
				if score > best {
					best = score
				}
			}
		}
		total += best
	}
	return total / float64(len(queryTokens))
}

// tokenize splits on any non-alphanumeric rune and returns the token set.
func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(tok) > 1 {
			tokens[tok] = true
		}
	}
	return tokens
}
