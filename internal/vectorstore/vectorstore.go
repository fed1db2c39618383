// Package vectorstore provides TF-IDF similarity search over note chunks.
// It is a standalone retrieval utility: the quiz flow never consults it.
package vectorstore

import (
	"math"
	"sort"
	"strings"
)

// Match is a single search result.
type Match struct {
	Index int
	Chunk string
	Score float64
}

// Store holds L2-normalized TF-IDF vectors for a fixed set of chunks.
type Store struct {
	chunks  []string
	vocab   map[string]int
	idf     []float64
	vectors [][]float64
}

// New builds a store over the given chunks. Tokens are lowercased
// alphanumeric runs with common English stopwords removed.
func New(chunks []string) *Store {
	s := &Store{
		chunks: chunks,
		vocab:  make(map[string]int),
	}

	docs := make([][]string, len(chunks))
	docFreq := make(map[string]int)
	for i, chunk := range chunks {
		docs[i] = tokenize(chunk)
		seen := make(map[string]bool)
		for _, tok := range docs[i] {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			docFreq[tok]++
			if _, ok := s.vocab[tok]; !ok {
				s.vocab[tok] = len(s.vocab)
			}
		}
	}

	// Smoothed idf, so terms present in every chunk still carry weight.
	n := float64(len(chunks))
	s.idf = make([]float64, len(s.vocab))
	for tok, id := range s.vocab {
		s.idf[id] = math.Log((1+n)/(1+float64(docFreq[tok]))) + 1
	}

	s.vectors = make([][]float64, len(docs))
	for i, toks := range docs {
		s.vectors[i] = s.vectorize(toks)
	}
	return s
}

// Search returns the topK chunks most similar to the query, best first.
// Chunks with zero similarity are omitted.
func (s *Store) Search(query string, topK int) []Match {
	qvec := s.vectorize(tokenize(query))
	if qvec == nil {
		return nil
	}

	var matches []Match
	for i, vec := range s.vectors {
		score := dot(qvec, vec)
		if score > 0 {
			matches = append(matches, Match{Index: i, Chunk: s.chunks[i], Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// Len reports the number of indexed chunks.
func (s *Store) Len() int {
	return len(s.chunks)
}

// vectorize builds an L2-normalized TF-IDF vector for the tokens. Tokens
// outside the vocabulary are ignored. Returns nil when nothing matched.
func (s *Store) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(s.vocab))
	any := false
	for _, tok := range tokens {
		id, ok := s.vocab[tok]
		if !ok {
			continue
		}
		vec[id] += s.idf[id]
		any = true
	}
	if !any {
		return nil
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// dot returns the dot product, which equals cosine similarity for
// normalized vectors. Either side may be nil (zero vector).
func dot(a, b []float64) float64 {
	if a == nil || b == nil {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize lowercases the text and splits it into alphanumeric runs,
// dropping stopwords.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if !stopwords[tok] {
			tokens = append(tokens, tok)
		}
	}
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// stopwords is a compact English stopword list; enough to keep glue words
// from dominating the vectors.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"if": true, "in": true, "is": true, "it": true, "its": true,
	"not": true, "of": true, "on": true, "or": true,
	"she": true, "that": true, "the": true, "their": true, "there": true,
	"these": true, "they": true, "this": true, "to": true, "was": true,
	"were": true, "which": true, "will": true, "with": true,
}
