// Package chunker splits free-form notes text into bounded-length chunks
// suitable for question generation. Splitting prefers paragraph boundaries
// and falls back to sentence boundaries for paragraphs that exceed the
// maximum length; a final pass merges undersized neighbours back together.
package chunker

import (
	"regexp"
	"strings"
)

var paragraphSep = regexp.MustCompile(`\n{2,}`)

// Split breaks text into chunks of roughly minLength to maxLength characters.
//
// Bounds are soft at the edges: a single sentence longer than maxLength is
// emitted whole rather than truncated, and a trailing chunk with nothing left
// to merge with may end up shorter than minLength. Empty input yields nil.
func Split(text string, minLength, maxLength int) []string {
	var chunks []string
	for _, para := range paragraphs(text) {
		if len(para) <= maxLength {
			chunks = append(chunks, para)
			continue
		}
		chunks = append(chunks, packSentences(para, maxLength)...)
	}
	return mergeSmall(chunks, minLength, maxLength)
}

// paragraphs splits on runs of two or more newlines, trimming and dropping
// empty results. Order is preserved.
func paragraphs(text string) []string {
	var out []string
	for _, p := range paragraphSep.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// packSentences greedily packs the paragraph's sentences into chunks of at
// most maxLength characters. An individual sentence over the limit becomes a
// chunk of its own, unsplit.
func packSentences(para string, maxLength int) []string {
	var chunks []string
	var buf string
	for _, sent := range Sentences(para) {
		if buf == "" {
			buf = sent
			continue
		}
		if len(buf)+1+len(sent) <= maxLength {
			buf = buf + " " + sent
			continue
		}
		chunks = append(chunks, buf)
		buf = sent
	}
	if buf != "" {
		chunks = append(chunks, buf)
	}
	return chunks
}

// mergeSmall joins adjacent chunks when either side is shorter than minLength
// and the combined result still fits within maxLength.
func mergeSmall(chunks []string, minLength, maxLength int) []string {
	var merged []string
	var buf string
	for _, chunk := range chunks {
		joined := chunk
		if buf != "" {
			joined = buf + " " + chunk
		}
		if len(joined) <= maxLength && (len(buf) < minLength || len(chunk) < minLength) {
			buf = joined
			continue
		}
		if buf != "" {
			merged = append(merged, buf)
		}
		buf = chunk
	}
	if buf != "" {
		merged = append(merged, buf)
	}
	return merged
}

// Sentences splits text into sentences, breaking after '.', '!' or '?'
// followed by whitespace. This is a heuristic: abbreviations like "Mr." also
// end a sentence. Results are trimmed; empty results are dropped.
func Sentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if isTerminator(text[i]) && isSpace(text[i+1]) {
			emitSentence(&out, text[start:i+1])
			start = i + 1
		}
	}
	emitSentence(&out, text[start:])
	return out
}

func emitSentence(out *[]string, s string) {
	s = strings.TrimSpace(s)
	if s != "" {
		*out = append(*out, s)
	}
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
