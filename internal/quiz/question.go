package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/notiz/internal/chunker"
)

// Level is a question difficulty tier.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

// String returns the display name for the level.
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Question is a single quiz question derived from one chunk of notes.
type Question struct {
	Text   string
	Answer string
	Level  Level
}

// Word-count thresholds for difficulty classification.
const (
	easyMaxWords   = 40
	mediumMaxWords = 100
)

// levelForWordCount maps a chunk's word count to a difficulty level.
func levelForWordCount(words int) Level {
	switch {
	case words <= easyMaxWords:
		return LevelEasy
	case words <= mediumMaxWords:
		return LevelMedium
	default:
		return LevelHard
	}
}

// FromChunk derives a question/answer pair from a text chunk.
//
// The longest sentence in the chunk becomes the answer, and its longest
// alphanumeric token becomes the keyword the question asks about. The chunk's
// total word count determines the difficulty level. Returns false when the
// chunk contains no sentences or no alphanumeric tokens.
func FromChunk(chunk string) (Question, bool) {
	sentences := chunker.Sentences(chunk)
	if len(sentences) == 0 {
		return Question{}, false
	}

	sentence := sentences[0]
	for _, s := range sentences[1:] {
		if len(s) > len(sentence) {
			sentence = s
		}
	}

	keyword := ""
	for _, w := range strings.Fields(sentence) {
		w = stripToAlnum(w)
		if len(w) > len(keyword) {
			keyword = w
		}
	}
	if keyword == "" {
		return Question{}, false
	}

	return Question{
		Text:   fmt.Sprintf("What does the term '%s' refer to in this context?", keyword),
		Answer: strings.TrimSpace(sentence),
		Level:  levelForWordCount(len(strings.Fields(chunk))),
	}, true
}

// stripToAlnum removes every non-alphanumeric ASCII character from the token.
func stripToAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
