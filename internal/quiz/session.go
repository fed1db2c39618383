package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/notiz/internal/chunker"
)

// Session holds the question pool and adaptive-difficulty state for one quiz
// run. Questions live in per-level buckets; each question is served at most
// once. State is not persisted — a session dies with the process.
type Session struct {
	// ID is a unique identifier for this run.
	ID string

	// Level is the difficulty tier the next question will be drawn from.
	Level Level

	// Correct and Incorrect count graded answers so far.
	Correct   int
	Incorrect int

	buckets map[Level][]Question
}

// NewSession chunks the notes, derives one question per usable chunk, buckets
// questions by difficulty and shuffles each bucket. The session starts at
// medium difficulty.
func NewSession(cfg Config) *Session {
	s := &Session{
		ID:    uuid.New().String(),
		Level: LevelMedium,
		buckets: map[Level][]Question{
			LevelEasy:   nil,
			LevelMedium: nil,
			LevelHard:   nil,
		},
	}

	topic := strings.ToLower(cfg.Topic)
	for _, chunk := range chunker.Split(cfg.NotesText, cfg.MinChunkLength, cfg.MaxChunkLength) {
		if topic != "" && !strings.Contains(strings.ToLower(chunk), topic) {
			continue
		}
		q, ok := FromChunk(chunk)
		if !ok {
			continue
		}
		s.buckets[q.Level] = append(s.buckets[q.Level], q)
	}

	// Shuffle buckets in a fixed order so a pinned seed reproduces the
	// serving order exactly; map iteration order would not.
	rng := newRand(cfg.Seed)
	for _, level := range []Level{LevelEasy, LevelMedium, LevelHard} {
		bucket := s.buckets[level]
		rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
	}

	return s
}

// newRand returns a seeded source, or a nondeterministic one for seed 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Next pops the next question to serve. When the current level's bucket is
// empty, the session falls back to the non-empty bucket with the most
// questions remaining (lowest level wins ties). Returns false when every
// bucket is exhausted.
func (s *Session) Next() (Question, bool) {
	if len(s.buckets[s.Level]) == 0 {
		best, found := s.Level, false
		for _, level := range []Level{LevelEasy, LevelMedium, LevelHard} {
			n := len(s.buckets[level])
			if n == 0 {
				continue
			}
			if !found || n > len(s.buckets[best]) {
				best, found = level, true
			}
		}
		if !found {
			return Question{}, false
		}
		s.Level = best
	}

	bucket := s.buckets[s.Level]
	q := bucket[len(bucket)-1]
	s.buckets[s.Level] = bucket[:len(bucket)-1]
	return q, true
}

// Record registers a graded answer: counters update and difficulty escalates
// on a correct answer, de-escalates on an incorrect one.
func (s *Session) Record(correct bool) {
	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
	s.Level = advance(s.Level, correct)
}

// advance is the difficulty transition: up one level when correct, down one
// when incorrect, clamped to [LevelEasy, LevelHard].
func advance(level Level, correct bool) Level {
	if correct {
		if level < LevelHard {
			return level + 1
		}
		return level
	}
	if level > LevelEasy {
		return level - 1
	}
	return level
}

// Remaining reports how many questions are left across all buckets.
func (s *Session) Remaining() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

// CountByLevel reports how many questions remain in the given bucket.
func (s *Session) CountByLevel(level Level) int {
	return len(s.buckets[level])
}

// Summary returns the session's result counts so far.
func (s *Session) Summary() Summary {
	return Summary{
		Answered:  s.Correct + s.Incorrect,
		Correct:   s.Correct,
		Incorrect: s.Incorrect,
	}
}
