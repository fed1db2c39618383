package home

import (
	"strings"
	"testing"

	"github.com/abhisek/notiz/internal/quiz"
)

func TestHomeScreen_ShowsNotesStats(t *testing.T) {
	cfg := quiz.DefaultConfig()
	cfg.NotesText = "The heart pumps blood through arteries and veins across the body.\n\n" +
		"The lungs exchange oxygen and carbon dioxide during every breath cycle."

	s := New(cfg)
	view := s.View(80, 24)
	if !strings.Contains(view, "2 chunks") {
		t.Errorf("expected chunk count in view, got:\n%s", view)
	}
	if !strings.Contains(view, "2 questions") {
		t.Errorf("expected question count in view, got:\n%s", view)
	}
}

func TestHomeScreen_EmptyNotesDisablesQuiz(t *testing.T) {
	cfg := quiz.DefaultConfig()
	cfg.NotesText = ""

	s := New(cfg)
	if !s.menu.Items[0].Disabled {
		t.Error("Start quiz should be disabled with no questions")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "No questions could be derived") {
		t.Errorf("expected the empty-notes notice, got:\n%s", view)
	}
}

func TestHomeScreen_TopicShown(t *testing.T) {
	cfg := quiz.DefaultConfig()
	cfg.Topic = "heart"
	cfg.NotesText = "The heart pumps blood through arteries and veins across the body."

	s := New(cfg)
	if !strings.Contains(s.View(80, 24), "heart") {
		t.Error("expected the topic filter in the view")
	}
}
