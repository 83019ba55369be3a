package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skeet/internal/core"
	"github.com/vovakirdan/tui-skeet/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.RunResult{
		{GameID: "skeet", Score: 12, Difficulty: "easy", Stats: core.RunStats{Shots: 10, Hits: 8}},
		{GameID: "skeet", Score: 30, Difficulty: "hard", Stats: core.RunStats{Shots: 20, Hits: 10}},
		{GameID: "skeet", Score: 18, Difficulty: "hard", Stats: core.RunStats{Shots: 20, Hits: 10}},
		{GameID: "skeet", Score: 7, Difficulty: "config"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func press(m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardFilters(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30)

	if m.Filter() != "" || len(m.table.Rows()) != 4 {
		t.Fatalf("initial filter %q with %d rows, want all 4 runs", m.Filter(), len(m.table.Rows()))
	}

	tests := []struct {
		key    tea.KeyMsg
		filter string
		rows   int
		best   int
	}{
		{keyMsg("tab"), "easy", 1, 12},
		{keyMsg("l"), "normal", 0, 0},
		{keyMsg("tab"), "hard", 2, 30},
		{keyMsg("left"), "normal", 0, 0},
		{keyMsg("h"), "easy", 1, 12},
		{keyMsg("left"), "", 4, 30},
		{keyMsg("left"), "config", 1, 7},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if m.Filter() != tt.filter {
			t.Fatalf("filter = %q, want %q", m.Filter(), tt.filter)
		}
		if got := len(m.table.Rows()); got != tt.rows {
			t.Errorf("%q: rows = %d, want %d", tt.filter, got, tt.rows)
		}
		switch {
		case tt.rows == 0 && m.stats != nil:
			t.Errorf("%q: stats = %+v, want none", tt.filter, m.stats)
		case tt.rows > 0 && (m.stats == nil || m.stats.HighScore != tt.best):
			t.Errorf("%q: stats = %+v, want best %d", tt.filter, m.stats, tt.best)
		}
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30)
	m = press(m, keyMsg("tab"))
	m = press(m, keyMsg("tab"))
	m = press(m, keyMsg("tab"))

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Skeet", "hard", "Runs:     2", "Accuracy: 50%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	narrow := press(m, keyMsg("tab"))
	next, _ := narrow.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	if strings.Contains(next.(ScoreboardModel).View(), "Runs:") {
		t.Error("narrow view should hide the stats panel")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := press(NewScoreboardModel(nil, 100, 30), keyMsg("esc"))
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back to the menu")
	}

	m = press(NewScoreboardModel(nil, 100, 30), keyMsg("q"))
	if !m.IsQuitting() || m.IsGoingBack() {
		t.Error("q should quit")
	}
}
