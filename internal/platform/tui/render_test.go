package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-skeet/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, '●', core.ColorOrange)
	s.SetCell(3, 0, '●', core.ColorOrange)
	s.DrawTextColor(0, 1, "HUD", core.Color(200))

	got := strings.Split(RenderScreen(s), "\n")
	if len(got) != 2 {
		t.Fatalf("rendered %d rows, want 2", len(got))
	}

	// Styling may add escape sequences but never changes the visible text.
	want := []string{"ab●●  ", "HUD   "}
	for y, row := range got {
		if lipgloss.Width(row) != 6 {
			t.Errorf("row %d width = %d, want 6", y, lipgloss.Width(row))
		}
		if !strings.Contains(ansi.Strip(row), want[y]) {
			t.Errorf("row %d = %q, want %q", y, ansi.Strip(row), want[y])
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(250)).GetForeground() != styleFor(core.ColorDefault).GetForeground() {
		t.Error("unknown colors should render with the default style")
	}
	if styleFor(core.ColorOlive).GetForeground() != lipgloss.Color("58") {
		t.Error("olive should map to ANSI 58")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{1000, time.Second / 240},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
