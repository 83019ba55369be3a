// Package tui provides the Bubble Tea integration for the skeet range.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240 // Faster ticks outrun the terminal redraw
)

// TickMsg asks the model to advance the range by one fixed step.
type TickMsg time.Time

// tickInterval is the wall time between simulation steps. Rates outside
// (0, maxTickRate] fall back to the nearest usable value.
func tickInterval(tickRate int) time.Duration {
	switch {
	case tickRate <= 0:
		tickRate = defaultTickRate
	case tickRate > maxTickRate:
		tickRate = maxTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next simulation step.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
