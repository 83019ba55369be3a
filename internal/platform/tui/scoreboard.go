package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skeet/internal/config"
	"github.com/vovakirdan/tui-skeet/internal/registry"
	"github.com/vovakirdan/tui-skeet/internal/storage"
)

const (
	minWidthForStats = 80  // Narrower terminals hide the stats panel
	statsPanelWidth  = 22  // Width of the stats panel, borders excluded
	maxScores        = 100 // Runs loaded per filter
)

// scoreFilters are the difficulty filters in switcher order. The empty
// filter shows every run.
var scoreFilters = func() []string {
	filters := []string{""}
	for _, p := range config.Presets {
		filters = append(filters, string(p))
	}
	return append(filters, config.PresetLabel(""))
}()

// filterTitle names a filter for the switcher.
func filterTitle(filter string) string {
	if filter == "" {
		return "all"
	}
	return filter
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next difficulty"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	filterStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	filterOnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows the recorded runs of one range, filtered by the
// difficulty they were played at.
type ScoreboardModel struct {
	gameID    string
	title     string
	filter    int // Index into scoreFilters
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats // Nil when nothing is recorded for the filter
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a scoreboard for the first scored range.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: "skeet",
		title:  "Skeet",
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if scored := registry.Scored(); len(scored) > 0 {
		m.gameID, m.title = scored[0].ID, scored[0].Title
	}

	m.table = m.createTable()
	m.load()
	return m
}

// Filter returns the active difficulty filter; empty means every run.
func (m ScoreboardModel) Filter() string {
	return scoreFilters[m.filter]
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// createTable sizes the run table to the terminal.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Hits", Width: 8},
		{Title: "Streak", Width: 6},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 12},
	}

	available := m.width - 4
	if m.showStats() {
		available -= statsPanelWidth + 4
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := available - used; spare > 0 {
		columns[len(columns)-1].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the runs and the summary for the active filter. Read errors
// leave the board empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		filter := m.Filter()
		if scores, err := m.store.TopScoresByDifficulty(m.gameID, filter, maxScores); err == nil {
			m.scores = scores
		}
		if filter == "" {
			if stats, err := m.store.GetGameStats(m.gameID); err == nil && stats.GamesCount > 0 {
				m.stats = stats
			}
		} else if all, err := m.store.DifficultyStats(m.gameID); err == nil {
			m.stats = all[filter]
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = scoreRow(i+1, s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// scoreRow formats one recorded run for the table.
func scoreRow(rank int, s storage.ScoreEntry) table.Row {
	return table.Row{
		fmt.Sprintf("#%d", rank),
		fmt.Sprintf("%d", s.Score),
		fmt.Sprintf("%.0f%%", s.Stats.Accuracy()*100),
		fmt.Sprintf("%d/%d", s.Stats.Hits, s.Stats.Shots),
		fmt.Sprintf("%d", s.Stats.BestStreak),
		s.Difficulty,
		s.CreatedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(scoreFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(scoreFilters) - 1) % len(scoreFilters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderFilters(), m.width))
	b.WriteString("\n\n")

	board := boardBoxStyle.Render(m.renderTableContent())
	if m.showStats() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, m.renderStats(), "  ", board)
	}
	b.WriteString(centerText(board, m.width))

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderFilters draws the difficulty switcher, highlighting the active one.
func (m ScoreboardModel) renderFilters() string {
	tabs := make([]string, len(scoreFilters))
	for i, f := range scoreFilters {
		if i == m.filter {
			tabs[i] = filterOnStyle.Render(filterTitle(f))
		} else {
			tabs[i] = filterStyle.Render(filterTitle(f))
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", filterTitle(m.Filter()))
	}
	return line
}

// renderStats draws the summary panel for the active filter.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString(filterTitle(m.Filter()) + "\n")
	b.WriteString(strings.Repeat("-", statsPanelWidth-2) + "\n")

	if m.stats == nil {
		b.WriteString(boardDimStyle.Render("no runs"))
	} else {
		s := m.stats
		fmt.Fprintf(&b, "Runs:     %d\n", s.GamesCount)
		fmt.Fprintf(&b, "Best:     %d\n", s.HighScore)
		fmt.Fprintf(&b, "Average:  %.1f\n", s.AvgScore)
		fmt.Fprintf(&b, "Accuracy: %.0f%%\n", s.Accuracy()*100)
		fmt.Fprintf(&b, "Streak:   %d\n", s.BestStreak)
		if !s.LastPlayed.IsZero() {
			fmt.Fprintf(&b, "Last:     %s", s.LastPlayed.Format("Jan 02"))
		}
	}

	return boardBoxStyle.Width(statsPanelWidth).Render(b.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a timed round to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
