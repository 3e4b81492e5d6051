package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacerun/internal/storage"
)

const (
	scoreboardGameID = "spacerun"
	maxScores        = 100
)

// boardView selects which ranking the scoreboard lists.
type boardView int

const (
	viewTopScores boardView = iota
	viewLongestRuns
)

func (v boardView) String() string {
	if v == viewLongestRuns {
		return "Longest flights"
	}
	return "Top scores"
}

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Switch}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab", "t"), key.WithHelp("tab", "switch ranking")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = dimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardModel lists recorded runs in a scrollable table.
type ScoreboardModel struct {
	store     *storage.Store
	view      boardView
	runs      []storage.ScoreEntry
	stats     storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the top scores from store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	if store != nil {
		if stats, err := store.Stats(scoreboardGameID); err == nil {
			m.stats = stats
		}
	}
	m.reload()
	return m
}

// newScoreTable builds an empty table that fits a terminal of the given height.
func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Pilot", Width: 14},
			{Title: "Score", Width: 8},
			{Title: "Survived", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
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

// reload fetches the runs for the current view.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	if m.store != nil {
		var err error
		if m.view == viewLongestRuns {
			m.runs, err = m.store.LongestRuns(scoreboardGameID, maxScores)
		} else {
			m.runs, err = m.store.TopScores(scoreboardGameID, maxScores)
		}
		if err != nil {
			m.runs = nil
		}
	}
	m.table.SetRows(scoreRows(m.runs))
	m.table.GotoTop()
}

// scoreRows formats runs as table rows.
func scoreRows(runs []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		pilot := r.Player
		if pilot == "" {
			pilot = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			pilot,
			strconv.Itoa(r.Score),
			fmt.Sprintf("%.1fs", r.Survived),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and ranking switches.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Height)
		m.table.SetRows(scoreRows(m.runs))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the ranking, a summary line and key help.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	body := m.table.View()
	if len(m.runs) == 0 {
		body = boardEmptyStyle.Render("No runs recorded yet.\nSurvive a while to set a high score!")
	}
	summary := fmt.Sprintf("%d runs · best %d · longest %.1fs · %.0fs in flight",
		m.stats.Runs, m.stats.BestScore, m.stats.LongestRun, m.stats.TotalSurvive)

	lines := []string{
		"",
		centerText(boardTitleStyle.Render("SPACE RUN · "+strings.ToUpper(m.view.String())), m.width),
		centerText(dimStyle.Render(summary), m.width),
		"",
		centerText(boardFrameStyle.Render(body), m.width),
		dimStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own. It reports whether the
// player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
