package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/effects"
	"github.com/vovakirdan/spacerun/internal/games/spacerun"
	"github.com/vovakirdan/spacerun/internal/hud"
	"github.com/vovakirdan/spacerun/internal/storage"
)

// nudgeCells is how far one steering key press moves the target.
const nudgeCells = 4

// GameOptions configures a game screen.
type GameOptions struct {
	Game    config.SpaceRunConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables score saving
	Player  string
	Audio   effects.Player // nil plays nothing
	Logger  *log.Logger
}

// GameModel is the Bubble Tea model that runs one Space Run game.
type GameModel struct {
	game      *spacerun.Game
	display   *hud.Display
	fx        *effects.Tracker
	stars     *effects.Starfield
	screen    *core.Screen
	store     *storage.Store
	player    string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	input     core.InputFrame
	clock     *gameClock
	logger    *log.Logger

	best       int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a game model and starts the first run.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	display := hud.New()
	tracker := effects.NewTracker(opts.Audio)
	tracker.SetLogger(logger)

	game := spacerun.New(opts.Game)
	game.SetHUD(display)
	game.SetEffects(tracker)
	game.SetLogger(logger)
	game.Reset(cfg)

	m := GameModel{
		game:      game,
		display:   display,
		fx:        tracker,
		stars:     effects.NewStarfield(opts.Game.Starfield, rand.New(rand.NewSource(cfg.Seed+1))),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		player:    opts.Player,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
		clock:     &gameClock{},
		logger:    logger,
	}
	m.best = m.highScore()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.input)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keyMapper.IsBack(msg) && (m.game.State().GameOver || m.clock.paused) {
		m.backToMenu = true
	}
	return m, nil
}

// handleResize keeps the run going in the new play area.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)
	return m, nil
}

// handleTick applies buffered input and advances the simulation.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	over := m.game.State().GameOver
	if m.input.Has(core.ActionRestart) && over {
		m.restart()
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}
	if m.input.Has(core.ActionPause) && !over {
		m.clock.paused = !m.clock.paused
	}

	now := m.clock.tick(t)
	if !m.clock.paused {
		m.applyInput()
		m.game.Advance(now)
		m.fx.Advance(now)
		m.display.Tick(now)
		m.display.SetBoosted(m.game.Boosted())
		w, _ := m.game.PlaySize()
		m.stars.Update(now, w)
	}

	if state := m.game.State(); state.GameOver && !m.scoreSaved {
		m.saveRun(state)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyInput turns the frame's pointer and keys into a touch target.
func (m GameModel) applyInput() {
	if m.input.PointerUp || m.input.Has(core.ActionRelease) {
		m.game.ClearTouchTarget()
	}
	if m.input.HasPointer {
		col, row := int(m.input.Pointer.X), int(m.input.Pointer.Y)
		m.game.SetTouchTarget(m.config.ScreenToWorld(col, row))
	}
	if m.input.Has(core.ActionFire) {
		m.game.SetTouchTarget(m.game.Ship().Pos)
	}

	var dir core.Vec2
	if m.input.Has(core.ActionUp) {
		dir.Y++
	}
	if m.input.Has(core.ActionDown) {
		dir.Y--
	}
	if m.input.Has(core.ActionLeft) {
		dir.X--
	}
	if m.input.Has(core.ActionRight) {
		dir.X++
	}
	if dir == (core.Vec2{}) {
		return
	}

	base, ok := m.game.TouchTarget()
	if !ok {
		base = m.game.Ship().Pos
	}
	cw, ch := m.config.CellW, m.config.CellH
	if cw <= 0 || ch <= 0 {
		cw, ch = 8, 16
	}
	w, h := m.game.PlaySize()
	target := base.Add(core.V(dir.X*cw*nudgeCells, dir.Y*ch*nudgeCells/2))
	target.X = core.ClampF(target.X, 0, w)
	target.Y = core.ClampF(target.Y, 0, h)
	m.game.SetTouchTarget(target)
}

// restart begins a new run with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.fx.Reset()
	m.clock.paused = false
	m.scoreSaved = false
	m.best = m.highScore()
}

// saveRun records the finished run once.
func (m *GameModel) saveRun(state core.GameState) {
	m.scoreSaved = true
	m.logger.Info("run finished", "player", m.player, "score", state.Score, "survived", state.Elapsed)
	if m.store == nil || state.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    state.Score,
		Survived: state.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

func (m GameModel) highScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".spacerun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw composes one frame into the screen buffer.
func (m GameModel) draw() {
	m.screen.Clear()
	m.game.Render(m.screen)
	m.stars.Draw(m.screen, m.config, m.clock.now)
	m.fx.Draw(m.screen, m.config)
	m.display.Draw(m.screen, 0)

	state := m.game.State()
	switch {
	case state.GameOver:
		best := max(m.best, state.Score)
		m.drawPanel(
			"SHIP DESTROYED",
			fmt.Sprintf("Score %d   Best %d", state.Score, best),
			fmt.Sprintf("Survived %.1fs", state.Elapsed),
			helpLine([]key.Binding{m.keyMapper.Keys().Restart, m.keyMapper.Keys().Back, m.keyMapper.Keys().Quit}),
		)
	case m.clock.paused:
		m.drawPanel("PAUSED", "drag the mouse to steer", helpLine(m.keyMapper.Keys().ShortHelp()))
	}
}

// drawPanel draws a centered box with one line of text per row.
func (m GameModel) drawPanel(lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2
	x := (m.screen.Width() - width) / 2
	y := (m.screen.Height() - height) / 2

	m.screen.FillRect(x, y, width, height, ' ', core.ColorOverlay)
	m.screen.DrawBox(x, y, width, height, core.ColorOverlay)
	for i, l := range lines {
		m.screen.DrawTextCentered(y+1+i, l, core.ColorOverlay)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// State returns the current run summary.
func (m GameModel) State() core.GameState {
	return m.game.State()
}

// Paused reports whether the game clock is stopped.
func (m GameModel) Paused() bool {
	return m.clock.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a single game in the local terminal.
func Run(opts GameOptions) error {
	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
