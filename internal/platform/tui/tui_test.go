package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"x", runeKey('x'), core.ActionRelease, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v/%v, expected %v/%v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestKeyMapperMouse(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.HasPointer || frame.Pointer != core.V(10, 5) {
		t.Errorf("pointer after press = %v/%v, expected (10,5)", frame.HasPointer, frame.Pointer)
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	if frame.HasPointer {
		t.Error("right button should not steer")
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease}, &frame)
	if !frame.PointerUp {
		t.Error("release should set PointerUp")
	}
}

func TestHelpLine(t *testing.T) {
	k := DefaultGameKeyMap()
	if got := helpLine(k.ShortHelp()[:2]); got != "space hold & fire  x release" {
		t.Errorf("helpLine() = %q", got)
	}
}

func TestGameClock(t *testing.T) {
	base := time.Unix(1000, 0)
	c := &gameClock{}

	if now := c.tick(base); now != 0 {
		t.Errorf("first tick = %v, expected 0", now)
	}
	if now := c.tick(base.Add(100 * time.Millisecond)); now != 0.1 {
		t.Errorf("tick after 100ms = %v, expected 0.1", now)
	}

	c.paused = true
	if now := c.tick(base.Add(5 * time.Second)); now != 0.1 {
		t.Errorf("paused tick = %v, expected 0.1", now)
	}

	c.paused = false
	if now := c.tick(base.Add(10 * time.Second)); now != 0.1+maxFrameGap {
		t.Errorf("tick after a stall = %v, expected the gap capped", now)
	}
	if now := c.tick(base.Add(9 * time.Second)); now != 0.1+maxFrameGap {
		t.Errorf("tick with wall time going back = %v, expected no change", now)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorShip)
	s.DrawText(2, 0, "cd", core.ColorEnemy)
	s.DrawText(0, 1, "zz", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "zz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q", want)
		}
	}
}

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 42
	return NewGameModel(GameOptions{
		Game:    config.DefaultSpaceRunConfig(),
		Runtime: rt,
		Store:   store,
		Player:  "tester",
	})
}

func step(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelMouseSteers(t *testing.T) {
	m := newTestModel(t, nil)
	base := time.Unix(2000, 0)

	m = step(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(m, TickMsg(base))

	target, ok := m.game.TouchTarget()
	if !ok || target != m.config.ScreenToWorld(10, 5) {
		t.Fatalf("touch target = %v/%v, expected %v", target, ok, m.config.ScreenToWorld(10, 5))
	}

	start := m.game.Ship().Pos
	m = step(m, TickMsg(base.Add(100*time.Millisecond)))
	if d0, d1 := start.Dist(target), m.game.Ship().Pos.Dist(target); d1 >= d0 {
		t.Errorf("ship did not approach the target: %v -> %v", d0, d1)
	}

	m = step(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease})
	m = step(m, TickMsg(base.Add(200*time.Millisecond)))
	if _, ok := m.game.TouchTarget(); ok {
		t.Error("release should clear the touch target")
	}
}

func TestGameModelKeysNudgeTarget(t *testing.T) {
	m := newTestModel(t, nil)
	ship := m.game.Ship().Pos

	m = step(m, runeKey('d'))
	m = step(m, TickMsg(time.Unix(3000, 0)))

	target, ok := m.game.TouchTarget()
	if !ok {
		t.Fatal("nudge should set a touch target")
	}
	if target.X <= ship.X || target.Y != ship.Y {
		t.Errorf("target after nudging right = %v, ship at %v", target, ship)
	}
}

func TestGameModelPause(t *testing.T) {
	m := newTestModel(t, nil)
	base := time.Unix(4000, 0)

	m = step(m, TickMsg(base))
	m = step(m, TickMsg(base.Add(100*time.Millisecond)))
	before := m.State().Elapsed

	m = step(m, runeKey('p'))
	m = step(m, TickMsg(base.Add(200*time.Millisecond)))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	m = step(m, TickMsg(base.Add(2*time.Second)))
	if got := m.State().Elapsed; got != before {
		t.Errorf("elapsed moved while paused: %v -> %v", before, got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the pause panel")
	}

	m = step(m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b while paused should go back to the menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameModelSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m.saveRun(core.GameState{Score: 120, Elapsed: 12.5, GameOver: true})
	if !m.scoreSaved {
		t.Error("saveRun should mark the run saved")
	}

	zero := newTestModel(t, store)
	zero.saveRun(core.GameState{Score: 0, Elapsed: 0.5, GameOver: true})

	scores, err := store.TopScores("spacerun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 120 || scores[0].Player != "tester" || scores[0].Survived != 12.5 {
		t.Errorf("stored runs = %+v, expected one 120-point run by tester", scores)
	}
	if best := newTestModel(t, store).best; best != 120 {
		t.Errorf("best = %d, expected 120 from the store", best)
	}
}

func TestSessionMenuFlow(t *testing.T) {
	rt := core.DefaultConfig()
	m := NewSessionModel(SessionOptions{Game: config.DefaultSpaceRunConfig(), Runtime: rt})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("Enter on Launch should start a game, screen = %v", s.screen)
	}

	next, _ = s.Update(runeKey('p'))
	next, _ = next.(SessionModel).Update(TickMsg(time.Unix(5000, 0)))
	next, _ = next.(SessionModel).Update(runeKey('b'))
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("b while paused should return to the menu, screen = %v", s.screen)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(SessionModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenScores {
		t.Fatalf("Enter on High Scores should open the scoreboard, screen = %v", s.screen)
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Error("scoreboard without a store should show the empty message")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, cmd := next.(SessionModel).Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")
	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("resolveHostKeyPath() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Player: "ace", Score: 300, Survived: 41.26},
		{Score: 10, Survived: 2},
	})
	if len(rows) != 2 {
		t.Fatalf("scoreRows() returned %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "ace" || rows[0][2] != "300" || rows[0][3] != "41.3s" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "-" {
		t.Errorf("anonymous pilot = %q, expected -", rows[1][1])
	}
}

func TestScoreboardSwitchesRanking(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "spacerun", Player: "scorer", Score: 500, Survived: 10})
	store.SaveRun(storage.Run{GameID: "spacerun", Player: "survivor", Score: 20, Survived: 60})

	m := NewScoreboardModel(store, 80, 30)
	if m.runs[0].Player != "scorer" {
		t.Errorf("top scores lead = %q, expected scorer", m.runs[0].Player)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewLongestRuns || m.runs[0].Player != "survivor" {
		t.Errorf("after tab view = %v lead = %q, expected longest flights led by survivor", m.view, m.runs[0].Player)
	}
	if !strings.Contains(m.View(), "LONGEST FLIGHTS") {
		t.Error("title should name the ranking")
	}
	if m.stats.Runs != 2 || m.stats.BestScore != 500 {
		t.Errorf("stats = %+v", m.stats)
	}
}
