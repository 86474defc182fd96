package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// fakeStore records every call made through ScoreStore.
type fakeStore struct {
	mu        sync.Mutex
	high      int
	highSaves []int
	err       error
}

func (f *fakeStore) HighScore(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.high, f.err
}

func (f *fakeStore) SaveHighScore(_ context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.highSaves = append(f.highSaves, score)
	f.high = max(f.high, score)
	return f.err
}

func newTestModel(t *testing.T, store ScoreStore) Model {
	t.Helper()
	return NewModel(Options{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42},
		Speed:  snake.DefaultSpeed(),
		Store:  store,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// tick delivers the currently armed tick.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{gen: m.gen})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = update(t, m, msg)
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func TestModelLoadsHighScore(t *testing.T) {
	m := newTestModel(t, &fakeStore{high: 17})

	if got := m.Game().HighScore(); got != 17 {
		t.Errorf("Expected high score 17 from store, got %d", got)
	}
}

func TestModelStoreErrorsDoNotStopTheGame(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	m := newTestModel(t, store)

	if m.Game().HighScore() != 0 {
		t.Errorf("Failed load should fall back to 0, got %d", m.Game().HighScore())
	}

	m, cmd := update(t, m, keyEnter)
	if cmd == nil || m.Game().Status() != snake.StatusRunning {
		t.Fatal("Game should start even when storage fails")
	}
}

func TestModelNoTickBeforeStart(t *testing.T) {
	m := newTestModel(t, nil)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not arm a tick before the game starts")
	}
	if m.armed {
		t.Error("Model should not be armed before start")
	}
}

func TestModelStartArmsTick(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("Start should arm a tick")
	}
	if !m.armed {
		t.Error("Model should be armed after start")
	}
	if m.Game().Status() != snake.StatusRunning {
		t.Errorf("Expected Running, got %s", m.Game().Status())
	}
}

func TestModelStartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keyRight)
	m, _ = tick(t, m)

	before := m.Game().Snapshot().Tick
	gen := m.gen
	m, cmd := update(t, m, keyEnter)
	if cmd != nil || m.gen != gen {
		t.Error("Enter while running should not re-arm")
	}
	if m.Game().Snapshot().Tick != before {
		t.Error("Enter while running should not restart the game")
	}
}

func TestModelTickAdvancesAndRearms(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keyRight)

	head := m.Game().Snapshot().Head()
	m, cmd := tick(t, m)
	if cmd == nil {
		t.Fatal("Tick should re-arm while running")
	}

	got := m.Game().Snapshot().Head()
	if got.X != head.X+1 || got.Y != head.Y {
		t.Errorf("Head should move right: %v -> %v", head, got)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keyRight)

	stale := TickMsg{gen: m.gen - 1}
	m, cmd := update(t, m, stale)
	if cmd != nil {
		t.Error("Stale tick should not re-arm")
	}
	if m.Game().Snapshot().Tick != 0 {
		t.Error("Stale tick should not advance the engine")
	}

	// The current tick still works
	m, _ = tick(t, m)
	if m.Game().Snapshot().Tick != 1 {
		t.Errorf("Expected 1 tick, got %d", m.Game().Snapshot().Tick)
	}
}

func TestModelPauseCancelsAndResumeRearms(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keyRight)

	pending := TickMsg{gen: m.gen}

	m, cmd := update(t, m, keySpace)
	if cmd != nil {
		t.Error("Pausing should not arm a tick")
	}
	if m.Game().Status() != snake.StatusPaused {
		t.Fatalf("Expected Paused, got %s", m.Game().Status())
	}

	// The tick armed before the pause is dropped
	m, _ = update(t, m, pending)
	if m.Game().Snapshot().Tick != 0 {
		t.Error("Tick armed before the pause should be dropped")
	}

	// Direction changes while paused are ignored
	m = press(t, m, keyUp)
	if m.Game().Direction() != snake.DirRight {
		t.Errorf("Direction should not change while paused, got %s", m.Game().Direction())
	}

	m, cmd = update(t, m, keySpace)
	if cmd == nil {
		t.Fatal("Resuming should re-arm")
	}
	if m.Game().Status() != snake.StatusRunning {
		t.Fatalf("Expected Running, got %s", m.Game().Status())
	}

	// Still stale after resume
	m, _ = update(t, m, pending)
	if m.Game().Snapshot().Tick != 0 {
		t.Error("Tick armed before the pause should stay stale after resume")
	}

	m, _ = tick(t, m)
	if m.Game().Snapshot().Tick != 1 {
		t.Errorf("Expected 1 tick after resume, got %d", m.Game().Snapshot().Tick)
	}
}

func TestModelPauseBeforeStartIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, keySpace)
	if cmd != nil || m.Game().Status() != snake.StatusNotStarted {
		t.Error("Pause before start should be a no-op")
	}
}

// steerToFood drives a fresh single-segment snake onto the food: first
// vertically, then horizontally, so it never reverses.
func steerToFood(t *testing.T, m Model) Model {
	t.Helper()
	snap := m.Game().Snapshot()
	head, food := snap.Head(), snap.Food

	if food.Y != head.Y {
		if food.Y < head.Y {
			m = press(t, m, keyUp)
		} else {
			m = press(t, m, keyDown)
		}
		for m.Game().Snapshot().Head().Y != food.Y {
			m, _ = tick(t, m)
		}
	}

	if food.X != head.X {
		if food.X < head.X {
			m = press(t, m, keyLeft)
		} else {
			m = press(t, m, keyRight)
		}
		for m.Game().Score() == 0 {
			m, _ = tick(t, m)
		}
	}

	if m.Game().Score() != 1 {
		t.Fatalf("Expected to eat the food, score %d", m.Game().Score())
	}
	return m
}

// runIntoWall ticks until the game ends. The snake keeps its heading, so
// it hits a wall without reversing into itself.
func runIntoWall(t *testing.T, m Model) Model {
	t.Helper()
	for range 2 * snake.BoardSize {
		var cmd tea.Cmd
		m, cmd = tick(t, m)
		if m.Game().Status() == snake.StatusOver {
			if cmd != nil {
				t.Error("Game over should not re-arm")
			}
			return m
		}
	}
	t.Fatal("Snake never hit a wall")
	return m
}

func TestModelPersistsHighScore(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	m = press(t, m, keyEnter)

	m = steerToFood(t, m)
	if len(store.highSaves) != 1 || store.highSaves[0] != 1 {
		t.Errorf("High score hook should save 1, got %v", store.highSaves)
	}

	m = runIntoWall(t, m)
	final := m.Game().Score()
	saves := len(store.highSaves)

	if saves != final {
		t.Errorf("Expected one save per point, got %v for score %d", store.highSaves, final)
	}
	if store.high != final {
		t.Errorf("Stored best should be %d, got %d", final, store.high)
	}

	// Late ticks after game over change nothing
	m, _ = update(t, m, TickMsg{gen: m.gen})
	if len(store.highSaves) != saves {
		t.Errorf("High score saved again after game over: %v", store.highSaves)
	}

	if !m.Game().IsNewHighScore() {
		t.Error("First scoring game should be a new high score")
	}
}

func TestModelScoreBelowRecordIsNotSaved(t *testing.T) {
	store := &fakeStore{high: 50}
	m := newTestModel(t, store)
	m = press(t, m, keyEnter)

	m = steerToFood(t, m)
	m = runIntoWall(t, m)

	if len(store.highSaves) != 0 {
		t.Errorf("Scores below the stored best should not be saved, got %v", store.highSaves)
	}
	if m.Game().IsNewHighScore() {
		t.Error("Score below the stored best is not a new high score")
	}
}

func TestModelZeroScoreSavesNothing(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	m = press(t, m, keyEnter)

	// Find a heading that does not pass over the food
	snap := m.Game().Snapshot()
	dir := keyUp
	if snap.Food.X == snap.Head().X && snap.Food.Y < snap.Head().Y {
		dir = keyDown
	}
	m = press(t, m, dir)
	m = runIntoWall(t, m)

	if m.Game().Score() != 0 {
		t.Fatalf("Expected score 0, got %d", m.Game().Score())
	}
	if len(store.highSaves) != 0 {
		t.Errorf("Nothing should be saved for a zero score, got %v", store.highSaves)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	m = press(t, m, keyEnter)
	m = steerToFood(t, m)
	m = runIntoWall(t, m)

	m, cmd := update(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("Restart should arm a tick")
	}
	if m.Game().Status() != snake.StatusRunning || m.Game().Score() != 0 {
		t.Errorf("Expected fresh running game, got %s with score %d", m.Game().Status(), m.Game().Score())
	}
	if m.Game().HighScore() == 0 {
		t.Error("High score should survive a restart")
	}
}

func TestModelRestartKeyMidGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keyRight)
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	oldGen := m.gen
	m, cmd := update(t, m, keyR)
	if cmd == nil || !m.armed {
		t.Fatal("Restart should arm a tick")
	}
	snap := m.Game().Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Direction != snake.DirNone {
		t.Errorf("Expected a fresh game, got tick %d score %d dir %s", snap.Tick, snap.Score, snap.Direction)
	}
	if head := snap.Head(); head.X != snake.BoardSize/2 || head.Y != snake.BoardSize/2 {
		t.Errorf("Snake should be back at the centre, got %v", head)
	}

	// The tick armed by the previous game is dropped
	m, cmd = update(t, m, TickMsg{gen: oldGen})
	if cmd != nil || m.Game().Snapshot().Tick != 0 {
		t.Error("Tick from the previous game should be ignored")
	}
}

func TestModelRestartKeyWhilePaused(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keySpace)
	if m.Game().Status() != snake.StatusPaused || m.armed {
		t.Fatal("Expected a paused, disarmed game")
	}

	m, cmd := update(t, m, keyR)
	if cmd == nil || !m.armed {
		t.Error("Restart from pause should arm a tick")
	}
	if m.Game().Status() != snake.StatusRunning {
		t.Errorf("Expected Running after restart, got %s", m.Game().Status())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyEnter)
	m = press(t, m, keyRight)
	m, _ = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen should be 100x39, got %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.Game().Snapshot().Tick != 1 {
		t.Error("Resize should not reset the game")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, nil)
	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if len(path) <= len(home) || path[:len(home)] != home {
		t.Errorf("Screenshot should be written under HOME, got %s", path)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	if view == "" {
		t.Fatal("View should not be empty")
	}
}
