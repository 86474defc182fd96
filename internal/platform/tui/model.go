package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// storeTimeout bounds every storage call made from the event loop.
const storeTimeout = 2 * time.Second

// ScoreStore persists the best score.
// *storage.Store satisfies it.
type ScoreStore interface {
	HighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

// Options configures a game Model.
type Options struct {
	Config core.RuntimeConfig
	Speed  snake.Speed
	Store  ScoreStore // Optional; nil plays without persistence
	Logger *log.Logger
}

// Model is the Bubble Tea model that drives one snake game.
// It owns the only timer: every armed tick carries a generation number and
// ticks from an older generation are dropped.
type Model struct {
	game   *snake.Game
	screen *core.Screen
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	config core.RuntimeConfig

	gen      uint64 // Generation of the armed tick
	armed    bool
	quitting bool
}

// NewModel creates a game model. The best score is loaded once from the store.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	store := opts.Store
	highScore := 0
	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		best, err := store.HighScore(ctx)
		cancel()
		if err != nil {
			logger.Warn("cannot load high score", "error", err)
		} else {
			highScore = best
		}
	}

	game := snake.New(snake.Config{
		Seed:      cfg.Seed,
		Speed:     opts.Speed,
		HighScore: highScore,
		OnHighScore: func(score int) {
			if store == nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
			defer cancel()
			if err := store.SaveHighScore(ctx, score); err != nil {
				logger.Error("cannot save high score", "score", score, "error", err)
			}
		},
	})

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
	}
}

// Init does nothing: the first tick is armed by the start command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action != core.ActionNone {
		m.logger.Debug("key", "action", action, "status", m.game.Status())
	}

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.disarm()
		return m, tea.Quit

	case action == core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("cannot save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case action == core.ActionStart:
		// A running or paused game is not thrown away by a stray Enter.
		status := m.game.Status()
		if status != snake.StatusNotStarted && status != snake.StatusOver {
			return m, nil
		}
		return m.start()

	case action == core.ActionRestart:
		return m.start()

	case action == core.ActionPause:
		m.game.TogglePause()
		switch m.game.Status() {
		case snake.StatusPaused:
			m.disarm()
			return m, nil
		case snake.StatusRunning:
			if !m.armed {
				cmd := m.arm()
				return m, cmd
			}
		}
		return m, nil

	case action.IsDirection():
		m.game.SetDirection(DirectionFor(action))
		return m, nil
	}

	return m, nil
}

// start begins a fresh game and arms the first tick. Arming bumps the
// generation, so a tick pending from the previous game is dropped.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.game.Start()
	m.logger.Debug("game started", "interval", m.game.Interval())
	cmd := m.arm()
	return m, cmd
}

// handleResize processes window resize events.
// The board has a fixed size, so the game itself is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0)) // Last row holds the help line
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the engine once and re-arms the timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.armed || msg.gen != m.gen {
		return m, nil // Stale tick from a cancelled arming
	}
	m.armed = false

	if m.game.Status() != snake.StatusRunning {
		return m, nil
	}

	res := m.game.Tick()

	if res.NewHighScore {
		m.logger.Debug("new high score", "score", m.game.HighScore())
	}

	if res.GameOver {
		m.logger.Info("game over", "score", m.game.Score(), "best", m.game.HighScore())
		m.logger.Debug("final state\n" + m.game.DebugState())
		m.disarm()
		return m, nil
	}

	if res.IntervalChanged {
		m.logger.Debug("speed up", "interval", res.Interval)
	}

	cmd := m.arm()
	return m, cmd
}

// arm cancels any pending tick and schedules the next one at the engine interval.
func (m *Model) arm() tea.Cmd {
	m.gen++
	m.armed = true
	return tickCmd(m.game.Interval(), m.gen)
}

// disarm invalidates the pending tick, if any.
func (m *Model) disarm() {
	m.gen++
	m.armed = false
}

// saveScreenshot writes the current board as plain text under
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	RenderBoard(m.screen, m.game.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Game returns the engine driven by this model.
func (m Model) Game() *snake.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderBoard(m.screen, m.game.Snapshot())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(centerText(m.help.View(m.keys), m.screen.Width()))
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return fmt.Sprintf("%*s%s", (width-w)/2, "", text)
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
