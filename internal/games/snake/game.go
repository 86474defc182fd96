// Package snake implements the snake simulation engine: a pure state machine
// advanced one step at a time by an external scheduler. It owns no timers and
// performs no I/O; callers read snapshots and forward commands.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Speed controls the tick interval and how it shrinks as the score grows.
type Speed struct {
	Base  time.Duration // Interval at the start of a game
	Min   time.Duration // Floor the interval never drops below
	Step  time.Duration // Decrease applied on each speed-up
	Every int           // Speed up every N points; <= 0 disables speed-ups
}

// DefaultSpeed returns the classic 100ms start, 10ms faster every 5 points, 50ms floor.
func DefaultSpeed() Speed {
	return Speed{
		Base:  100 * time.Millisecond,
		Min:   50 * time.Millisecond,
		Step:  10 * time.Millisecond,
		Every: 5,
	}
}

// Config holds construction parameters for a Game.
type Config struct {
	Seed      int64 // RNG seed for food placement
	Speed     Speed
	HighScore int // Best score loaded from storage

	// OnHighScore is invoked with the new value every time the best score grows.
	OnHighScore func(score int)
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved        bool
	Ate          bool
	GameOver     bool
	NewHighScore bool

	// IntervalChanged asks the scheduler to cancel and re-arm at Interval.
	IntervalChanged bool
	Interval        time.Duration
}

// Game implements the snake engine.
type Game struct {
	rng   *rand.Rand
	speed Speed
	tick  uint64

	snake     []Point // Head at index 0
	direction Direction
	food      Point
	score     int
	highScore int
	interval  time.Duration
	status    Status

	onHighScore func(int)
}

// New creates a game in the NotStarted state.
func New(cfg Config) *Game {
	speed := cfg.Speed
	if speed.Base <= 0 {
		speed = DefaultSpeed()
	}
	if speed.Min <= 0 || speed.Min > speed.Base {
		speed.Min = speed.Base
	}

	g := &Game{
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		speed:       speed,
		highScore:   max(cfg.HighScore, 0),
		interval:    speed.Base,
		status:      StatusNotStarted,
		onHighScore: cfg.OnHighScore,
	}
	g.snake = []Point{origin()}
	g.food = noFood
	return g
}

// origin is the cell a new snake starts on.
func origin() Point {
	return Point{X: BoardSize / 2, Y: BoardSize / 2}
}

// Start resets the board and begins a new game. The best score is kept.
func (g *Game) Start() {
	g.tick = 0
	g.snake = []Point{origin()}
	g.direction = DirNone
	g.score = 0
	g.interval = g.speed.Base
	g.status = StatusRunning
	g.placeFood()
}

// SetDirection requests a new heading for the next tick.
// Reversals and requests outside Running/NotStarted are ignored.
func (g *Game) SetDirection(d Direction) {
	if !d.valid() {
		return
	}
	if g.status != StatusRunning && g.status != StatusNotStarted {
		return
	}
	// Only the current heading matters, not the neck cell, so a
	// single-segment snake cannot reverse either.
	if d == g.direction.Opposite() {
		return
	}
	g.direction = d
}

// TogglePause flips between Running and Paused.
func (g *Game) TogglePause() {
	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
	}
}

// Tick advances the simulation by one cell.
func (g *Game) Tick() TickResult {
	res := TickResult{Interval: g.interval}
	if g.status != StatusRunning || g.direction == DirNone {
		return res
	}
	g.tick++

	dx, dy := g.direction.Vector()
	newHead := g.snake[0].Add(dx, dy)

	if !newHead.In(BoardSize) {
		g.status = StatusOver
		res.GameOver = true
		return res
	}

	// Checked against the whole pre-move body, tail included.
	if g.isSnakeAt(newHead) {
		g.status = StatusOver
		res.GameOver = true
		return res
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead
	res.Moved = true

	if newHead == g.food {
		res.Ate = true
		g.score++
		if g.score > g.highScore {
			g.highScore = g.score
			res.NewHighScore = true
			if g.onHighScore != nil {
				g.onHighScore(g.highScore)
			}
		}
		if g.speedUp() {
			res.IntervalChanged = true
			res.Interval = g.interval
		}
		g.placeFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	return res
}

// speedUp shortens the interval on every Nth point and reports whether it changed.
func (g *Game) speedUp() bool {
	if g.speed.Every <= 0 || g.speed.Step <= 0 || g.score%g.speed.Every != 0 {
		return false
	}
	if g.interval <= g.speed.Min {
		return false
	}
	g.interval = max(g.interval-g.speed.Step, g.speed.Min)
	return true
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen by this process.
func (g *Game) HighScore() int { return g.highScore }

// Interval returns the delay the scheduler should wait between ticks.
func (g *Game) Interval() time.Duration { return g.interval }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.direction }

// IsNewHighScore reports whether the current score set the record.
func (g *Game) IsNewHighScore() bool {
	return g.score > 0 && g.score == g.highScore
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Status: %s, Score: %d, Best: %d\n", g.tick, g.status, g.score, g.highScore)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Interval: %s\n", len(g.snake), g.direction, g.interval)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y)
	}
	return b.String()
}
