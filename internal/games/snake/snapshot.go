package snake

import "time"

// Snapshot is a read-only copy of the game state for renderers and tests.
// It shares no memory with the Game.
type Snapshot struct {
	Tick      uint64
	Snake     []Point // Head first
	Direction Direction
	Food      Point
	HasFood   bool
	Score     int
	HighScore int
	Interval  time.Duration
	Status    Status
}

// NoHead is returned by Head for a snapshot without a snake. It lies off
// the board, so renderers skip it.
var NoHead = Point{X: -1, Y: -1}

// Head returns the head cell, or NoHead when the snake is empty.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return NoHead
	}
	return s.Snake[0]
}

// NewHighScore reports whether the snapshot's score is a fresh record.
func (s Snapshot) NewHighScore() bool {
	return s.Score > 0 && s.Score == s.HighScore
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Tick:      g.tick,
		Snake:     body,
		Direction: g.direction,
		Food:      g.food,
		HasFood:   g.food.In(BoardSize),
		Score:     g.score,
		HighScore: g.highScore,
		Interval:  g.interval,
		Status:    g.status,
	}
}
