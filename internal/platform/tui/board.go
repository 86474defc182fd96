package tui

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Board layout. Each grid cell is two terminal columns wide so the board
// looks square in most fonts.
const (
	cellWidth   = 2
	boardWidth  = snake.BoardSize*cellWidth + 2 // Grid plus frame
	boardHeight = snake.BoardSize + 2
	hudHeight   = 1

	// MinScreenWidth and MinScreenHeight are the smallest screen that fits the board.
	MinScreenWidth  = boardWidth
	MinScreenHeight = boardHeight + hudHeight
)

// RenderBoard draws a snapshot into dst: HUD line, framed grid, snake, food
// and the overlay for the current status.
func RenderBoard(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenWidth || dst.Height() < MinScreenHeight {
		cy := dst.Height() / 2
		dst.DrawTextCentered(cy, "Window too small", core.ColorBrightYellow)
		dst.DrawTextCentered(cy+1, fmt.Sprintf("need %dx%d", MinScreenWidth, MinScreenHeight), core.ColorGray)
		return
	}

	area := core.CenteredRect(dst.Bounds(), boardWidth, boardHeight+hudHeight)
	frame := core.NewRect(area.X, area.Y+hudHeight, boardWidth, boardHeight)

	drawHUD(dst, area, snap)
	dst.DrawBox(frame, core.ColorGray)

	// Grid dots
	for y := range snake.BoardSize {
		for x := range snake.BoardSize {
			setCell(dst, frame, snake.Point{X: x, Y: y}, "· ", core.ColorDarkGray)
		}
	}

	if snap.HasFood {
		setCell(dst, frame, snap.Food, "● ", core.ColorBrightRed)
	}

	// Body first so the head is never hidden
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		setCell(dst, frame, snap.Snake[i], "██", core.ColorGreen)
	}
	if len(snap.Snake) > 0 {
		setCell(dst, frame, snap.Head(), "██", core.ColorBrightGreen)
	}

	drawOverlay(dst, frame, snap)
}

// setCell draws a two-rune glyph at grid point p inside frame.
func setCell(dst *core.Screen, frame core.Rect, p snake.Point, glyph string, c core.Color) {
	if !p.In(snake.BoardSize) {
		return
	}
	dst.DrawTextColored(frame.X+1+p.X*cellWidth, frame.Y+1+p.Y, glyph, c)
}

func drawHUD(dst *core.Screen, area core.Rect, snap snake.Snapshot) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(area.X+1, area.Y, score, core.ColorWhite)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	bestColor := core.ColorYellow
	if snap.NewHighScore() {
		bestColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(area.X+len(score)+4, area.Y, best, bestColor)

	speed := fmt.Sprintf("%dms", snap.Interval.Milliseconds())
	dst.DrawTextColored(area.Right()-1-len(speed), area.Y, speed, core.ColorGray)
}

func drawOverlay(dst *core.Screen, frame core.Rect, snap snake.Snapshot) {
	var lines []overlayLine

	switch snap.Status {
	case snake.StatusNotStarted:
		lines = []overlayLine{
			{"S N A K E", core.ColorBrightGreen},
			{"", core.ColorDefault},
			{"Press Enter to start", core.ColorWhite},
			{"arrows/wasd to move", core.ColorGray},
		}
	case snake.StatusRunning:
		if snap.Direction == snake.DirNone {
			// On the bottom edge, clear of the start cell at the centre
			hint := " Press a direction "
			x := frame.X + (frame.W-len([]rune(hint)))/2
			dst.DrawTextColored(x, frame.Bottom()-1, hint, core.ColorWhite)
		}
		return
	case snake.StatusPaused:
		lines = []overlayLine{
			{"PAUSED", core.ColorBrightYellow},
			{"space to resume", core.ColorGray},
		}
	case snake.StatusOver:
		lines = []overlayLine{
			{"GAME OVER", core.ColorBrightRed},
			{fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite},
		}
		if snap.NewHighScore() {
			lines = append(lines, overlayLine{"New high score!", core.ColorBrightYellow})
		}
		lines = append(lines, overlayLine{"Enter to play again, q to quit", core.ColorGray})
	}

	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	box := core.CenteredRect(frame, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l.text)))/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}

type overlayLine struct {
	text  string
	color core.Color
}
