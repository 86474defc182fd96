package snake

// noFood parks the food off the board when no free cell is left.
var noFood = Point{X: -1, Y: -1}

// maxFoodSamples bounds rejection sampling before falling back to the free-cell list.
const maxFoodSamples = 4 * BoardSize * BoardSize

// placeFood puts food on a uniformly random cell not covered by the snake.
func (g *Game) placeFood() {
	if len(g.snake) >= BoardSize*BoardSize {
		g.food = noFood
		return
	}

	for range maxFoodSamples {
		p := Point{X: g.rng.Intn(BoardSize), Y: g.rng.Intn(BoardSize)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}

	// Nearly full board: pick from the explicit set of free cells.
	free := g.freeCells()
	if len(free) == 0 {
		g.food = noFood
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// freeCells lists every cell not occupied by the snake.
func (g *Game) freeCells() []Point {
	occupied := make(map[Point]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	cells := make([]Point, 0, BoardSize*BoardSize-len(g.snake))
	for y := range BoardSize {
		for x := range BoardSize {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
