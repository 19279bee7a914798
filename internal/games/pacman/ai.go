package pacman

import "math/rand"

// targetFor returns the tile a ghost steers toward given its own mode and
// the scheduled alternation. Frightened ghosts have no target; they pick
// turns at random in chooseDirection.
func targetFor(g *Ghost, pac *PacMan, blinky *Ghost, maze *Maze) Tile {
	// A ghost still inside the house always heads for the door first,
	// whatever its mode. Keeps fresh spawns from orbiting the pen.
	if g.Mode != ModeEaten && maze.CellAt(g.Pos.Tile()) == CellGhostHouse {
		return houseEntrance
	}

	switch g.Mode {
	case ModeEaten:
		return houseEntrance
	case ModeScatter:
		return g.ID.ScatterTarget()
	}

	return chaseTarget(g, pac, blinky)
}

// chaseTarget implements the per-identity chase personalities.
func chaseTarget(g *Ghost, pac *PacMan, blinky *Ghost) Tile {
	pt := pac.Pos.Tile()
	dx, dy := pac.Dir.Vector()

	switch g.ID {
	case Blinky:
		// Direct pursuit.
		return pt

	case Pinky:
		// Ambush: four tiles ahead of Pac-Man's facing.
		return Tile{Col: pt.Col + int(dx)*4, Row: pt.Row + int(dy)*4}

	case Inky:
		// Pivot two tiles ahead of Pac-Man, then reflect Blinky's
		// position through it.
		pivot := Tile{Col: pt.Col + int(dx)*2, Row: pt.Row + int(dy)*2}
		bt := blinky.Pos.Tile()
		return Tile{Col: 2*pivot.Col - bt.Col, Row: 2*pivot.Row - bt.Row}

	default: // Clyde
		// Pursue while far, retreat to the corner when within 8 tiles.
		gt := g.Pos.Tile()
		ddx := float64(gt.Col - pt.Col)
		ddy := float64(gt.Row - pt.Row)
		if ddx*ddx+ddy*ddy > 64 {
			return pt
		}
		return g.ID.ScatterTarget()
	}
}

// chooseDirection picks the ghost's next direction at a cell boundary.
// Candidates are the walkable non-reversing exits in priority order; the
// winner minimizes squared distance to the target, or is uniformly random
// when frightened. A dead end permits the otherwise forbidden reversal.
func chooseDirection(maze *Maze, g *Ghost, target Tile, rng *rand.Rand) Direction {
	from := g.Pos.Tile()
	walkable := ghostStep(maze, g)

	var candidates []Direction
	for _, d := range directions {
		if d == g.Dir.Opposite() {
			continue
		}
		dx, dy := d.Vector()
		if walkable(Tile{Col: from.Col + int(dx), Row: from.Row + int(dy)}) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return g.Dir.Opposite()
	}

	if g.Mode == ModeFrightened {
		return candidates[rng.Intn(len(candidates))]
	}

	best := candidates[0]
	bestDist := tileDistSq(stepTile(from, best), target)
	for _, d := range candidates[1:] {
		if dist := tileDistSq(stepTile(from, d), target); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// ghostStep returns the walkability predicate for a ghost. The house is
// open to eaten ghosts and to ghosts still inside it; otherwise it is as
// solid as a wall.
func ghostStep(maze *Maze, g *Ghost) func(Tile) bool {
	if g.Mode == ModeEaten || maze.CellAt(g.Pos.Tile()) == CellGhostHouse {
		return maze.GhostWalkable
	}
	return maze.Walkable
}

func stepTile(t Tile, d Direction) Tile {
	dx, dy := d.Vector()
	return Tile{Col: t.Col + int(dx), Row: t.Row + int(dy)}
}

func tileDistSq(a, b Tile) float64 {
	dx := float64(a.Col - b.Col)
	dy := float64(a.Row - b.Row)
	return dx*dx + dy*dy
}
