package pacman

import "fmt"

// Direction of movement on the grid. The declaration order (up, left, down,
// right) is also the tie-break priority when a ghost scores equally distant
// turns at an intersection.
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// directions lists all four in priority order.
var directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Vector returns the unit step of the direction in grid coordinates.
// The Y axis grows downward.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("pacman: unknown direction %q", s)
}

// Position is a continuous location in grid units. Whole values sit at cell
// centers; the occupied tile is the nearest center.
type Position struct {
	X, Y float64
}

// Tile returns the tile whose center is nearest to the position.
func (p Position) Tile() Tile {
	return Tile{Col: roundToInt(p.X), Row: roundToInt(p.Y)}
}

// DistSq returns the squared distance to another position.
func (p Position) DistSq(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

func roundToInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

// GhostID identifies one of the four ghosts. Order is fixed and is also the
// order ghosts appear in snapshots.
type GhostID uint8

const (
	Blinky GhostID = iota
	Pinky
	Inky
	Clyde
)

func (id GhostID) String() string {
	switch id {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	default:
		return "clyde"
	}
}

// ScatterTarget returns the ghost's home corner. Corners lie outside the
// grid on purpose: ghosts orbit the nearest reachable loop.
func (id GhostID) ScatterTarget() Tile {
	switch id {
	case Blinky:
		return Tile{Col: 25, Row: -3}
	case Pinky:
		return Tile{Col: 2, Row: -3}
	case Inky:
		return Tile{Col: 27, Row: 31}
	default:
		return Tile{Col: 0, Row: 31}
	}
}

// StartPosition returns the ghost's spawn point. Blinky starts on the
// corridor above the house door; the rest start inside the house.
func (id GhostID) StartPosition() Position {
	switch id {
	case Blinky:
		return Position{X: 14, Y: 11}
	case Pinky:
		return Position{X: 12, Y: 14}
	case Inky:
		return Position{X: 14, Y: 14}
	default:
		return Position{X: 16, Y: 14}
	}
}

// Pac-Man spawn, below the house, facing left.
var pacStart = Position{X: 14, Y: 23}

// houseEntrance is the corridor tile above the ghost house door. Eaten
// ghosts navigate back to it before reviving.
var houseEntrance = Tile{Col: 14, Row: 11}

// PacMan is the player avatar.
type PacMan struct {
	Pos     Position
	Dir     Direction
	NextDir Direction // buffered turn intent, applied when the turn is legal
	Lives   int
	Score   int
}

func newPacMan(lives int) PacMan {
	return PacMan{
		Pos:     pacStart,
		Dir:     DirLeft,
		NextDir: DirLeft,
		Lives:   lives,
	}
}

// Ghost is one of the four adversaries.
type Ghost struct {
	ID      GhostID
	Pos     Position
	Dir     Direction
	NextDir Direction // used only for the player-driven ghost in versus play
	Mode    GhostMode
}

func newGhosts(mode GhostMode) [4]Ghost {
	var out [4]Ghost
	for i, id := range [4]GhostID{Blinky, Pinky, Inky, Clyde} {
		out[i] = Ghost{
			ID:      id,
			Pos:     id.StartPosition(),
			Dir:     DirUp,
			NextDir: DirUp,
			Mode:    mode,
		}
	}
	return out
}
