// Package pacman implements the maze-chase engine: a deterministic,
// call-driven simulation of the classic four-ghost arcade game, plus a thin
// adapter that exposes it as a platform game variant.
package pacman

import "fmt"

// Cell is one square of the maze grid.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellDot
	CellPowerPellet
	CellGhostHouse
	CellTunnel
)

// Maze dimensions of the classic layout.
const (
	MazeWidth  = 28
	MazeHeight = 31
)

// Tile is a discrete grid coordinate (column, row).
type Tile struct {
	Col, Row int
}

// mazeLayout is the fixed compile-time maze. Legend:
//
//	W wall   . dot   o power pellet   G ghost house   T tunnel   E empty
//
// The tunnel pair sits on row 14 at the two horizontal edges. The ghost
// house occupies rows 12-15 in the center with its door on row 12.
var mazeLayout = [MazeHeight]string{
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"W............WW............W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"WoWWWW.WWWWW.WW.WWWWW.WWWWoW",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W..........................W",
	"W.WWWW.WW.WWWWWWWW.WW.WWWW.W",
	"W.WWWW.WW.WWWWWWWW.WW.WWWW.W",
	"W......WW....WW....WW......W",
	"WWWWWW.WWWWW.WW.WWWWW.WWWWWW",
	"WWWWWW.WWWWW.WW.WWWWW.WWWWWW",
	"WWWWWW.WW..........WW.WWWWWW",
	"WWWWWW.WW.WWWGGWWW.WW.WWWWWW",
	"WWWWWW.WW.WGGGGGGW.WW.WWWWWW",
	"TEEEEE....WGGGGGGW....EEEEET",
	"WWWWWW.WW.WGGGGGGW.WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"WWWWWW.WW..........WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"W............WW............W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"Wo..WW................WW..oW",
	"WWW.WW.WW.WWWWWWWW.WW.WW.WWW",
	"WWW.WW.WW.WWWWWWWW.WW.WW.WWW",
	"W......WW....WW....WW......W",
	"W.WWWWWWWWWW.WW.WWWWWWWWWW.W",
	"W.WWWWWWWWWW.WW.WWWWWWWWWW.W",
	"W..........................W",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
}

// Maze is the game grid. Created once at game start; mutated only by
// Consume and RestoreDots, never resized.
type Maze struct {
	cells   [MazeHeight][MazeWidth]Cell
	tunnels map[Tile]Tile
}

// NewMaze builds the classic maze from the fixed layout.
func NewMaze() *Maze {
	m := &Maze{}
	m.fillFromLayout()

	// Pair tunnel cells row by row: leftmost with rightmost.
	m.tunnels = make(map[Tile]Tile)
	for row := 0; row < MazeHeight; row++ {
		var ends []Tile
		for col := 0; col < MazeWidth; col++ {
			if m.cells[row][col] == CellTunnel {
				ends = append(ends, Tile{Col: col, Row: row})
			}
		}
		if len(ends) == 2 {
			m.tunnels[ends[0]] = ends[1]
			m.tunnels[ends[1]] = ends[0]
		} else if len(ends) != 0 {
			panic(fmt.Sprintf("pacman: row %d has %d tunnel cells, want 0 or 2", row, len(ends)))
		}
	}
	return m
}

func (m *Maze) fillFromLayout() {
	for row, line := range mazeLayout {
		if len(line) != MazeWidth {
			panic(fmt.Sprintf("pacman: layout row %d has %d cells, want %d", row, len(line), MazeWidth))
		}
		for col, ch := range line {
			switch ch {
			case 'W':
				m.cells[row][col] = CellWall
			case '.':
				m.cells[row][col] = CellDot
			case 'o':
				m.cells[row][col] = CellPowerPellet
			case 'G':
				m.cells[row][col] = CellGhostHouse
			case 'T':
				m.cells[row][col] = CellTunnel
			default:
				m.cells[row][col] = CellEmpty
			}
		}
	}
}

// Width returns the maze width in cells.
func (m *Maze) Width() int { return MazeWidth }

// Height returns the maze height in cells.
func (m *Maze) Height() int { return MazeHeight }

// CellAt returns the cell at the given tile. Out-of-bounds tiles read as
// walls; callers inside the engine never pass them except when probing
// neighbors of edge cells.
func (m *Maze) CellAt(t Tile) Cell {
	if t.Col < 0 || t.Col >= MazeWidth || t.Row < 0 || t.Row >= MazeHeight {
		return CellWall
	}
	return m.cells[t.Row][t.Col]
}

// Walkable reports whether Pac-Man may occupy the tile.
// Columns past the horizontal edges count as walkable when the edge cell on
// that row is a tunnel, so entities can slide off-grid before wrapping.
func (m *Maze) Walkable(t Tile) bool {
	if c, off := m.offGrid(t); off {
		return c
	}
	cell := m.cells[t.Row][t.Col]
	return cell != CellWall && cell != CellGhostHouse
}

// GhostWalkable reports whether a ghost may occupy the tile.
// Ghosts additionally traverse the ghost house.
func (m *Maze) GhostWalkable(t Tile) bool {
	if c, off := m.offGrid(t); off {
		return c
	}
	return m.cells[t.Row][t.Col] != CellWall
}

// offGrid resolves tiles outside the horizontal bounds: walkable only as a
// continuation of a tunnel row. Vertical out-of-bounds is never walkable.
func (m *Maze) offGrid(t Tile) (walkable, off bool) {
	if t.Row < 0 || t.Row >= MazeHeight {
		return false, true
	}
	if t.Col < 0 {
		return m.cells[t.Row][0] == CellTunnel, true
	}
	if t.Col >= MazeWidth {
		return m.cells[t.Row][MazeWidth-1] == CellTunnel, true
	}
	return false, false
}

// Wrap returns the tunnel-paired tile if t is a tunnel cell, else t unchanged.
func (m *Maze) Wrap(t Tile) Tile {
	if pair, ok := m.tunnels[t]; ok {
		return pair
	}
	return t
}

// Consume turns a Dot or PowerPellet at the tile into Empty.
// It returns the consumed kind and true, or (CellEmpty, false) when there
// was nothing to eat. Idempotent on already-empty cells.
func (m *Maze) Consume(t Tile) (Cell, bool) {
	if t.Col < 0 || t.Col >= MazeWidth || t.Row < 0 || t.Row >= MazeHeight {
		return CellEmpty, false
	}
	switch m.cells[t.Row][t.Col] {
	case CellDot:
		m.cells[t.Row][t.Col] = CellEmpty
		return CellDot, true
	case CellPowerPellet:
		m.cells[t.Row][t.Col] = CellEmpty
		return CellPowerPellet, true
	}
	return CellEmpty, false
}

// DotsRemaining counts Dot and PowerPellet cells still present.
func (m *Maze) DotsRemaining() int {
	n := 0
	for row := range m.cells {
		for _, c := range m.cells[row] {
			if c == CellDot || c == CellPowerPellet {
				n++
			}
		}
	}
	return n
}

// RestoreDots refills every consumed dot and pellet for a new level.
func (m *Maze) RestoreDots() {
	m.fillFromLayout()
}

// Cells returns a deep copy of the grid for snapshots.
func (m *Maze) Cells() [][]Cell {
	out := make([][]Cell, MazeHeight)
	for row := range m.cells {
		out[row] = make([]Cell, MazeWidth)
		copy(out[row], m.cells[row][:])
	}
	return out
}
