package pacman

// Snapshot is a self-contained copy of the visible game state, safe to
// serialize or render after the engine has moved on. Ghosts always appear
// in the fixed order Blinky, Pinky, Inky, Clyde.
type Snapshot struct {
	Mode  string `json:"mode"`
	Phase string `json:"phase"`
	Level int    `json:"level"`

	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]Cell `json:"cells"`

	DotsRemaining int `json:"dots_remaining"`

	Pacman PacmanSnapshot  `json:"pacman"`
	Ghosts []GhostSnapshot `json:"ghosts"`
}

// PacmanSnapshot is the player avatar's state at snapshot time.
type PacmanSnapshot struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction string  `json:"direction"`
	Lives     int     `json:"lives"`
	Score     int     `json:"score"`
}

// GhostSnapshot is one ghost's state at snapshot time.
type GhostSnapshot struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction string  `json:"direction"`
	Mode      string  `json:"mode"`
}

// Snapshot returns a deep copy of the current state. Later engine calls
// never mutate a returned snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          string(e.mode),
		Phase:         e.phase.String(),
		Level:         e.level,
		Width:         e.maze.Width(),
		Height:        e.maze.Height(),
		Cells:         e.maze.Cells(),
		DotsRemaining: e.dots,
		Pacman: PacmanSnapshot{
			X:         e.pac.Pos.X,
			Y:         e.pac.Pos.Y,
			Direction: e.pac.Dir.String(),
			Lives:     e.pac.Lives,
			Score:     e.pac.Score,
		},
		Ghosts: make([]GhostSnapshot, 0, len(e.ghosts)),
	}
	for i := range e.ghosts {
		g := &e.ghosts[i]
		s.Ghosts = append(s.Ghosts, GhostSnapshot{
			ID:        g.ID.String(),
			X:         g.Pos.X,
			Y:         g.Pos.Y,
			Direction: g.Dir.String(),
			Mode:      g.Mode.String(),
		})
	}
	return s
}
