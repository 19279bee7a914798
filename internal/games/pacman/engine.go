package pacman

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/pacmaze/pacmaze/internal/config"
	"github.com/pacmaze/pacmaze/internal/multiplayer"
)

// Mode selects who controls what.
type Mode string

const (
	// ModeClassic has all four ghosts on AI.
	ModeClassic Mode = "classic"
	// ModePvP hands Blinky to a second player.
	ModePvP Mode = "pvp"
)

// ErrInvalidMode is returned by NewEngine for an unknown mode string.
var ErrInvalidMode = errors.New("pacman: invalid mode")

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClassic, ModePvP:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Phase is the engine's lifecycle state.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhasePlayerDied
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhasePlayerDied:
		return "player_died"
	default:
		return "game_over"
	}
}

const (
	// maxStepSecs bounds a single integration step. Larger deltas are
	// split so no entity can cross more than a fraction of a tile per
	// step.
	maxStepSecs = 1.0 / 60.0

	// maxAdvanceMs caps the delta a single Advance call will simulate.
	// Hosts tick in small deltas; anything larger is clamped so one call
	// cannot spin sub-steps unboundedly.
	maxAdvanceMs = 5000.0

	// turnTolerance is how close to a cell center a buffered 90 degree
	// turn may snap. Must exceed the per-step travel distance.
	turnTolerance = 0.35

	// collisionRadiusSq is the squared center distance that counts as
	// contact between Pac-Man and a ghost.
	collisionRadiusSq = 0.25

	// arrivalToleranceSq is how close an eaten ghost must get to the
	// house entrance to revive. Half a tile, wider than the largest
	// per-step travel so the window cannot be stepped over.
	arrivalToleranceSq = 0.25
)

// Engine is the authoritative game simulation. It is not safe for
// concurrent use; the owning session serializes calls.
type Engine struct {
	mode   Mode
	phase  Phase
	maze   *Maze
	pac    PacMan
	ghosts [4]Ghost
	dots   int
	level  int
	clock  *ModeClock
	cfg    config.PacmanConfig
	rng    *rand.Rand

	chain      int     // ghosts eaten in the current frightened run
	phaseTimer float64 // countdown for respawn and level-clear pauses
}

// NewEngine creates an engine in the Ready phase. The seed fixes the
// frightened-mode randomness; two engines with equal mode, config and seed
// stay identical under the same call sequence.
func NewEngine(mode string, cfg config.PacmanConfig, seed int64) (*Engine, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	maze := NewMaze()
	e := &Engine{
		mode:  m,
		phase: PhaseReady,
		maze:  maze,
		dots:  maze.DotsRemaining(),
		level: 1,
		clock: NewModeClock(1),
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.pac = newPacMan(cfg.Gameplay.Lives)
	e.ghosts = newGhosts(e.clock.Scheduled())
	return e, nil
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// GameMode returns the engine mode.
func (e *Engine) GameMode() Mode { return e.mode }

// Score returns Pac-Man's score.
func (e *Engine) Score() int { return e.pac.Score }

// Lives returns Pac-Man's remaining lives.
func (e *Engine) Lives() int { return e.pac.Lives }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// DotsRemaining returns the engine's dot counter.
func (e *Engine) DotsRemaining() int { return e.dots }

// SetDirection records a player's turn intent. Player one steers Pac-Man;
// player two steers Blinky in versus mode and is ignored otherwise. The
// first accepted intent moves the engine from Ready to Playing.
func (e *Engine) SetDirection(player multiplayer.PlayerID, dir Direction) {
	switch player {
	case multiplayer.Player1:
		e.pac.NextDir = dir
	case multiplayer.Player2:
		if e.mode != ModePvP {
			return
		}
		e.ghosts[Blinky].NextDir = dir
	default:
		return
	}
	if e.phase == PhaseReady {
		e.phase = PhasePlaying
	}
}

// Advance moves the simulation forward by dtMs milliseconds. Non-finite or
// non-positive deltas are treated as zero; deltas beyond maxAdvanceMs are
// clamped to it. Large deltas are integrated in bounded sub-steps so no
// entity ever skips a cell.
func (e *Engine) Advance(dtMs float64) {
	if math.IsNaN(dtMs) || math.IsInf(dtMs, 0) || dtMs <= 0 {
		return
	}
	if dtMs > maxAdvanceMs {
		dtMs = maxAdvanceMs
	}
	secs := dtMs / 1000
	for secs > 0 {
		h := secs
		if h > maxStepSecs {
			h = maxStepSecs
		}
		e.step(h)
		secs -= h
	}
}

func (e *Engine) step(dt float64) {
	switch e.phase {
	case PhasePlayerDied:
		e.phaseTimer -= dt
		if e.phaseTimer <= 0 {
			e.phase = PhasePlaying
		}
		return
	case PhaseLevelComplete:
		e.phaseTimer -= dt
		if e.phaseTimer <= 0 {
			e.startNextLevel()
		}
		return
	case PhasePlaying:
		// fall through to the simulation below
	default:
		return // Ready and GameOver do not tick
	}

	e.advanceModes(dt)
	e.moveActor(&e.pac.Pos, &e.pac.Dir, e.pac.NextDir, e.cfg.Speeds.Pacman*dt, e.maze.Walkable)
	for i := range e.ghosts {
		e.moveGhost(&e.ghosts[i], dt)
	}
	e.resolveCollisions()
}

// advanceModes ticks the mode clock and propagates flips to the ghosts.
// A scheduled scatter/chase flip forces every affected ghost to reverse;
// a frightened expiry returns frightened ghosts to the schedule without
// reversal.
func (e *Engine) advanceModes(dt float64) {
	flipped, frightEnded := e.clock.Advance(dt)
	if frightEnded {
		for i := range e.ghosts {
			g := &e.ghosts[i]
			if g.Mode == ModeFrightened {
				g.Mode = e.clock.Scheduled()
			}
		}
		e.chain = 0
	}
	if flipped {
		for i := range e.ghosts {
			g := &e.ghosts[i]
			if g.Mode == ModeScatter || g.Mode == ModeChase {
				g.Mode = e.clock.Scheduled()
				g.Dir = g.Dir.Opposite()
			}
		}
	}
}

// moveActor advances a continuously steered entity (Pac-Man, or Blinky
// under a second player). Reversals apply immediately; 90 degree turns
// are buffered and snap at the next cell center where the turn is open;
// a blocked cell ahead clamps the entity at the center it would cross.
func (e *Engine) moveActor(pos *Position, dir *Direction, nextDir Direction, dist float64, walk func(Tile) bool) {
	if nextDir == dir.Opposite() {
		*dir = nextDir
	}
	cur := pos.Tile()
	cx, cy := float64(cur.Col), float64(cur.Row)
	if nextDir != *dir &&
		math.Abs(pos.X-cx) < turnTolerance && math.Abs(pos.Y-cy) < turnTolerance &&
		walk(stepTile(cur, nextDir)) {
		*pos = Position{X: cx, Y: cy}
		*dir = nextDir
	}

	dx, dy := dir.Vector()
	next := Position{X: pos.X + dx*dist, Y: pos.Y + dy*dist}
	if !walk(stepTile(cur, *dir)) {
		switch *dir {
		case DirUp:
			if next.Y < cy {
				next.Y = cy
			}
		case DirDown:
			if next.Y > cy {
				next.Y = cy
			}
		case DirLeft:
			if next.X < cx {
				next.X = cx
			}
		case DirRight:
			if next.X > cx {
				next.X = cx
			}
		}
	}
	e.wrapPosition(&next)
	*pos = next
}

func (e *Engine) moveGhost(g *Ghost, dt float64) {
	if g.Mode == ModeEaten {
		home := Position{X: float64(houseEntrance.Col), Y: float64(houseEntrance.Row)}
		if g.Pos.DistSq(home) < arrivalToleranceSq {
			g.Pos = home
			g.Mode = e.clock.Scheduled()
			g.NextDir = g.Dir
		}
	}

	dist := e.ghostSpeed(g) * dt
	if e.playerDriven(g) {
		e.moveActor(&g.Pos, &g.Dir, g.NextDir, dist, ghostStep(e.maze, g))
		return
	}

	walk := ghostStep(e.maze, g)
	cur := g.Pos.Tile()
	cx, cy := float64(cur.Col), float64(cur.Row)
	atCenter := math.Abs(g.Pos.X-cx) < 1e-9 && math.Abs(g.Pos.Y-cy) < 1e-9

	// Pick a direction whenever this step crosses the cell center, or
	// when sitting exactly on a center facing a blocked cell.
	if crossesCenter(g.Pos, g.Dir, dist, cx, cy) || (atCenter && !walk(stepTile(cur, g.Dir))) {
		target := targetFor(g, &e.pac, &e.ghosts[Blinky], e.maze)
		if d := chooseDirection(e.maze, g, target, e.rng); d != g.Dir {
			g.Pos = Position{X: cx, Y: cy}
			g.Dir = d
		}
	}

	dx, dy := g.Dir.Vector()
	next := Position{X: g.Pos.X + dx*dist, Y: g.Pos.Y + dy*dist}
	if !walk(stepTile(cur, g.Dir)) {
		switch g.Dir {
		case DirUp:
			if next.Y < cy {
				next.Y = cy
			}
		case DirDown:
			if next.Y > cy {
				next.Y = cy
			}
		case DirLeft:
			if next.X < cx {
				next.X = cx
			}
		case DirRight:
			if next.X > cx {
				next.X = cx
			}
		}
	}
	e.wrapPosition(&next)
	g.Pos = next
}

// playerDriven reports whether the ghost currently follows player-two
// input. Frightened and eaten states suspend control.
func (e *Engine) playerDriven(g *Ghost) bool {
	return e.mode == ModePvP && g.ID == Blinky &&
		g.Mode != ModeFrightened && g.Mode != ModeEaten
}

func (e *Engine) ghostSpeed(g *Ghost) float64 {
	base := e.cfg.Speeds.Ghost
	switch g.Mode {
	case ModeFrightened:
		return base * e.cfg.Speeds.FrightenedScale
	case ModeEaten:
		return base * e.cfg.Speeds.EatenScale
	}
	return base
}

// crossesCenter reports whether moving dist along dir passes the cell
// center at (cx, cy).
func crossesCenter(pos Position, dir Direction, dist float64, cx, cy float64) bool {
	switch dir {
	case DirUp:
		return pos.Y > cy && pos.Y-dist <= cy
	case DirDown:
		return pos.Y < cy && pos.Y+dist >= cy
	case DirLeft:
		return pos.X > cx && pos.X-dist <= cx
	default:
		return pos.X < cx && pos.X+dist >= cx
	}
}

// wrapPosition teleports a position through the tunnel once it slides past
// the horizontal edge, preserving direction and sub-cell offset.
func (e *Engine) wrapPosition(pos *Position) {
	w := float64(e.maze.Width())
	if pos.X < -0.5 {
		pos.X += w
	} else if pos.X >= w-0.5 {
		pos.X -= w
	}
}

func (e *Engine) resolveCollisions() {
	e.eatAtPacman()
	e.ghostContacts()
	if e.phase == PhasePlaying && e.dots == 0 {
		e.phase = PhaseLevelComplete
		e.phaseTimer = e.cfg.Timing.LevelClearDelay
	}
}

// eatAtPacman consumes whatever sits under Pac-Man. A power pellet starts
// the frightened run and reverses every ghost that is not already eaten;
// at levels where the frightened duration has decayed to zero it only
// scores.
func (e *Engine) eatAtPacman() {
	kind, ok := e.maze.Consume(e.pac.Pos.Tile())
	if !ok {
		return
	}
	e.dots--
	switch kind {
	case CellDot:
		e.pac.Score += e.cfg.Gameplay.DotPoints
	case CellPowerPellet:
		e.pac.Score += e.cfg.Gameplay.PelletPoints
		dur := FrightenedDuration(e.level, e.cfg.Timing.FrightenedBase, e.cfg.Timing.FrightenedDecay)
		if dur <= 0 {
			return
		}
		e.clock.Frighten(dur)
		e.chain = 0
		for i := range e.ghosts {
			g := &e.ghosts[i]
			if g.Mode == ModeEaten {
				continue
			}
			g.Mode = ModeFrightened
			g.Dir = g.Dir.Opposite()
		}
	}
}

// ghostContacts resolves Pac-Man versus ghost proximity. Eating a
// frightened ghost doubles the bonus for each further ghost in the same
// frightened run. Contact with a hostile ghost costs a life and ends the
// tick's collision handling.
func (e *Engine) ghostContacts() {
	for i := range e.ghosts {
		g := &e.ghosts[i]
		if g.Pos.DistSq(e.pac.Pos) >= collisionRadiusSq {
			continue
		}
		switch g.Mode {
		case ModeFrightened:
			e.pac.Score += e.cfg.Gameplay.GhostPoints << e.chain
			e.chain++
			g.Mode = ModeEaten
		case ModeEaten:
			// already a pair of eyes heading home
		default:
			e.loseLife()
			return
		}
	}
}

func (e *Engine) loseLife() {
	e.pac.Lives--
	e.clock.ClearFrightened()
	e.chain = 0
	e.resetPositions()
	if e.pac.Lives <= 0 {
		e.phase = PhaseGameOver
		return
	}
	e.phase = PhasePlayerDied
	e.phaseTimer = e.cfg.Timing.RespawnDelay
}

// resetPositions returns every entity to its spawn. Score, lives, level and
// the maze contents are untouched.
func (e *Engine) resetPositions() {
	lives, score := e.pac.Lives, e.pac.Score
	e.pac = newPacMan(lives)
	e.pac.Score = score
	e.ghosts = newGhosts(e.clock.Scheduled())
}

func (e *Engine) startNextLevel() {
	e.level++
	e.maze.RestoreDots()
	e.dots = e.maze.DotsRemaining()
	e.clock.Reset(e.level)
	e.resetPositions()
	e.phase = PhasePlaying
}
