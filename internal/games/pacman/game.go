package pacman

import (
	"fmt"
	"time"

	"github.com/pacmaze/pacmaze/internal/config"
	"github.com/pacmaze/pacmaze/internal/core"
	"github.com/pacmaze/pacmaze/internal/multiplayer"
	"github.com/pacmaze/pacmaze/internal/registry"
)

// Visual characters for rendering
const (
	WallChar    = '█'
	DotChar     = '·'
	PelletChar  = '●'
	PacmanChar  = 'C'
	GhostChar   = 'M'
	EatenChar   = '"'
	SeparatorCh = '─'
)

// ghostColors maps ghost identity to its body color.
var ghostColors = [4]core.Color{
	Blinky: core.ColorRed,
	Pinky:  core.ColorPink,
	Inky:   core.ColorCyan,
	Clyde:  core.ColorOrange,
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game adapts the engine to the platform game interface.
type Game struct {
	variant Mode
	engine  *Engine

	paused bool

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.PacmanConfig

	// Layout (computed from screen size)
	offsetX        int // left edge of the maze on screen
	offsetY        int // top edge of the maze, below the HUD
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic single-player game instance.
func New() *Game {
	return &Game{variant: ModeClassic}
}

// NewPvP creates a versus game instance where player two drives Blinky.
func NewPvP() *Game {
	return &Game{variant: ModePvP}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == ModePvP {
		return "pacman_pvp"
	}
	return "pacman"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == ModePvP {
		return "Pac-Man (PvP)"
	}
	return "Pac-Man"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		cfg = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The variant strings are compile-time constants, so this cannot
	// fail on mode parsing.
	engine, err := NewEngine(string(g.variant), cfg, seed)
	if err != nil {
		panic(err)
	}
	g.engine = engine
	g.paused = false

	// HUD takes the top 2 rows; the maze is centered horizontally.
	g.minScreenW = MazeWidth
	g.minScreenH = MazeHeight + 2
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	g.offsetX = (runtime.ScreenW - MazeWidth) / 2
	if g.offsetX < 0 {
		g.offsetX = 0
	}
	g.offsetY = 2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.engine.Phase() == PhaseGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.engine.Phase() == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.engine.Advance(1000 / float64(tickRate))

	return core.StepResult{State: g.State()}
}

// applyInput routes directional actions to the engine. Arrows steer
// Pac-Man; WASD steers Blinky in versus mode.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.engine.SetDirection(multiplayer.Player1, DirUp)
	case in.Has(core.ActionDown):
		g.engine.SetDirection(multiplayer.Player1, DirDown)
	case in.Has(core.ActionLeft):
		g.engine.SetDirection(multiplayer.Player1, DirLeft)
	case in.Has(core.ActionRight):
		g.engine.SetDirection(multiplayer.Player1, DirRight)
	}

	if g.variant != ModePvP {
		return
	}
	switch {
	case in.Has(core.ActionP2Up):
		g.engine.SetDirection(multiplayer.Player2, DirUp)
	case in.Has(core.ActionP2Down):
		g.engine.SetDirection(multiplayer.Player2, DirDown)
	case in.Has(core.ActionP2Left):
		g.engine.SetDirection(multiplayer.Player2, DirLeft)
	case in.Has(core.ActionP2Right):
		g.engine.SetDirection(multiplayer.Player2, DirRight)
	}
}

// State returns the current platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: g.engine.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying simulation, mainly for tests and the
// versus session coordinator.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Render draws the full frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.engine.Snapshot()
	g.renderHUD(dst, snap)
	g.renderMaze(dst, snap)
	g.renderGhosts(dst, snap)
	g.renderPacman(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Pacman.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", snap.Pacman.Lives))
	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, SeparatorCh)
	}
}

func (g *Game) renderMaze(dst *core.Screen, snap Snapshot) {
	for row, cells := range snap.Cells {
		for col, cell := range cells {
			x, y := g.offsetX+col, g.offsetY+row
			switch cell {
			case CellWall:
				dst.SetColored(x, y, WallChar, core.ColorBlue)
			case CellDot:
				dst.SetColored(x, y, DotChar, core.ColorWhite)
			case CellPowerPellet:
				dst.SetColored(x, y, PelletChar, core.ColorWhite)
			}
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen, snap Snapshot) {
	for i, ghost := range snap.Ghosts {
		col, row := roundToInt(ghost.X), roundToInt(ghost.Y)
		if col < 0 || col >= MazeWidth || row < 0 || row >= MazeHeight {
			continue // mid-tunnel, off screen
		}
		ch, color := rune(GhostChar), ghostColors[i]
		switch ghost.Mode {
		case ModeFrightened.String():
			color = core.ColorBlue
		case ModeEaten.String():
			ch = EatenChar
			color = core.ColorGray
		}
		dst.SetColored(g.offsetX+col, g.offsetY+row, ch, color)
	}
}

func (g *Game) renderPacman(dst *core.Screen, snap Snapshot) {
	col, row := roundToInt(snap.Pacman.X), roundToInt(snap.Pacman.Y)
	if col < 0 || col >= MazeWidth || row < 0 || row >= MazeHeight {
		return
	}
	dst.SetColored(g.offsetX+col, g.offsetY+row, PacmanChar, core.ColorYellow)
}

func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	centerY := g.offsetY + MazeHeight/2
	switch {
	case g.paused:
		dst.DrawTextCentered(centerY, "PAUSED")
	case snap.Phase == PhaseReady.String():
		if g.variant == ModePvP {
			dst.DrawTextCentered(centerY, "ARROWS: PAC-MAN  WASD: BLINKY")
		} else {
			dst.DrawTextCentered(centerY, "PRESS AN ARROW KEY TO START")
		}
	case snap.Phase == PhasePlayerDied.String():
		dst.DrawTextCentered(centerY, "CAUGHT!")
	case snap.Phase == PhaseLevelComplete.String():
		dst.DrawTextCentered(centerY, "LEVEL CLEAR")
	case snap.Phase == PhaseGameOver.String():
		dst.DrawTextCentered(centerY-1, "GAME OVER")
		dst.DrawTextCentered(centerY+1, fmt.Sprintf("Final score: %d", snap.Pacman.Score))
		dst.DrawTextCentered(centerY+2, "Press R to restart")
	}
}

// Register the games with the registry
func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_pvp", func() registry.Game {
		return NewPvP()
	})
}
