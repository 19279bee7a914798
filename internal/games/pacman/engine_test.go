package pacman

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/pacmaze/pacmaze/internal/config"
	"github.com/pacmaze/pacmaze/internal/multiplayer"
)

func newTestEngine(t *testing.T, mode string, seed int64) *Engine {
	t.Helper()
	e, err := NewEngine(mode, config.DefaultPacmanConfig(), seed)
	if err != nil {
		t.Fatalf("NewEngine(%q): %v", mode, err)
	}
	return e
}

// startPlaying moves a fresh engine out of Ready with a left intent, which
// matches Pac-Man's spawn facing.
func startPlaying(t *testing.T, e *Engine) {
	t.Helper()
	e.SetDirection(multiplayer.Player1, DirLeft)
	if e.Phase() != PhasePlaying {
		t.Fatalf("phase = %v after first intent, want playing", e.Phase())
	}
}

func TestNewEngineModes(t *testing.T) {
	if e := newTestEngine(t, "classic", 1); e.GameMode() != ModeClassic {
		t.Errorf("mode = %v, want classic", e.GameMode())
	}
	if e := newTestEngine(t, "pvp", 1); e.GameMode() != ModePvP {
		t.Errorf("mode = %v, want pvp", e.GameMode())
	}

	_, err := NewEngine("turbo", config.DefaultPacmanConfig(), 1)
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("NewEngine(turbo) err = %v, want ErrInvalidMode", err)
	}
}

func TestInitialState(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	snap := e.Snapshot()

	if snap.Phase != "ready" {
		t.Errorf("phase = %q, want ready", snap.Phase)
	}
	if snap.Level != 1 || snap.DotsRemaining != 288 {
		t.Errorf("level=%d dots=%d, want 1 and 288", snap.Level, snap.DotsRemaining)
	}
	if snap.Pacman.Lives != 3 || snap.Pacman.Score != 0 {
		t.Errorf("lives=%d score=%d, want 3 and 0", snap.Pacman.Lives, snap.Pacman.Score)
	}
	if snap.Pacman.X != 14 || snap.Pacman.Y != 23 || snap.Pacman.Direction != "left" {
		t.Errorf("pacman spawn = (%v, %v) %s", snap.Pacman.X, snap.Pacman.Y, snap.Pacman.Direction)
	}

	wantGhosts := []string{"blinky", "pinky", "inky", "clyde"}
	for i, g := range snap.Ghosts {
		if g.ID != wantGhosts[i] {
			t.Errorf("ghost[%d] = %s, want %s", i, g.ID, wantGhosts[i])
		}
		if g.Mode != "scatter" {
			t.Errorf("ghost %s starts in %s, want scatter", g.ID, g.Mode)
		}
	}
}

func TestReadyDoesNotTick(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	before := e.Snapshot()
	e.Advance(5000)
	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("engine ticked while in ready phase")
	}
}

func TestAdvanceRejectsBadDeltas(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)
	e.Advance(16)
	before := e.Snapshot()

	for _, dt := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		e.Advance(dt)
		if !reflect.DeepEqual(before, e.Snapshot()) {
			t.Fatalf("Advance(%v) mutated state", dt)
		}
	}
}

func TestAdvanceCapsOversizedDelta(t *testing.T) {
	capped := newTestEngine(t, "classic", 5)
	startPlaying(t, capped)
	capped.Advance(1e12) // finite but absurd; must clamp, not spin

	plain := newTestEngine(t, "classic", 5)
	startPlaying(t, plain)
	plain.Advance(maxAdvanceMs)

	if !reflect.DeepEqual(capped.Snapshot(), plain.Snapshot()) {
		t.Error("an oversized delta must behave exactly like the cap")
	}
}

// TestTunnelRoundTrip drives Pac-Man off the left edge of the tunnel row
// and back, checking the wrap preserves the row, the heading, and the
// sub-cell offset in both directions.
func TestTunnelRoundTrip(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)
	e.pac.Pos = Position{X: 2, Y: 14}

	e.Advance(250) // 2.75 tiles left: off the edge, re-entering on the right
	snap := e.Snapshot()
	if snap.Pacman.Y != 14 {
		t.Fatalf("pacman y = %v, want still on the tunnel row", snap.Pacman.Y)
	}
	if snap.Pacman.X < 20 {
		t.Fatalf("pacman x = %v, want wrapped to the right side", snap.Pacman.X)
	}

	e.SetDirection(multiplayer.Player1, DirRight)
	e.Advance(250) // retrace through the tunnel
	snap = e.Snapshot()
	if snap.Pacman.Y != 14 || snap.Pacman.X > 5 {
		t.Errorf("pacman at (%v, %v), want back on the left of row 14", snap.Pacman.X, snap.Pacman.Y)
	}
	if snap.Pacman.Direction != "right" {
		t.Errorf("direction = %s, want right", snap.Pacman.Direction)
	}
	if !e.maze.Walkable(e.pac.Pos.Tile()) {
		t.Errorf("pacman ended on a non-walkable tile %v", e.pac.Pos.Tile())
	}
}

func TestPacmanEatsAlongCorridor(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)

	// One second at 11 tiles/s runs Pac-Man from (14,23) into the wall
	// at column 5, eating the 9 dots on the way (his spawn cell
	// included).
	e.Advance(1000)
	snap := e.Snapshot()

	if snap.Pacman.X != 6 || snap.Pacman.Y != 23 {
		t.Errorf("pacman at (%v, %v), want clamped at (6, 23)", snap.Pacman.X, snap.Pacman.Y)
	}
	if snap.Pacman.Score != 90 {
		t.Errorf("score = %d, want 90", snap.Pacman.Score)
	}
	if snap.DotsRemaining != 288-9 {
		t.Errorf("dots = %d, want %d", snap.DotsRemaining, 288-9)
	}
}

func TestDotScoresOnlyOnce(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)

	e.Advance(16) // eats the spawn cell dot
	if e.Score() != 10 {
		t.Fatalf("score = %d, want 10", e.Score())
	}
	if e.maze.CellAt(pacStart.Tile()) != CellEmpty {
		t.Error("spawn cell should stay empty after being eaten")
	}

	// Re-entering the emptied cell pays nothing.
	e.pac.Pos = pacStart
	e.Advance(1)
	if e.Score() != 10 {
		t.Errorf("score = %d after revisiting, want still 10", e.Score())
	}
}

func TestPowerPelletFrightensGhosts(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)
	e.pac.Pos = Position{X: 1, Y: 23} // on a power pellet

	dirsBefore := make([]Direction, 4)
	for i := range e.ghosts {
		dirsBefore[i] = e.ghosts[i].Dir
	}

	e.Advance(16)

	if e.Score() < 50 {
		t.Errorf("score = %d, want at least the pellet's 50", e.Score())
	}
	if !e.clock.FrightenedActive() {
		t.Error("frightened countdown should be running")
	}
	for i := range e.ghosts {
		if e.ghosts[i].Mode != ModeFrightened {
			t.Errorf("ghost %v mode = %v, want frightened", e.ghosts[i].ID, e.ghosts[i].Mode)
		}
	}
}

func TestPelletAtZeroDurationOnlyScores(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Timing.FrightenedBase = 0
	e, err := NewEngine("classic", cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	startPlaying(t, e)
	e.pac.Pos = Position{X: 1, Y: 23}

	e.Advance(16)

	if e.Score() < 50 {
		t.Errorf("score = %d, pellet should still pay", e.Score())
	}
	if e.clock.FrightenedActive() {
		t.Error("frightened must not trigger at zero duration")
	}
	for i := range e.ghosts {
		if e.ghosts[i].Mode == ModeFrightened {
			t.Errorf("ghost %v should not be frightened", e.ghosts[i].ID)
		}
	}
}

func TestEatingFrightenedGhostsDoublesBonus(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)

	// Trigger a frightened run via a pellet.
	e.pac.Pos = Position{X: 1, Y: 23}
	e.Advance(16)
	base := e.Score()

	// First catch pays 200.
	e.ghosts[0].Pos = e.pac.Pos
	e.Advance(16)
	if got := e.Score() - base; got < 200 {
		t.Fatalf("first ghost bonus = %d, want at least 200", got)
	}
	if e.ghosts[0].Mode != ModeEaten {
		t.Fatalf("caught ghost mode = %v, want eaten", e.ghosts[0].Mode)
	}
	afterFirst := e.Score()

	// Second catch in the same run pays 400.
	e.ghosts[1].Pos = e.pac.Pos
	e.Advance(16)
	if got := e.Score() - afterFirst; got < 400 {
		t.Errorf("second ghost bonus = %d, want at least 400", got)
	}
}

func TestHostileGhostContactCostsLife(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)

	e.ghosts[0].Pos = e.pac.Pos
	e.Advance(16)

	if e.Lives() != 2 {
		t.Fatalf("lives = %d, want 2", e.Lives())
	}
	if e.Phase() != PhasePlayerDied {
		t.Fatalf("phase = %v, want player_died", e.Phase())
	}
	if e.pac.Pos != pacStart {
		t.Errorf("pacman at %v, want respawned at %v", e.pac.Pos, pacStart)
	}
	for i := range e.ghosts {
		if e.ghosts[i].Pos != e.ghosts[i].ID.StartPosition() {
			t.Errorf("ghost %v not back at spawn", e.ghosts[i].ID)
		}
	}

	// The respawn pause holds, then play resumes.
	e.Advance(1000)
	if e.Phase() != PhasePlayerDied {
		t.Error("respawn pause ended too early")
	}
	e.Advance(1500)
	if e.Phase() != PhasePlaying {
		t.Errorf("phase = %v after respawn delay, want playing", e.Phase())
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Gameplay.Lives = 1
	e, err := NewEngine("classic", cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	startPlaying(t, e)

	e.ghosts[0].Pos = e.pac.Pos
	e.Advance(16)

	if e.Phase() != PhaseGameOver || e.Lives() != 0 {
		t.Fatalf("phase=%v lives=%d, want game_over with 0", e.Phase(), e.Lives())
	}

	// A finished game is inert.
	before := e.Snapshot()
	e.Advance(5000)
	e.SetDirection(multiplayer.Player1, DirUp)
	e.Advance(16)
	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("game over state must not change")
	}
}

func TestClearingMazeAdvancesLevel(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)

	// Eat everything behind the engine's back.
	for row := 0; row < MazeHeight; row++ {
		for col := 0; col < MazeWidth; col++ {
			e.maze.Consume(Tile{Col: col, Row: row})
		}
	}
	e.dots = 0
	score := e.Score()

	e.Advance(16)
	if e.Phase() != PhaseLevelComplete {
		t.Fatalf("phase = %v, want level_complete", e.Phase())
	}

	// Exactly the level clear delay: the new level starts on the final
	// sub-step, before any play resumes.
	e.Advance(2000)
	snap := e.Snapshot()
	if snap.Level != 2 {
		t.Errorf("level = %d, want 2", snap.Level)
	}
	if snap.DotsRemaining != 288 {
		t.Errorf("dots = %d, want fully restored 288", snap.DotsRemaining)
	}
	if snap.Pacman.Score < score {
		t.Error("score must carry across levels")
	}
	if snap.Pacman.X != pacStart.X || snap.Pacman.Y != pacStart.Y {
		t.Errorf("pacman at (%v, %v), want at spawn", snap.Pacman.X, snap.Pacman.Y)
	}

	// Play resumes immediately afterwards, eating into the fresh maze.
	e.Advance(100)
	snap = e.Snapshot()
	if snap.Phase != "playing" {
		t.Errorf("phase = %q after the delay, want playing", snap.Phase)
	}
	if snap.DotsRemaining >= 288 {
		t.Errorf("dots = %d, want some eaten after play resumed", snap.DotsRemaining)
	}
	if snap.Pacman.Y != 23 {
		t.Errorf("pacman y = %v, want still on the spawn row", snap.Pacman.Y)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	startPlaying(t, e)

	snap := e.Snapshot()
	dots := snap.DotsRemaining

	// Mutating the copy must not leak into the engine.
	snap.Cells[1][1] = CellWall
	snap.Ghosts[0].Mode = "bogus"
	if e.maze.CellAt(Tile{Col: 1, Row: 1}) != CellDot {
		t.Error("snapshot mutation reached the maze")
	}
	if e.ghosts[0].Mode != ModeScatter {
		t.Error("snapshot mutation reached a ghost")
	}

	// And later ticks must not rewrite an old snapshot.
	e.Advance(1000)
	if snap.DotsRemaining != dots {
		t.Error("old snapshot changed after Advance")
	}
}

func TestScheduledFlipReversesGhosts(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	e.phase = PhasePlaying

	e.advanceModes(7.5) // past the first scatter window

	for i := range e.ghosts {
		g := &e.ghosts[i]
		if g.Mode != ModeChase {
			t.Errorf("ghost %v mode = %v, want chase", g.ID, g.Mode)
		}
		if g.Dir != DirDown { // spawned facing up
			t.Errorf("ghost %v dir = %v, want reversed to down", g.ID, g.Dir)
		}
	}
}

func TestPvPBlinkyControl(t *testing.T) {
	e := newTestEngine(t, "pvp", 1)
	e.SetDirection(multiplayer.Player2, DirLeft)
	if e.Phase() != PhasePlaying {
		t.Fatal("player two intent should start the match")
	}

	e.Advance(500)
	if e.ghosts[0].Pos.X >= 14 {
		t.Errorf("blinky x = %v, want moved left of 14", e.ghosts[0].Pos.X)
	}

	// Frightened suspends player control.
	e.ghosts[0].Mode = ModeFrightened
	if e.playerDriven(&e.ghosts[0]) {
		t.Error("frightened blinky must fall back to AI")
	}
}

func TestClassicIgnoresPlayerTwo(t *testing.T) {
	e := newTestEngine(t, "classic", 1)
	e.SetDirection(multiplayer.Player2, DirLeft)
	if e.Phase() != PhaseReady {
		t.Error("player two must not start a classic game")
	}
}

func TestDeterminism(t *testing.T) {
	run := func(chunkMs float64) Snapshot {
		e := newTestEngine(t, "classic", 99)
		startPlaying(t, e)
		e.pac.Pos = Position{X: 1, Y: 23} // pellet first, to exercise the rng

		total := 8000.0
		for elapsed := 0.0; elapsed < total; elapsed += chunkMs {
			e.Advance(chunkMs)
		}
		return e.Snapshot()
	}

	a := run(16)
	b := run(16)
	if !reflect.DeepEqual(a, b) {
		t.Error("equal seeds and inputs diverged")
	}
}

// TestEntitiesStayOffWalls runs a long mixed simulation and checks the
// cardinal invariant: nobody ever occupies a wall cell.
func TestEntitiesStayOffWalls(t *testing.T) {
	e := newTestEngine(t, "classic", 7)
	startPlaying(t, e)

	script := []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirUp}
	prevScore := 0
	for i := 0; i < 3000; i++ {
		if i%500 == 0 {
			e.SetDirection(multiplayer.Player1, script[i/500])
		}
		e.Advance(16)

		if e.Score() < prevScore {
			t.Fatalf("tick %d: score went down (%d -> %d)", i, prevScore, e.Score())
		}
		prevScore = e.Score()

		assertOffWalls(t, e, i)
		if e.Phase() == PhaseGameOver {
			break
		}
	}
}

func assertOffWalls(t *testing.T, e *Engine, tick int) {
	t.Helper()
	check := func(name string, pos Position) {
		tile := pos.Tile()
		if tile.Col < 0 || tile.Col >= MazeWidth {
			// Mid-tunnel overhang; must be on a tunnel row.
			if !e.maze.GhostWalkable(tile) {
				t.Fatalf("tick %d: %s off grid at %v outside a tunnel", tick, name, tile)
			}
			return
		}
		if e.maze.CellAt(tile) == CellWall {
			t.Fatalf("tick %d: %s inside a wall at %v", tick, name, tile)
		}
	}
	check("pacman", e.pac.Pos)
	for i := range e.ghosts {
		check(e.ghosts[i].ID.String(), e.ghosts[i].Pos)
	}
}
