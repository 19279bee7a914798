package pacman

import (
	"math/rand"
	"testing"
)

func TestChaseTargets(t *testing.T) {
	blinky := &Ghost{ID: Blinky, Pos: Position{X: 14, Y: 5}}

	tests := []struct {
		name  string
		ghost Ghost
		pac   PacMan
		want  Tile
	}{
		{
			name:  "blinky pursues directly",
			ghost: Ghost{ID: Blinky, Pos: Position{X: 14, Y: 5}},
			pac:   PacMan{Pos: Position{X: 10, Y: 5}, Dir: DirLeft},
			want:  Tile{Col: 10, Row: 5},
		},
		{
			name:  "pinky leads four tiles ahead",
			ghost: Ghost{ID: Pinky, Pos: Position{X: 14, Y: 5}},
			pac:   PacMan{Pos: Position{X: 10, Y: 5}, Dir: DirLeft},
			want:  Tile{Col: 6, Row: 5},
		},
		{
			name:  "inky reflects blinky through the pivot",
			ghost: Ghost{ID: Inky, Pos: Position{X: 20, Y: 20}},
			pac:   PacMan{Pos: Position{X: 10, Y: 5}, Dir: DirUp},
			// pivot (10,3); blinky (14,5) mirrored -> (6,1)
			want: Tile{Col: 6, Row: 1},
		},
		{
			name:  "clyde chases while far",
			ghost: Ghost{ID: Clyde, Pos: Position{X: 26, Y: 29}},
			pac:   PacMan{Pos: Position{X: 1, Y: 1}, Dir: DirRight},
			want:  Tile{Col: 1, Row: 1},
		},
		{
			name:  "clyde retreats when close",
			ghost: Ghost{ID: Clyde, Pos: Position{X: 3, Y: 2}},
			pac:   PacMan{Pos: Position{X: 1, Y: 1}, Dir: DirRight},
			want:  Clyde.ScatterTarget(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chaseTarget(&tt.ghost, &tt.pac, blinky); got != tt.want {
				t.Errorf("chaseTarget = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetForModes(t *testing.T) {
	maze := NewMaze()
	pac := &PacMan{Pos: pacStart, Dir: DirLeft}
	blinky := &Ghost{ID: Blinky, Pos: Blinky.StartPosition()}

	scatterGhost := &Ghost{ID: Pinky, Pos: Position{X: 6, Y: 5}, Mode: ModeScatter}
	if got := targetFor(scatterGhost, pac, blinky, maze); got != Pinky.ScatterTarget() {
		t.Errorf("scatter target = %v, want home corner", got)
	}

	eaten := &Ghost{ID: Inky, Pos: Position{X: 6, Y: 5}, Mode: ModeEaten}
	if got := targetFor(eaten, pac, blinky, maze); got != houseEntrance {
		t.Errorf("eaten target = %v, want house entrance", got)
	}

	// Any ghost still inside the house heads for the door first.
	penned := &Ghost{ID: Pinky, Pos: Pinky.StartPosition(), Mode: ModeChase}
	if got := targetFor(penned, pac, blinky, maze); got != houseEntrance {
		t.Errorf("in-house target = %v, want house entrance", got)
	}
}

func TestChooseDirectionMinimizesDistance(t *testing.T) {
	maze := NewMaze()
	rng := rand.New(rand.NewSource(1))

	// (6,5) is a four-way intersection; moving right excludes going back
	// left, leaving up, down and right.
	tests := []struct {
		name   string
		target Tile
		want   Direction
	}{
		{"target above", Tile{Col: 6, Row: 0}, DirUp},
		{"target below", Tile{Col: 6, Row: 30}, DirDown},
		{"target to the right", Tile{Col: 20, Row: 5}, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Ghost{ID: Blinky, Pos: Position{X: 6, Y: 5}, Dir: DirRight, Mode: ModeChase}
			if got := chooseDirection(maze, g, tt.target, rng); got != tt.want {
				t.Errorf("chooseDirection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseDirectionNeverReverses(t *testing.T) {
	maze := NewMaze()
	rng := rand.New(rand.NewSource(1))

	// Target sits behind the ghost; reversing would be the shortest path
	// but is forbidden.
	g := &Ghost{ID: Blinky, Pos: Position{X: 6, Y: 5}, Dir: DirRight, Mode: ModeChase}
	if got := chooseDirection(maze, g, Tile{Col: 0, Row: 5}, rng); got == DirLeft {
		t.Error("ghost reversed outside a dead end")
	}
}

func TestChooseDirectionFrightenedDeterminism(t *testing.T) {
	maze := NewMaze()
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		ga := &Ghost{ID: Pinky, Pos: Position{X: 6, Y: 5}, Dir: DirRight, Mode: ModeFrightened}
		gb := &Ghost{ID: Pinky, Pos: Position{X: 6, Y: 5}, Dir: DirRight, Mode: ModeFrightened}
		da := chooseDirection(maze, ga, Tile{}, a)
		db := chooseDirection(maze, gb, Tile{}, b)
		if da != db {
			t.Fatalf("pick %d diverged: %v vs %v", i, da, db)
		}
	}
}
