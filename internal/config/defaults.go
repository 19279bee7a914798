package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default engine tuning.
// Speeds follow the classic feel: Pac-Man slightly faster than ghosts,
// frightened ghosts at half speed, eaten ghosts rushing home at double.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Gameplay: PacmanGameplay{
			Lives:        3,
			DotPoints:    10,
			PelletPoints: 50,
			GhostPoints:  200,
		},
		Speeds: PacmanSpeeds{
			Pacman:          11.0,
			Ghost:           9.0,
			FrightenedScale: 0.5,
			EatenScale:      2.0,
		},
		Timing: PacmanTiming{
			FrightenedBase:  6.0,
			FrightenedDecay: 1.0,
			RespawnDelay:    2.0,
			LevelClearDelay: 2.0,
		},
	}
}
