// Package config provides YAML-based tuning for the maze-chase engine and
// difficulty presets for the arcade platform.
package config

// PacmanConfig contains all tuning for the maze-chase engine.
type PacmanConfig struct {
	Gameplay PacmanGameplay `yaml:"gameplay"`
	Speeds   PacmanSpeeds   `yaml:"speeds"`
	Timing   PacmanTiming   `yaml:"timing"`
}

// PacmanGameplay defines lives and scoring values.
type PacmanGameplay struct {
	Lives        int `yaml:"lives"`
	DotPoints    int `yaml:"dot_points"`
	PelletPoints int `yaml:"pellet_points"`
	GhostPoints  int `yaml:"ghost_points"` // base bonus; doubles per ghost in one frightened run
}

// PacmanSpeeds defines movement speeds in tiles per second.
type PacmanSpeeds struct {
	Pacman          float64 `yaml:"pacman"`
	Ghost           float64 `yaml:"ghost"`
	FrightenedScale float64 `yaml:"frightened_scale"` // multiplier on ghost speed when frightened
	EatenScale      float64 `yaml:"eaten_scale"`      // multiplier on ghost speed when returning home
}

// PacmanTiming defines mode-timer parameters in seconds.
type PacmanTiming struct {
	FrightenedBase  float64 `yaml:"frightened_base"`  // frightened duration at level 1
	FrightenedDecay float64 `yaml:"frightened_decay"` // reduction per level; duration floors at 0
	RespawnDelay    float64 `yaml:"respawn_delay"`    // pause after losing a life
	LevelClearDelay float64 `yaml:"level_clear_delay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPacmanPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Speeds.Ghost = cfg.Speeds.Pacman * 0.7
		cfg.Timing.FrightenedBase += 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Speeds.Ghost = cfg.Speeds.Pacman * 0.95
		cfg.Timing.FrightenedBase = 4
	}
}
