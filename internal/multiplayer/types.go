// Package multiplayer provides player and match identifiers shared by the
// engine adapter, the TUI platform, and score storage. Player 1 is always
// Pac-Man; Player 2 controls the red ghost in local pvp matches.
package multiplayer

// PlayerID identifies a controllable participant in a match.
type PlayerID int

const (
	Player1 PlayerID = iota + 1 // Pac-Man
	Player2                     // the pvp-controlled ghost
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// MatchMode defines how a match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player classic game against the ghost AI.
	MatchModeSolo MatchMode = iota

	// MatchModeLocalPvP is a shared-keyboard match: Pac-Man vs a
	// player-driven ghost.
	MatchModeLocalPvP
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeLocalPvP:
		return "Local PvP"
	default:
		return "Unknown"
	}
}

// MatchResult captures the outcome of a finished pvp match for persistence.
type MatchResult struct {
	GameID       string
	Winner       string // "pacman" or "ghosts"
	PacmanScore  int
	LevelReached int
	DurationSecs int
}
