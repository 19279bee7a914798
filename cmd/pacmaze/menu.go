package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pacmaze/pacmaze/internal/core"
	"github.com/pacmaze/pacmaze/internal/games/pacman"
	"github.com/pacmaze/pacmaze/internal/platform/tui"
	"github.com/pacmaze/pacmaze/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q            - Quit

Examples:
  pacmaze menu
  pacmaze menu --fps 30
  pacmaze menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)

	// The session model owns the menu -> game -> scoreboard flow; the same
	// model backs SSH sessions.
	p := tea.NewProgram(
		tui.NewSessionModel(store, cfg),
		tea.WithAltScreen(),
	)
	if _, runErr := p.Run(); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
