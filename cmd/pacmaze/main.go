// pacmaze is a terminal maze-chase arcade: the classic four-ghost game with
// a solo mode and a local versus mode where a second player drives Blinky.
//
// Usage:
//
//	pacmaze list              - List available game modes
//	pacmaze play <game>       - Play a game mode
//	pacmaze menu              - Start menu to pick modes interactively
//	pacmaze serve             - Start SSH server for remote play
//	pacmaze scores <game>     - Show high scores for a game mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pacmaze/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/pacmaze/pacmaze/internal/games/pacman"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacmaze",
	Short: "Pacmaze - the maze chase in your terminal",
	Long: `Pacmaze is a terminal rendition of the classic maze chase: eat every
dot while four ghosts with distinct personalities hunt you down.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacmaze list
  pacmaze play pacman
  pacmaze play pacman_pvp
  pacmaze menu
  pacmaze serve --ssh :2222
  pacmaze scores pacman`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacmaze/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
