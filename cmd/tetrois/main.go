// tetrois is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetrois                  - Play (same as 'tetrois play')
//	tetrois play             - Play the game
//	tetrois scores           - Print the high score table
//	tetrois board            - Interactive scoreboard
//	tetrois serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetrois/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vporoshin/tetrois/internal/games/tetrois"
	"github.com/vporoshin/tetrois/internal/storage"
)

const gameID = "tetrois"

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
	Use:   "tetrois",
	Short: "Tetrois - falling blocks in your terminal",
	Long: `Tetrois is a terminal falling-block puzzle game.

Stack the falling pieces, complete horizontal lines to clear them, and
chase the high score as gravity speeds up with every level.

Available commands:
  play     - Play the game (default when no command is given)
  scores   - Print the high score table
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  tetrois
  tetrois play --config ./my-tetrois.yaml
  tetrois scores
  tetrois serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}
