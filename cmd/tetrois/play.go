package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vporoshin/tetrois/internal/core"
	"github.com/vporoshin/tetrois/internal/games/tetrois"
	"github.com/vporoshin/tetrois/internal/platform/tui"
	"github.com/vporoshin/tetrois/internal/registry"
	"github.com/vporoshin/tetrois/internal/storage"
)

var (
	flagConfig     string
	flagWidth      int
	flagHeight     int
	flagRenderOnce bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  A/D or Left/Right  - Move piece
  W or Up            - Rotate piece
  S or Down          - Soft drop
  Space              - Hard drop
  R (or Space)       - Restart after game over
  Q/Ctrl+C           - Quit

Examples:
  tetrois play
  tetrois play --seed 42
  tetrois play --config ./my-tetrois.yaml
  tetrois play --render-once`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Override detected terminal width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Override detected terminal height")
	playCmd.Flags().BoolVar(&flagRenderOnce, "render-once", false, "Print a single frame and exit")

	// The bare 'tetrois' invocation runs play, so its flags parse there too
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) {
	tetrois.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults when size detection fails
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagRenderOnce {
		fmt.Println(tui.RenderOnce(game, cfg))
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
