package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vporoshin/tetrois/internal/platform/tui"
	"github.com/vporoshin/tetrois/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive scoreboard",
	Long: `Open the scrollable scoreboard in the terminal.

Examples:
  tetrois board
  tetrois board --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
