package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vporoshin/tetrois/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the high score table",
	Long: `Display the top 10 recorded results.

Examples:
  tetrois scores
  tetrois scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Tetrois")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetrois' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
