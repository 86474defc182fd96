package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score",
	Long: `Display the best score stored in the database.

Examples:
  snake scores
  snake scores --reset
  snake scores --db ./snake.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the best score")
}

// highScoreStore is the part of the store the scores command needs.
type highScoreStore interface {
	HighScore(ctx context.Context) (int, error)
	ResetHighScore(ctx context.Context) error
}

func runScores(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		err = resetScore(ctx, os.Stdout, store)
	} else {
		err = printScore(ctx, os.Stdout, store)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScore writes the best score to w.
func printScore(ctx context.Context, w io.Writer, store highScoreStore) error {
	best, err := store.HighScore(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Score - Snake")
	fmt.Fprintln(w)

	if best == 0 {
		fmt.Fprintln(w, "No high score recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}

// resetScore forgets the best score and reports the value it replaced.
func resetScore(ctx context.Context, w io.Writer, store highScoreStore) error {
	best, err := store.HighScore(ctx)
	if err != nil {
		return err
	}
	if err := store.ResetHighScore(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "High score reset (was %d).\n", best)
	return nil
}
