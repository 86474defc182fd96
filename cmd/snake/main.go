// snake is a terminal snake game.
//
// Usage:
//
//	snake play               - Play a game
//	snake scores             - Show or reset the best score
//	snake serve              - Start SSH server for remote play
//	snake config             - Print or create the config file
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--db <path>          - Set database path (default: ~/.arcade/snake.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a 20x20 board. Eat food to grow, avoid the walls and
your own tail. The game speeds up every 5 points.

Available commands:
  play     - Play a game
  scores   - Show or reset the best score
  serve    - Start SSH server for remote play
  config   - Print or create the config file

Examples:
  snake play
  snake play --difficulty hard
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/snake.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
