package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or create the snake config file",
	Long: `Print the built-in snake config, or write it as a starting point.

With --init the defaults are written to ~/.arcade/configs/snake.yaml, or to
the path given with --config. Existing files are never overwritten.

Examples:
  snake config
  snake config --init
  snake config --init --config ./configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config file")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Where to write the config (with --init)")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigInit {
		os.Stdout.Write(config.DefaultSnakeYAML())
		return
	}

	path, err := config.WriteDefaultSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
