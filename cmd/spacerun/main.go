// spacerun is a terminal arcade shooter: steer a ship with the mouse, shoot
// down asteroids and enemy fighters, and survive as long as you can.
//
// Usage:
//
//	spacerun                 - Title menu (play, high scores)
//	spacerun play            - Start a run immediately
//	spacerun serve           - Start SSH server for remote play
//	spacerun scores          - Show high scores
//	spacerun config          - Print or check the gameplay config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.spacerun/scores.db)
//	--log <file>    - Write a debug log to file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLog    string

	// Gameplay flags shared by the menu and play
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagName       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacerun",
	Short: "Space Run - a terminal arcade shooter",
	Long: `Space Run puts you in a ship at the bottom of a falling stream of
asteroids and enemy fighters. Hold the mouse button to steer: the ship
chases the pointer and fires while you hold it. Pick up [W] for rapid fire
and [+] to repair the hull.

Available commands:
  play     - Start a run immediately
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print or check the gameplay config

Run without a command to open the title menu.

Examples:
  spacerun
  spacerun play --difficulty hard
  spacerun serve --ssh :2222
  spacerun scores`,
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacerun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagName, "name", "", "Pilot name for the scoreboard (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
