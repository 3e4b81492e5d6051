package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run immediately",
	Long: `Start a Space Run game without the title menu.

Controls:
  Mouse drag     - Steer toward the pointer and fire
  Arrows/WASD    - Nudge the steering target
  Space          - Hold position and fire
  X              - Release (stop steering and firing)
  P              - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Difficulty options (starting hull):
  easy   - 100
  normal - 50
  hard   - 25
  fixed  - value from the config file

Examples:
  spacerun play
  spacerun play --difficulty easy
  spacerun play --config ./my-spacerun.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagName, "name", "", "Pilot name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	player, closeAudio := openAudio(gameCfg.Audio, logger)
	defer closeAudio()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(tui.GameOptions{
		Game:    gameCfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Player:  playerName(),
		Audio:   player,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
