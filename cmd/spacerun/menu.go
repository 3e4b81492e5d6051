package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/platform/tui"
)

// runMenu opens the title menu. After a run ends, B returns to it.
func runMenu(_ *cobra.Command, _ []string) error {
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

	return tui.RunSession(tui.SessionOptions{
		Store:   store,
		Game:    gameCfg,
		Runtime: runtimeConfig(),
		Player:  playerName(),
		Audio:   player,
		Logger:  logger,
	})
}
