package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/spacerun/internal/audio"
	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/effects"
	"github.com/vovakirdan/spacerun/internal/storage"
)

// loadGameConfig reads the gameplay config and applies the difficulty preset.
func loadGameConfig() (config.SpaceRunConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the play area to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns a file logger when --log is set. The alternate screen
// owns the terminal, so without it everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	if flagLog == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", flagLog, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacerun",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openAudio starts the speaker unless sound is off. Machines without an
// audio device play silently.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (effects.Player, func()) {
	if flagMute || !cfg.Enabled {
		return nil, func() {}
	}
	sm := audio.NewSoundManager(cfg.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return nil, func() {}
	}
	return sm, sm.Cleanup
}

// openStore opens the scores database; the game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName picks the name recorded with each run.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "pilot"
}
