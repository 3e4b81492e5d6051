package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the gameplay config",
	Long: `Print the effective gameplay config as YAML, after the --config file
and --difficulty preset are applied. Redirect it to a file to start a custom
config:

  spacerun config > ~/.spacerun/configs/spacerun.yaml

With --check, only validate and report.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the config and exit")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagConfigCheck {
		fmt.Println("config OK")
		return nil
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
