package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skeet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it as ~/.arcade/configs/skeet.yaml or ./configs/skeet.yaml and edit
it; keys left out keep their defaults.

Examples:
  skeet config > ~/.arcade/configs/skeet.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := config.GetDefaultYAML("skeet")
		if data == nil {
			return fmt.Errorf("no default config embedded")
		}
		_, err := os.Stdout.Write(data)
		return err
	},
}
