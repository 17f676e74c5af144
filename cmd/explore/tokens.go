package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blackmichael/explore-feed/internal/theme"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the design tokens for the configured device as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := cfg.Screen()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(theme.New(screen))
		if err != nil {
			return fmt.Errorf("marshal tokens: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
