package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the feed in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	src, closeSrc, err := openFixtures(ctx)
	if err != nil {
		return err
	}
	defer closeSrc()

	svc, err := feed.NewService(ctx, cfg.FeedService(), src, logger)
	if err != nil {
		return fmt.Errorf("create feed service: %w", err)
	}

	screen, err := cfg.Screen()
	if err != nil {
		return err
	}

	model := tui.New(svc.NewSession(theme.New(screen)), svc.Posts(), logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run terminal feed: %w", err)
	}
	return nil
}
