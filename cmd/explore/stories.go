package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackmichael/explore-feed/internal/client"
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/stream"
	"github.com/blackmichael/explore-feed/internal/theme"
)

var storiesRemote string

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Page through the stories strip until it is exhausted",
	Long: `stories prints every page the stories loader produces. With --remote it
pages through a running server's story stream over a websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if storiesRemote != "" {
			screen, err := cfg.Screen()
			if err != nil {
				return err
			}
			url := client.NewClient(storiesRemote).StreamURL()
			sub := stream.NewSubscriber(url, screen, func(_ context.Context, p stream.Page) error {
				printPage(out, p.Items, p.Visible, p.Total, p.Exhausted)
				return nil
			}, logger)
			return sub.Start(ctx)
		}

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

		session := svc.NewSession(theme.New(screen))
		p := session.Window()
		printPage(out, p.Items, p.Visible, p.Total, p.Exhausted)
		for {
			p, ok := session.Advance()
			if !ok {
				return nil
			}
			printPage(out, p.Items, p.Visible, p.Total, p.Exhausted)
		}
	},
}

func printPage(w io.Writer, items []domain.StoryRecord, visible, total int, exhausted bool) {
	names := make([]string, len(items))
	for i, s := range items {
		names[i] = s.Name
	}
	state := "more"
	if exhausted {
		state = "exhausted"
	}
	fmt.Fprintf(w, "%2d/%d %-9s %s\n", visible, total, state, strings.Join(names, ", "))
}

func init() {
	storiesCmd.Flags().StringVar(&storiesRemote, "remote", "", "base URL of a running explore server")
}
