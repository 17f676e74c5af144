package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackmichael/explore-feed/internal/client"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/tui"
	"github.com/blackmichael/explore-feed/internal/view"
)

var (
	feedRemote  string
	feedPages   int
	feedJSON    bool
	feedColumns int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Render the feed once as text or JSON",
	Long: `feed renders the whole feed with the given number of story pages loaded.
With --remote it asks a running server instead of rendering locally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		screen, err := cfg.Screen()
		if err != nil {
			return err
		}

		var tree *view.Node
		var tokens *theme.Tokens
		if feedRemote != "" {
			c := client.NewClient(feedRemote)
			resp, err := c.GetFeed(ctx, screen, feedPages)
			if err != nil {
				return err
			}
			tree = resp.Tree
			tokens = theme.New(screen)
		} else {
			src, closeSrc, err := openFixtures(ctx)
			if err != nil {
				return err
			}
			defer closeSrc()

			svc, err := feed.NewService(ctx, cfg.FeedService(), src, logger)
			if err != nil {
				return fmt.Errorf("create feed service: %w", err)
			}
			tokens = theme.New(screen)
			session := svc.NewSession(tokens)
			for i := 1; i < feedPages; i++ {
				if _, ok := session.Advance(); !ok {
					break
				}
			}
			if tree, err = session.Render(); err != nil {
				return fmt.Errorf("render feed: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		if feedJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		}

		r := tui.Renderer{Width: feedColumns, Styles: tui.NewStyles(tokens)}
		_, err = fmt.Fprintln(out, r.Render(tree))
		return err
	},
}

func init() {
	f := feedCmd.Flags()
	f.StringVar(&feedRemote, "remote", "", "base URL of a running explore server")
	f.IntVar(&feedPages, "stories", 1, "pages of stories to load")
	f.BoolVar(&feedJSON, "json", false, "print the view tree as JSON")
	f.IntVar(&feedColumns, "columns", 80, "terminal width for text output")
}
