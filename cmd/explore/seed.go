package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/fixtures"
	"github.com/blackmichael/explore-feed/internal/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed [path]",
	Short: "Write the sample posts and stories into a sqlite file",
	Long: `seed creates (or replaces the contents of) a sqlite fixture store. Point
fixtures.db or EXPLORE_FIXTURES_DB at the file to serve from it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Fixtures.DB
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no database path: pass one or set fixtures.db")
		}

		ctx := cmd.Context()
		repo, err := sqlite.NewRepository(ctx, path)
		if err != nil {
			return err
		}
		defer repo.Close()

		src := fixtures.NewStatic()
		posts, err := src.Posts(ctx)
		if err != nil {
			return err
		}
		stories, err := src.Stories(ctx)
		if err != nil {
			return err
		}
		if err := repo.Seed(ctx, posts, stories); err != nil {
			return err
		}

		logger.Info("fixtures seeded",
			zap.String("path", path),
			zap.Int("posts", len(posts)),
			zap.Int("stories", len(stories)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts and %d stories into %s\n", len(posts), len(stories), path)
		return nil
	},
}
