// Command explore renders the social feed in a terminal and exercises the
// feed host from the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/config"
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/fixtures"
	"github.com/blackmichael/explore-feed/internal/logging"
	"github.com/blackmichael/explore-feed/internal/responsive"
	"github.com/blackmichael/explore-feed/internal/sqlite"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logFile    string

	// Device overrides
	width    float64
	height   float64
	platform string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore feed: responsive social feed for terminals and HTTP hosts",
	Long: `explore renders the "Let's Explore" social feed: a header with a
notification badge, an infinitely loading stories strip and a list of post
cards, all sized from design tokens derived from a device screen.

Run without arguments to open the terminal feed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("width") {
			cfg.Device.Width = width
		}
		if flags.Changed("height") {
			cfg.Device.Height = height
		}
		if flags.Changed("platform") {
			cfg.Device.Platform = platform
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if logFile != "" {
			cfg.Logging.File = logFile
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}

		// The terminal feed owns the screen: log to a file or not at all.
		if isTUI(cmd) && cfg.Logging.File == "" {
			logger = zap.NewNop()
			return nil
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

// isTUI reports whether cmd opens the terminal feed: the root command or
// its tui alias.
func isTUI(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", os.Getenv("EXPLORE_CONFIG"), "path to a YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.Float64Var(&width, "width", responsive.BaseWidth, "device width in logical units")
	pf.Float64Var(&height, "height", responsive.BaseHeight, "device height in logical units")
	pf.StringVar(&platform, "platform", string(responsive.PlatformIOS), "device platform (ios or android)")

	rootCmd.AddCommand(tuiCmd, tokensCmd, seedCmd, feedCmd, storiesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openFixtures returns the sqlite store when one is configured and the
// compiled-in fixtures otherwise.
func openFixtures(ctx context.Context) (domain.FixtureSource, func() error, error) {
	if cfg.Fixtures.DB == "" {
		return fixtures.NewStatic(), func() error { return nil }, nil
	}
	repo, err := sqlite.NewRepository(ctx, cfg.Fixtures.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("open fixtures: %w", err)
	}
	logger.Debug("using sqlite fixtures", zap.String("path", cfg.Fixtures.DB))
	return repo, repo.Close, nil
}
