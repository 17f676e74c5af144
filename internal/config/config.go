package config

import (
	"fmt"
	"math"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/logging"
	"github.com/blackmichael/explore-feed/internal/responsive"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Device   DeviceConfig   `yaml:"device"`
	Feed     FeedConfig     `yaml:"feed"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Logging  logging.Config `yaml:"logging"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	// Hostname is the interface the HTTP server binds to. Empty means all.
	Hostname string `yaml:"hostname"`

	// Port is the HTTP server port.
	Port int `yaml:"port"`
}

// DeviceConfig is the default screen used when a request or the terminal host
// does not report one.
type DeviceConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Platform string  `yaml:"platform"`
}

// FeedConfig mirrors feed.Config in YAML.
type FeedConfig struct {
	Title             string  `yaml:"title"`
	NotificationCount int     `yaml:"notification_count"`
	StoryPageSize     int     `yaml:"story_page_size"`
	Threshold         float64 `yaml:"threshold"`
}

// FixturesConfig selects where the posts and stories come from.
type FixturesConfig struct {
	// DB is a sqlite file seeded with `explore seed`. Empty means the
	// compiled-in fixtures.
	DB string `yaml:"db"`
}

// DefaultConfig returns the baseline device, the designed feed and port 3000.
func DefaultConfig() *Config {
	fc := feed.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Port: 3000,
		},
		Device: DeviceConfig{
			Width:    responsive.BaseWidth,
			Height:   responsive.BaseHeight,
			Platform: string(responsive.PlatformIOS),
		},
		Feed: FeedConfig{
			Title:             fc.Title,
			NotificationCount: fc.NotificationCount,
			StoryPageSize:     fc.StoryPageSize,
			Threshold:         fc.Threshold,
		},
		Logging: logging.Config{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	// PORT is honored for platforms that inject it.
	for _, name := range []string{"PORT", "EXPLORE_PORT"} {
		if v := os.Getenv(name); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			c.Server.Port = port
		}
	}

	if v := os.Getenv("EXPLORE_HOSTNAME"); v != "" {
		c.Server.Hostname = v
	}

	if v := os.Getenv("EXPLORE_DEVICE_WIDTH"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid EXPLORE_DEVICE_WIDTH: %w", err)
		}
		c.Device.Width = w
	}

	if v := os.Getenv("EXPLORE_DEVICE_HEIGHT"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid EXPLORE_DEVICE_HEIGHT: %w", err)
		}
		c.Device.Height = h
	}

	if v := os.Getenv("EXPLORE_PLATFORM"); v != "" {
		c.Device.Platform = v
	}

	if v := os.Getenv("EXPLORE_STORY_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid EXPLORE_STORY_PAGE_SIZE: %w", err)
		}
		c.Feed.StoryPageSize = n
	}

	if v := os.Getenv("EXPLORE_FIXTURES_DB"); v != "" {
		c.Fixtures.DB = v
	}

	if v := os.Getenv("EXPLORE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks the values the binaries cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if _, err := c.Screen(); err != nil {
		return err
	}
	if c.Feed.StoryPageSize <= 0 {
		return fmt.Errorf("invalid story page size: %d", c.Feed.StoryPageSize)
	}
	if c.Feed.Threshold < 0 || math.IsNaN(c.Feed.Threshold) || math.IsInf(c.Feed.Threshold, 0) {
		return fmt.Errorf("invalid scroll threshold: %v", c.Feed.Threshold)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Hostname, strconv.Itoa(c.Server.Port))
}

// Screen returns the configured default device.
func (c *Config) Screen() (responsive.Screen, error) {
	p, err := responsive.ParsePlatform(c.Device.Platform)
	if err != nil {
		return responsive.Screen{}, fmt.Errorf("device: %w", err)
	}
	s, err := responsive.NewScreen(c.Device.Width, c.Device.Height, p)
	if err != nil {
		return responsive.Screen{}, fmt.Errorf("device: %w", err)
	}
	return s, nil
}

// FeedService returns the feed section as a feed.Config.
func (c *Config) FeedService() feed.Config {
	return feed.Config{
		Title:             c.Feed.Title,
		NotificationCount: c.Feed.NotificationCount,
		StoryPageSize:     c.Feed.StoryPageSize,
		Threshold:         c.Feed.Threshold,
	}
}
