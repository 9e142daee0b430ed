package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/evenhub/internal/layout"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Display  DisplayConfig
	Feed     FeedConfig
	Feeds    []FeedSource
}

// DatabaseConfig holds sqlite settings for the simulator's local storage.
type DatabaseConfig struct {
	Path string
}

// LogConfig selects zerolog output.
type LogConfig struct {
	Level  string
	Format string // "console" or "json"
	File   string
}

// DisplayConfig holds the device container identities.
type DisplayConfig struct {
	TextID   int    `mapstructure:"text_id"`
	TextName string `mapstructure:"text_name"`
	ListID   int    `mapstructure:"list_id"`
	ListName string `mapstructure:"list_name"`
}

// FeedConfig holds feed fetch settings.
type FeedConfig struct {
	Timeout time.Duration
}

// FeedSource is one configured RSS feed.
type FeedSource struct {
	ID         string `mapstructure:"id"`
	Title      string `mapstructure:"title"`
	URL        string `mapstructure:"url"`
	MaxEntries int    `mapstructure:"max_entries"`
}

// ContainerIDs converts the display section for the layout engine.
func (d DisplayConfig) ContainerIDs() layout.ContainerIDs {
	return layout.ContainerIDs{
		Text: layout.Identity{ID: d.TextID, Name: d.TextName},
		List: layout.Identity{ID: d.ListID, Name: d.ListName},
	}
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "evenhub")
}

// Load reads configuration from file and env. Env var overrides use prefix EVENHUB_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "evenhub.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", filepath.Join(dataDir(), "evenhub.log"))
	v.SetDefault("display.text_id", layout.DefaultContainerIDs.Text.ID)
	v.SetDefault("display.text_name", layout.DefaultContainerIDs.Text.Name)
	v.SetDefault("display.list_id", layout.DefaultContainerIDs.List.ID)
	v.SetDefault("display.list_name", layout.DefaultContainerIDs.List.Name)
	v.SetDefault("feed.timeout", 10*time.Second)
	v.SetDefault("feeds", []map[string]any{{
		"id":          "tagesschau",
		"title":       "Tagesschau",
		"url":         "https://www.tagesschau.de/infoservices/alle-meldungen-100~rss2.xml",
		"max_entries": 50,
	}})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EVENHUB_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "evenhub"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EVENHUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// an explicit config file must exist; the default location is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

