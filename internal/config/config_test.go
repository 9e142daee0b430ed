package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/evenhub/internal/layout"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("EVENHUB_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "evenhub", "evenhub.db"), cfg.Database.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, layout.DefaultContainerIDs, cfg.Display.ContainerIDs())
	require.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	require.Len(t, cfg.Feeds, 1)
	require.Equal(t, "tagesschau", cfg.Feeds[0].ID)
	require.Equal(t, 50, cfg.Feeds[0].MaxEntries)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "/tmp/hub.db"

[display]
text_id = 11
text_name = "body"
list_id = 12
list_name = "menu"

[feed]
timeout = "3s"

[[feeds]]
id = "local"
title = "Local"
url = "http://localhost/rss"
max_entries = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("EVENHUB_CONFIG", path)
	t.Setenv("EVENHUB_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/hub.db", cfg.Database.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, layout.ContainerIDs{
		Text: layout.Identity{ID: 11, Name: "body"},
		List: layout.Identity{ID: 12, Name: "menu"},
	}, cfg.Display.ContainerIDs())
	require.Equal(t, 3*time.Second, cfg.Feed.Timeout)
	require.Equal(t, []FeedSource{{ID: "local", Title: "Local", URL: "http://localhost/rss", MaxEntries: 5}}, cfg.Feeds)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("EVENHUB_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	_, err := Load()
	require.Error(t, err)
}
