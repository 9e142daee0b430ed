package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/evenhub/internal/app"
	"github.com/jask/evenhub/internal/bridge"
	"github.com/jask/evenhub/internal/config"
	"github.com/jask/evenhub/internal/database"
	"github.com/jask/evenhub/internal/database/repository"
	"github.com/jask/evenhub/internal/logging"
	"github.com/jask/evenhub/internal/service"
	"github.com/jask/evenhub/internal/tui"
)

func main() {
	legacy := flag.Bool("legacy-results", false, "answer startup page creation like early runtime builds")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: evenhub [-legacy-results]")
		fmt.Fprintln(os.Stderr, "       evenhub layout <view.yaml>")
		fmt.Fprintln(os.Stderr, "       evenhub pagelog [limit]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "":
		err = run(cfg, *legacy)
	case "layout":
		if flag.NArg() != 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = printLayout(os.Stdout, flag.Arg(1), cfg.Display.ContainerIDs())
	case "pagelog":
		limit := 20
		if flag.NArg() > 1 {
			if limit, err = strconv.Atoi(flag.Arg(1)); err != nil {
				flag.Usage()
				os.Exit(2)
			}
		}
		err = showPageLog(cfg, limit)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, legacy bool) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []tui.Option{
		tui.WithLogger(logger.With().Str("component", "device").Logger()),
		tui.WithStorage(repository.NewLocalStorageRepo(db)),
		tui.WithPageLog(repository.NewPageLogRepo(db)),
	}
	if legacy {
		opts = append(opts, tui.WithLegacyResults())
	}
	device := tui.NewDevice(opts...)

	storage := service.NewBridgeStorage(bridge.NewStorageBridge(device))
	client := &http.Client{Timeout: cfg.Feed.Timeout}
	ctrl := app.New(device, cfg.Display.ContainerIDs(), app.Services{
		Data:     service.NewMockDataService(feedSources(cfg.Feeds)),
		Feeds:    service.NewFeedService(client, storage, logger.With().Str("component", "feeds").Logger()),
		Shopping: service.NewShoppingList(storage, database.ShoppingListKey),
	}, logger)

	p := tea.NewProgram(tui.NewModel(device, nil), tea.WithAltScreen())
	// page changes can happen inside Update; Send must not block it
	device.OnChange(func() { go p.Send(tui.PageChangedMsg{}) })

	if err := ctrl.Start(ctx); err != nil {
		return err
	}
	defer ctrl.Stop()

	_, err = p.Run()
	return err
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

func feedSources(in []config.FeedSource) []service.FeedSource {
	out := make([]service.FeedSource, 0, len(in))
	for _, f := range in {
		out = append(out, service.FeedSource{ID: f.ID, Title: f.Title, URL: f.URL, MaxEntries: f.MaxEntries})
	}
	return out
}
