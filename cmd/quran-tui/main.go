package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/config"
	"quran-tui/internal/database"
	"quran-tui/internal/dataset"
	"quran-tui/internal/kvstore"
	"quran-tui/internal/logging"
	"quran-tui/internal/settings"
	"quran-tui/internal/theme"
	"quran-tui/internal/ui"
	"quran-tui/internal/zoom"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := database.Open(cfg.Database.Path, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := seed(context.Background(), cfg, store, log); err != nil {
		return err
	}

	settingsPath := cfg.UI.SettingsPath
	if settingsPath == "" {
		if settingsPath, err = settings.DefaultPath(); err != nil {
			return fmt.Errorf("failed to locate settings: %w", err)
		}
	}
	prefs, err := settings.Load(settingsPath)
	if err != nil {
		log.WithError(err).Warn("ignoring unreadable settings")
		prefs = settings.Settings{}
	}

	themeKey := cfg.UI.Theme
	if themeKey == config.DefaultTheme && prefs.Theme != "" {
		themeKey = prefs.Theme
	}
	zoomer := zoom.New()
	if prefs.Scale > 0 {
		zoomer = zoom.NewWithScale(prefs.Scale)
	}

	deps := ui.Deps{
		Content:     store,
		Bookmarks:   bookmarks.NewStore(kvstore.New(store.DB), log),
		Log:         log,
		Theme:       theme.GetTheme(themeKey),
		Zoom:        zoomer,
		LastChapter: prefs.LastChapter,
	}

	p := tea.NewProgram(
		ui.New(deps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	prefs.Theme = themeKey
	prefs.Scale = zoomer.Committed()
	if m, ok := final.(ui.Model); ok {
		prefs.LastChapter = m.LastChapter()
	}
	if err := settings.Save(settingsPath, prefs); err != nil {
		log.WithError(err).Warn("failed to save settings")
	}
	return nil
}

func seed(ctx context.Context, cfg *config.Config, store *database.Store, log *logrus.Logger) error {
	if cfg.Dataset.ReseedOnStart {
		if err := store.Reset(ctx); err != nil {
			return err
		}
	}

	chapters, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	if err := store.Seed(ctx, chapters); err != nil {
		return err
	}

	n, err := store.CountVerses(ctx)
	if err != nil {
		return err
	}
	log.WithField("verses", n).Info("content ready")
	return nil
}
