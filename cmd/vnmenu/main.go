package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leonelquinteros/gotext"

	"github.com/jwebster45206/vn-menu/internal/config"
	"github.com/jwebster45206/vn-menu/internal/logger"
	"github.com/jwebster45206/vn-menu/internal/storage"
	"github.com/jwebster45206/vn-menu/internal/ui"
	"github.com/jwebster45206/vn-menu/pkg/interpreter"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close()
	}()
	log := logger.Setup(cfg, logFile)

	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")

	store, err := openStorage(cfg, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to open storage", "redis", cfg.RedisURL != "")
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	session, err := ui.StartSession(ctx, store, cfg.StartMap)
	cancel()
	if err != nil {
		log.Error("Failed to start session", "map", cfg.StartMap, "error", err)
		fmt.Fprintf(os.Stderr, "Failed to load map %s: %v\n", cfg.StartMap, err)
		os.Exit(1)
	}
	log = logger.WithSessionID(log, session.State.ID.String())
	log.Info("Session started", "map", session.MapFile, "entities", len(session.Map.Entities))

	app := ui.NewApp(session, store, interpreter.New(log), log, cfg.SaveSlots, ui.DefaultKeyMap())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("UI exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("Session ended", "turns", app.Session().State.TurnCounter)
}

// openStorage connects to Redis when REDIS_URL is set and keeps saves in memory otherwise.
func openStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, saves are kept in memory")
		return storage.NewMemoryStorage(cfg.DataDir, log), nil
	}

	redisStorage, err := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, log)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	if err := redisStorage.WaitForConnection(ctx, 30, 2*time.Second); err != nil {
		_ = redisStorage.Close()
		return nil, err
	}
	return redisStorage, nil
}
