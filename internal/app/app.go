package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/napat/kanri/internal/ai"
	"github.com/napat/kanri/internal/config"
	"github.com/napat/kanri/internal/store"
)

// App holds the application state and dependencies
type App struct {
	Cfg      config.Config
	Store    *store.Store
	Planner  *ai.Client
	lockFile *flock.Flock
}

// New creates a new application instance with seeded state
func New(cfg config.Config) (*App, error) {
	s := store.New()
	s.Seed(time.Now())

	app := &App{
		Cfg:     cfg,
		Store:   s,
		Planner: ai.New(cfg.APIKey, cfg.Model),
	}

	// A second instance would fight over the terminal and could
	// double-submit AI requests
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "kanri")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	a.lockFile = flock.New(filepath.Join(dir, "kanri.lock"))

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another instance of kanri is already running")
	}
	return nil
}

// Close cleans up application resources
func (a *App) Close() error {
	if a.lockFile != nil {
		return a.lockFile.Unlock()
	}
	return nil
}
