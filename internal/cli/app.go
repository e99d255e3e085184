// Package cli wires the shade CLI: configuration, logging, persistence and the appearance store.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/repository"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/infrastructure/persistence/filestore"
	"github.com/bnema/shade/internal/infrastructure/persistence/memory"
	"github.com/bnema/shade/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shade/internal/logging"
)

// Options tweak how the App is assembled.
type Options struct {
	// Ephemeral forces the in-memory backend regardless of config.
	Ephemeral bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Prefs         repository.PreferenceRepository

	// Store is the one appearance store of the process.
	Store *usecase.ManageAppearanceUseCase

	lazyDB *sqlite.LazyDB
	ctx    context.Context
}

// NewApp loads the configuration and creates the application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, loadErr := loadConfig()
	cfg := config.DefaultConfig()
	if mgr != nil && loadErr == nil {
		cfg = mgr.Get()
	} else if err := config.ResolveStoragePath(cfg); err != nil {
		return nil, fmt.Errorf("resolve default storage path: %w", err)
	}

	if !opts.Ephemeral && cfg.Storage.Backend != config.StorageBackendMemory {
		if err := config.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("create data directories: %w", err)
		}
	}

	app, err := NewAppWithConfig(cfg, opts)
	if err != nil {
		return nil, err
	}
	app.ConfigManager = mgr

	if loadErr != nil {
		logging.FromContext(app.ctx).Warn().Err(loadErr).Msg("using default configuration")
	}
	return app, nil
}

// NewAppWithConfig creates the application from an already loaded configuration.
func NewAppWithConfig(cfg *config.Config, opts Options) (*App, error) {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	backend := cfg.Storage.Backend
	if opts.Ephemeral {
		backend = config.StorageBackendMemory
	}
	ctx = logging.WithBackend(ctx, string(backend))

	prefs, lazyDB, err := newPreferenceRepository(backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	store := usecase.NewManageAppearanceUseCase(prefs, cfg.AssetLocation())
	store.Initialize(logging.WithComponent(ctx, "appearance"))

	logging.FromContext(ctx).Debug().
		Str("path", cfg.Storage.Path).
		Str("theme", store.Theme().String()).
		Str("brightness", store.Brightness().String()).
		Msg("appearance store ready")

	return &App{
		Config: cfg,
		Prefs:  prefs,
		Store:  store,
		lazyDB: lazyDB,
		ctx:    ctx,
	}, nil
}

func newPreferenceRepository(
	backend config.StorageBackend,
	path string,
) (repository.PreferenceRepository, *sqlite.LazyDB, error) {
	switch backend {
	case config.StorageBackendMemory:
		return memory.NewPreferenceRepository(), nil, nil
	case config.StorageBackendFile:
		if path == "" {
			return nil, nil, fmt.Errorf("file backend requires storage.path")
		}
		return filestore.NewPreferenceRepository(path), nil, nil
	case config.StorageBackendSQLite:
		if path == "" {
			return nil, nil, fmt.Errorf("sqlite backend requires storage.path")
		}
		lazyDB := sqlite.NewLazyDB(path)
		return sqlite.NewPreferenceRepository(lazyDB), lazyDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Theme returns lipgloss styles for the current appearance state.
func (a *App) Theme() *styles.Theme {
	return styles.NewTheme(a.Store.State())
}

// WatchConfig follows config.toml edits and applies the new asset location to the store.
func (a *App) WatchConfig(ctx context.Context) error {
	if a.ConfigManager == nil {
		return nil
	}

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		a.Store.SetAssetLocation(cfg.AssetLocation())
		logging.FromContext(ctx).Info().Str("domain", cfg.Assets.Domain).Msg("asset location reloaded")
	})
	return a.ConfigManager.Watch(ctx)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.lazyDB != nil {
		return a.lazyDB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() (*config.Manager, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return mgr, err
	}
	return mgr, nil
}
