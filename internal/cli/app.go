// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli/styles"
	"github.com/bnema/pagehost/internal/domain/build"
	"github.com/bnema/pagehost/internal/domain/repository"
	"github.com/bnema/pagehost/internal/infrastructure/config"
	"github.com/bnema/pagehost/internal/infrastructure/engine"
	"github.com/bnema/pagehost/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/pagehost/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Opened on first use.
	db *sqlite.LazyDB

	// Use cases
	NavigationLogUC *usecase.NavigationLogUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	var repo repository.NavigationLogRepository
	if cfg.NavigationLog.Enabled {
		repo = sqlite.NewLazyNavigationLogRepository(db)
	}

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Bool("navigation_log", cfg.NavigationLog.Enabled).
		Msg("navigation log configured")

	return &App{
		Config:          cfg,
		ConfigManager:   mgr,
		Theme:           styles.NewThemeFromPalette(palette(cfg.Appearance.Palette)),
		db:              db,
		NavigationLogUC: usecase.NewNavigationLogUseCase(ctx, repo, cfg.NavigationLog.QueueSize),
		ctx:             ctx,
	}, nil
}

// Close releases all resources. Pending navigation records are flushed
// before the database closes.
func (a *App) Close() error {
	if a.NavigationLogUC != nil {
		a.NavigationLogUC.Close()
	}
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// UseFileLog redirects logging to the rotating log file so the terminal UI
// owns the screen. When file logging is disabled, logs are discarded.
func (a *App) UseFileLog() (string, error) {
	lc := a.Config.Logging
	if !lc.EnableFileLog {
		logger := zerolog.Nop()
		a.ctx = logging.WithContext(a.ctx, logger)
		return "", nil
	}

	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        lc.LogDir,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAge,
		Compress:   lc.Compress,
	})
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}

	logger := logging.NewFromConfigValuesWithOutput(lc.Level, lc.Format, rotator)
	a.ctx = logging.WithContext(a.ctx, logger)

	prev := a.logCleanup
	a.logCleanup = func() {
		if prev != nil {
			prev()
		}
		_ = rotator.Close()
	}
	return rotator.Path(), nil
}

// EngineConfig maps the engine section onto the launcher settings.
func (a *App) EngineConfig() engine.Config {
	ec := a.Config.Engine
	return engine.Config{
		ControlURL:  ec.ControlURL,
		Bin:         ec.Bin,
		Headless:    ec.Headless,
		UserDataDir: ec.UserDataDir,
	}
}

// EngineOptions maps the engine section onto page options. Policy and
// Dialog are left for the host controller.
func (a *App) EngineOptions() port.EngineOptions {
	ec := a.Config.Engine
	appName := ec.ApplicationName
	if appName == build.ApplicationName {
		appName = a.BuildInfo.UserAgentSuffix()
	}
	return port.EngineOptions{
		UserAgent:           ec.UserAgent,
		ApplicationName:     appName,
		ContentMode:         port.ContentMode(ec.ContentMode),
		JavaScriptEnabled:   ec.JavaScriptEnabled,
		HTTPSPolicy:         port.HTTPSPolicy(ec.HTTPSPolicy),
		PersistentDataStore: ec.PersistentDataStore,
		Viewport: port.Viewport{
			Width:  ec.Viewport.Width,
			Height: ec.Viewport.Height,
		},
	}
}

// PruneNavigationLog applies the configured retention. Failures are logged.
func (a *App) PruneNavigationLog(ctx context.Context) {
	days := a.Config.NavigationLog.RetentionDays
	if days <= 0 {
		return
	}
	if err := a.NavigationLogUC.Prune(ctx, time.Duration(days)*24*time.Hour); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int("retention_days", days).Msg("failed to prune navigation log")
	}
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be used.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err == nil {
		err = mgr.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
		cfg := config.DefaultConfig()
		if perr := config.EnsurePaths(cfg); perr != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", perr)
		}
		return mgr, cfg
	}
	return mgr, mgr.Get()
}

func palette(p config.PaletteConfig) styles.Palette {
	return styles.Palette{
		Background:     p.Background,
		Surface:        p.Surface,
		SurfaceVariant: p.SurfaceVariant,
		Text:           p.Text,
		Muted:          p.Muted,
		Accent:         p.Accent,
		Border:         p.Border,
	}
}
