package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli"
	"github.com/bnema/pagehost/internal/cli/model"
	urlutil "github.com/bnema/pagehost/internal/domain/url"
	"github.com/bnema/pagehost/internal/host"
	"github.com/bnema/pagehost/internal/infrastructure/cache"
	"github.com/bnema/pagehost/internal/infrastructure/config"
	"github.com/bnema/pagehost/internal/infrastructure/desktop"
	"github.com/bnema/pagehost/internal/infrastructure/engine"
	"github.com/bnema/pagehost/internal/infrastructure/filesystem"
	"github.com/bnema/pagehost/internal/infrastructure/script"
	"github.com/bnema/pagehost/internal/logging"
)

var browseVisible bool

var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Host a page in the terminal",
	Long: `Launch the engine, load the home page and host it from the terminal.

If a URL is provided it replaces the configured home_url for this session;
its host is the one navigation stays on.

Examples:
  pagehost browse                        # Open the configured home page
  pagehost browse https://medium.com/    # Host medium.com
  pagehost browse --visible              # Show the browser window`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVar(&browseVisible, "visible", false, "show the browser window (overrides engine.headless)")
}

func runBrowse(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	homeURL := a.Config.HomeURL
	if len(args) > 0 {
		homeURL = urlutil.Normalize(args[0])
	}
	if browseVisible {
		a.Config.Engine.Headless = false
	}

	logPath, err := a.UseFileLog()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(a)
	defer stop()

	sessionID := logging.GenerateSessionID()
	ctx = logging.WithSessionID(ctx, sessionID)
	log := logging.FromContext(ctx)
	log.Info().Str("home_url", homeURL).Str("log_file", logPath).Msg("starting browse session")

	watchConfig(ctx, a)

	eng, err := startEngine(ctx, a)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close engine")
		}
	}()

	ctrl, err := host.New(ctx, hostDeps(a, eng), host.Config{
		HomeURL:   homeURL,
		SessionID: sessionID,
		Engine:    a.EngineOptions(),
		Injection: usecase.InjectStyleConfig{
			Enabled:         a.Config.Injection.Enabled,
			BackgroundColor: a.Config.Injection.BackgroundColor,
		},
		ExportDir:       a.Config.Export.Dir,
		PrintBackground: a.Config.Export.PrintBackground,
	})
	if err != nil {
		return err
	}
	if err := ctrl.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = ctrl.Close() }()

	p := tea.NewProgram(
		model.NewBrowseModel(ctx, a.Theme, ctrl),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run browse view: %w", err)
	}

	log.Info().Msg("browse session ended")
	return nil
}

// startEngine launches the browser while the navigation log is pruned.
// Pruning opens the database, so both startup costs overlap.
func startEngine(ctx context.Context, a *cli.App) (*engine.Engine, error) {
	var eng *engine.Engine
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		eng, err = engine.Launch(ctx, a.EngineConfig())
		return err
	})
	g.Go(func() error {
		a.PruneNavigationLog(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return eng, nil
}

func hostDeps(a *cli.App, eng port.WebEngine) host.Deps {
	deps := host.Deps{
		Engine:        eng,
		Opener:        desktop.NewOpener(),
		Validator:     script.NewValidator(),
		FileSystem:    filesystem.New(),
		NavigationLog: a.NavigationLogUC,
	}
	if size := a.Config.DescriptionCacheSize; size > 0 {
		deps.DescriptionCache = cache.NewLRU[string, string](size)
	}
	return deps
}

// watchConfig reloads the config file on change. Engine settings only
// apply to the next session.
func watchConfig(ctx context.Context, a *cli.App) {
	if a.ConfigManager == nil {
		return
	}
	log := logging.FromContext(ctx)
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		log.Info().
			Str("home_url", cfg.HomeURL).
			Str("log_level", cfg.Logging.Level).
			Msg("restart the session to apply engine changes")
	})
	if err := a.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to watch config file")
	}
}
