package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/ctxlog"
	"github.com/vk/geneloader/internal/genelist"
	"github.com/vk/geneloader/internal/lovd"
	"github.com/vk/geneloader/internal/settings"
)

// Bootstrapper resolves a verified installation path into an installation.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, root string) (*lovd.Installation, error)
}

// Selector turns the gene and transcript list settings into inclusion lists.
type Selector interface {
	Select(ctx context.Context, geneList, transcriptList string) (*genelist.Selection, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	settings *config.Settings
	store    *config.Store
	verifier *settings.Verifier

	bootstrapper Bootstrapper
	selector     Selector

	installation *lovd.Installation
	selection    *genelist.Selection
}

// NewApp is the constructor for the main application. Prompts are read from
// in and written to outW; log records go to logW. Settings files named in
// appConfig are read from fsys, as are all paths the user enters.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader, fsys afero.Fs) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfg, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		// A failure to load settings is a fatal startup error.
		panic(fmt.Errorf("failed to load settings: %w", err))
	}
	cfg.User = config.OverlayEnv(cfg.User, appConfig.Environ)
	logger.Debug("Settings loaded.", "version", cfg.Version, "user_settings", len(cfg.User))

	store := config.NewStore(cfg.User)
	verifier := settings.New(in, outW, fsys, store, settings.WithLayout(settings.Layout{
		MarkerFile: cfg.LOVD.MarkerFile,
		SourceDir:  cfg.LOVD.SourceDir,
	}))

	return &App{
		outW:         outW,
		logger:       logger,
		settings:     cfg,
		store:        store,
		verifier:     verifier,
		bootstrapper: lovd.NewBootstrapper(fsys, cfg.LOVD.MarkerFile),
		selector:     genelist.New(fsys, cfg.HGNC),
	}
}

// Store returns the application's configuration store. This is primarily for testing.
func (a *App) Store() *config.Store {
	return a.store
}

// Installation returns the installation resolved by Run, or nil.
func (a *App) Installation() *lovd.Installation {
	return a.installation
}

// Selection returns the gene selection resolved by Run, or nil.
func (a *App) Selection() *genelist.Selection {
	return a.selection
}
