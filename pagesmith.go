// Package pagesmith renders static business-listing sites: an index page
// from the site record and one page per location record.
package pagesmith

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/3-lines-studio/pagesmith/internal/adapters/cli"
	"github.com/3-lines-studio/pagesmith/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/pagesmith/internal/adapters/http"
	"github.com/3-lines-studio/pagesmith/internal/adapters/source"
	"github.com/3-lines-studio/pagesmith/internal/assets"
	"github.com/3-lines-studio/pagesmith/internal/config"
	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/logger"
	"github.com/3-lines-studio/pagesmith/internal/metrics"
	"github.com/3-lines-studio/pagesmith/internal/templates"
	"github.com/3-lines-studio/pagesmith/internal/usecase"
)

// Source yields raw site and location documents.
type Source interface {
	usecase.Source
	Close() error
}

type App struct {
	cfg       *config.Config
	source    Source
	templates []core.PageTemplate
	assets    *assets.Resolver
	fs        fs.FileSystem
	out       usecase.CLIOutput
	log       logger.Logger
	metrics   *metrics.Metrics
}

type Option func(*App)

func WithLogger(l logger.Logger) Option {
	return func(a *App) { a.log = l }
}

func WithOutput(out usecase.CLIOutput) Option {
	return func(a *App) { a.out = out }
}

// WithSource replaces the source selected by the configuration.
func WithSource(src Source) Option {
	return func(a *App) { a.source = src }
}

func WithFileSystem(fsys fs.FileSystem) Option {
	return func(a *App) { a.fs = fsys }
}

func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("pagesmith: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{cfg: cfg}
	for _, opt := range opts {
		opt(app)
	}

	if app.log == nil {
		l, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
		if err != nil {
			return nil, err
		}
		app.log = l
	}
	if app.out == nil {
		app.out = cli.NewOutput()
	}
	if app.fs == nil {
		app.fs = fs.NewOSFileSystem()
	}
	if app.source == nil {
		src, err := openSource(ctx, cfg, app.fs)
		if err != nil {
			return nil, err
		}
		app.source = src
	}

	app.metrics = metrics.New()
	app.assets = assets.ForDir(cfg.AssetsDir)
	app.templates = templates.All(templates.Options{
		Locale:      cfg.Locale,
		PhoneRegion: cfg.PhoneRegion,
		MapsAPIKey:  cfg.MapsAPIKey,
		Logger:      app.log,
	})

	return app, nil
}

func openSource(ctx context.Context, cfg *config.Config, fsys fs.FileSystem) (Source, error) {
	switch cfg.Source {
	case config.SourceSQLite:
		return source.OpenSQLite(ctx, cfg.SQLitePath)
	case config.SourceDir:
		return source.NewDirSource(cfg.DataDir, fsys), nil
	}
	return nil, fmt.Errorf("pagesmith: unknown source %q", cfg.Source)
}

func (a *App) documentOptions() core.DocumentOptions {
	return core.DocumentOptions{Lang: a.cfg.Locale, CSSHref: a.cfg.CSSHref}
}

func (a *App) buildService() *usecase.BuildService {
	return usecase.NewBuildService(a.templates, a.source, a.assets, a.fs, a.out, a.log, a.metrics)
}

// Build renders every page into the output directory. Per-record failures
// are joined into the returned error unless FailFast stopped the build.
func (a *App) Build(ctx context.Context) (usecase.BuildOutput, error) {
	out := a.buildService().BuildSite(ctx, usecase.BuildInput{
		OutDir:      a.cfg.OutDir,
		Concurrency: a.cfg.Concurrency,
		FailFast:    a.cfg.FailFast,
		Document:    a.documentOptions(),
	})
	return out, out.Error
}

// Validate decodes, validates and renders every record without writing.
func (a *App) Validate(ctx context.Context) (usecase.BuildOutput, error) {
	out := a.buildService().BuildSite(ctx, usecase.BuildInput{
		OutDir:      a.cfg.OutDir,
		Concurrency: a.cfg.Concurrency,
		FailFast:    a.cfg.FailFast,
		DryRun:      true,
		Document:    a.documentOptions(),
	})
	return out, out.Error
}

// Handler serves pages rendered on demand, assets and metrics.
func (a *App) Handler() http.Handler {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Pages:    usecase.NewPageService(a.templates, a.source, a.metrics),
		Assets:   a.assets,
		Metrics:  a.metrics.Handler(),
		Document: a.documentOptions(),
		Logger:   a.log,
		IsDev:    a.cfg.Dev,
	})
}

// Serve runs the preview server until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("preview server listening", logger.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) Close() error {
	err := a.source.Close()
	_ = a.log.Sync()
	return err
}
