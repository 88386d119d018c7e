// Package http serves rendered pages for local preview.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/logger"
	"github.com/3-lines-studio/pagesmith/internal/usecase"
)

type RouterConfig struct {
	Pages    *usecase.PageService
	Assets   usecase.Assets
	Metrics  http.Handler
	Document core.DocumentOptions
	Logger   logger.Logger
	IsDev    bool
}

// NewRouter mounts assets under /assets/, prometheus metrics at /metrics
// and every other path on the page handler.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	assets := NewAssetHandler(cfg.Assets, cfg.IsDev)
	pages := NewPageHandler(cfg.Pages, assets, cfg.Document, cfg.Logger, cfg.IsDev)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.Logger))

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}
	r.Handle(core.AssetsPrefix+"*", assets)
	r.Get("/", pages.ServeHTTP)
	r.Get("/{id}", pages.ServeHTTP)
	r.NotFound(pages.ServeHTTP)

	return r
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			log.Debug("request",
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.Int("status", ww.Status()),
				logger.Duration("elapsed", time.Since(start)),
				logger.String("request_id", middleware.GetReqID(req.Context())),
			)
		})
	}
}
