package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/logger"
	"github.com/3-lines-studio/pagesmith/internal/types"
	"github.com/3-lines-studio/pagesmith/internal/usecase"
)

type PageHandler struct {
	service  *usecase.PageService
	assets   http.Handler
	document core.DocumentOptions
	log      logger.Logger
	isDev    bool
}

func NewPageHandler(service *usecase.PageService, assets http.Handler, document core.DocumentOptions, log logger.Logger, isDev bool) http.Handler {
	return &PageHandler{
		service:  service,
		assets:   assets,
		document: document,
		log:      log,
		isDev:    isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		RequestPath: req.URL.Path,
		Document:    h.document,
	})

	if output.Error != nil {
		h.serveError(w, req, output.Error)
		return
	}

	switch output.Action {
	case core.ActionServeAsset:
		h.assets.ServeHTTP(w, req)

	case core.ActionRenderIndex, core.ActionRenderEntity:
		h.serveHTML(w, output.HTML)

	default:
		http.NotFound(w, req)
	}
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *PageHandler) serveError(w http.ResponseWriter, req *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrDocumentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrInvalidRecord):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.log.Error("page render failed", logger.String("path", req.URL.Path), logger.Error(err))
	} else {
		h.log.Warn("page not served", logger.String("path", req.URL.Path), logger.Int("status", status), logger.Error(err))
	}

	var buf bytes.Buffer
	if tmplErr := core.ErrorTemplate.Execute(&buf, core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}); tmplErr != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
