package http

import (
	"errors"
	iofs "io/fs"
	"net/http"
	"strings"

	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/usecase"
)

type AssetHandler struct {
	assets usecase.Assets
	isDev  bool
}

func NewAssetHandler(assets usecase.Assets, isDev bool) http.Handler {
	return &AssetHandler{
		assets: assets,
		isDev:  isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, core.AssetsPrefix)
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		http.NotFound(w, req)
		return
	}

	data, err := h.assets.Open(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, iofs.ErrInvalid) {
			http.NotFound(w, req)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	if h.isDev {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=300")
	}
	_, _ = w.Write(data)
}
