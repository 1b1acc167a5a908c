package catalog

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ListingFavoritePattern, h.handleToggleFavorite)
	mux.HandleFunc(http.MethodGet+" "+routepath.ListingFavoritePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
