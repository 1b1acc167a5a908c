package favorites

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Favorites, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.FavoritesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.FavoriteRemovePattern, h.handleRemove)
	mux.HandleFunc(http.MethodGet+" "+routepath.FavoriteRemovePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.FavoritesRestPattern, h.WriteNotFound)
}
