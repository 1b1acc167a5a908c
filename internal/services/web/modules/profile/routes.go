package profile

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.ProfileRestPattern, h.WriteNotFound)
}
