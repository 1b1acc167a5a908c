package rules

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Rules, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.RulesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.RulesRestPattern, h.WriteNotFound)
}
