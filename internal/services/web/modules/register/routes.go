package register

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.RegisterPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleSubmit)
	mux.HandleFunc(routepath.RegisterRestPattern, h.WriteNotFound)
}
