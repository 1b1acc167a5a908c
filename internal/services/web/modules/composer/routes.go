package composer

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Create, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CreatePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Create, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateImages, h.handleUpload)
	mux.HandleFunc(http.MethodGet+" "+routepath.CreateImages, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.CreateImagePattern, h.handleImage)
	mux.HandleFunc(http.MethodPost+" "+routepath.CreateImageRemovePattern, h.handleRemoveImage)
	mux.HandleFunc(http.MethodGet+" "+routepath.CreateImageRemovePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.CreateRestPattern, h.WriteNotFound)
}
