package app

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/modules"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
)

// BuildRootHandler composes the root mux from the default page modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	deps := cfg.Dependencies
	base := modulehandler.NewBase(deps.ResolveLanguage)
	return Compose(ComposeInput{
		Modules:             modules.DefaultModules(deps),
		NotFound:            http.HandlerFunc(base.WriteNotFound),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
