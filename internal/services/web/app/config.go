package app

import (
	"github.com/louisbranch/gametrade/internal/services/web/modules"
	"github.com/louisbranch/gametrade/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Dependencies        modules.Dependencies
	RequestSchemePolicy requestmeta.SchemePolicy
}
