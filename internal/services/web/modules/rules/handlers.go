package rules

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/platform/i18n"
	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.PageLocalizer(w, r)
	view, err := h.service.loadPage(httpx.RequestContext(r), i18n.Lang(tag), r.URL.Query()[routepath.OpenParam])
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.rules.title"), http.StatusOK, webtemplates.RulesFragment(view, loc))
}
