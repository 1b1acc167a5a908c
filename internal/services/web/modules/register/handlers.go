package register

import (
	"net/http"
	"strings"

	"github.com/louisbranch/gametrade/internal/marketplace"
	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
	"go.uber.org/zap"
)

type handlers struct {
	modulehandler.Base
	logger *zap.Logger
}

func newHandlers(base modulehandler.Base, logger *zap.Logger) handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return handlers{Base: base, logger: logger}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, marketplace.Registration{}, nil)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_form", "failed to parse registration form", err))
		return
	}
	form := marketplace.Registration{
		Username:        r.PostFormValue(string(marketplace.FieldUsername)),
		Email:           r.PostFormValue(string(marketplace.FieldEmail)),
		Password:        r.PostFormValue(string(marketplace.FieldPassword)),
		ConfirmPassword: r.PostFormValue(string(marketplace.FieldConfirmPassword)),
	}
	violations := form.Validate()
	if !violations.OK() {
		h.renderPage(w, r, http.StatusUnprocessableEntity, form, violations)
		return
	}
	h.logger.Info("registration accepted",
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.String("username", form.Username),
		zap.String("email", form.Email),
	)
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, form marketplace.Registration, violations marketplace.Violations) {
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.RegisterPageView{
		Username: strings.TrimSpace(form.Username),
		Email:    strings.TrimSpace(form.Email),
		Errors:   errorKeys(violations),
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.register.title"), status, webtemplates.RegisterFragment(view, loc))
}

// errorKeys maps each failing field to the message key of its violation.
func errorKeys(violations marketplace.Violations) map[string]string {
	if len(violations) == 0 {
		return nil
	}
	out := make(map[string]string, len(violations))
	for field, violation := range violations {
		out[string(field)] = "web.register.error." + string(field) + "_" + string(violation)
	}
	return out
}
