// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/gametrade/internal/services/web/platform/i18n"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app-shell error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc := resolveLocalizer(w, r, resolver)
	err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolver)
		return
	}
	loc := resolveLocalizer(w, r, resolver)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func resolveLocalizer(w http.ResponseWriter, r *http.Request, resolver pagerender.RequestResolver) webtemplates.Localizer {
	if resolver == nil {
		loc, _ := webi18n.ResolveLocalizer(w, r, nil)
		return loc
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolver.ResolveRequestLanguage)
	return loc
}
