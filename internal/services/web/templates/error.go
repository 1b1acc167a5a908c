package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackHomeTextKey       = "web.error.action_back_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the error page body.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	status := normalizeAppErrorStatus(statusCode)
	heading, message := appErrorHeadingServerErrKey, appErrorMessageServerErrKey
	if status == http.StatusNotFound {
		heading, message = appErrorHeadingNotFoundKey, appErrorMessageNotFoundKey
	}
	return el("section", attrs{at("id", "app-error-state"), class("error-state")},
		el("p", attrs{class("error-code")}, text(statusCodeText(statusCode))),
		el("h1", nil, text(T(loc, heading))),
		el("p", nil, text(T(loc, message))),
		el("a", attrs{href(routepath.Root), class("button")}, text(T(loc, appErrorBackHomeTextKey))),
	)
}

func statusCodeText(statusCode int) string {
	if statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError {
		return strconv.Itoa(statusCode)
	}
	return strconv.Itoa(http.StatusInternalServerError)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
