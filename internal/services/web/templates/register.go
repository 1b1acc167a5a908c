package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// RegisterPageView is the registration form model. Errors maps a form field
// name to the localization key of its violation.
type RegisterPageView struct {
	Username string
	Email    string
	Errors   map[string]string
}

// RegisterFragment renders the registration form.
func RegisterFragment(view RegisterPageView, loc Localizer) templ.Component {
	return el("section", attrs{class("register"), at("id", "register")},
		el("header", attrs{class("page-header")},
			el("h1", nil, text(T(loc, "web.register.title"))),
			el("p", attrs{class("muted")}, text(T(loc, "web.register.subtitle"))),
		),
		el("form", attrs{at("method", "post"), action(routepath.Register), class("form"), flagAttr("novalidate", true)},
			registerField(view, loc, "username", "text", view.Username, "web.register.field_username", "username"),
			registerField(view, loc, "email", "email", view.Email, "web.register.field_email", "email"),
			registerField(view, loc, "password", "password", "", "web.register.field_password", "new-password"),
			registerField(view, loc, "confirmPassword", "password", "", "web.register.field_confirm_password", "new-password"),
			el("button", attrs{at("type", "submit"), class("button primary")}, text(T(loc, "web.register.submit"))),
		),
		el("p", attrs{class("muted")},
			el("a", attrs{href(routepath.Rules)}, text(T(loc, "web.register.rules_hint"))),
		),
	)
}

func registerField(view RegisterPageView, loc Localizer, name string, kind string, value string, labelKey string, autocomplete string) templ.Component {
	id := "register-" + name
	errKey := view.Errors[name]
	invalid := attr{}
	describedBy := attr{}
	if errKey != "" {
		invalid = at("aria-invalid", "true")
		describedBy = at("aria-describedby", id+"-error")
	}
	valueAttr := attr{}
	if value != "" {
		valueAttr = at("value", value)
	}
	return formField(id, T(loc, labelKey), errKey != "", group(
		el("input", attrs{
			at("id", id),
			at("name", name),
			at("type", kind),
			at("placeholder", T(loc, labelKey+"_placeholder")),
			at("autocomplete", autocomplete),
			valueAttr,
			invalid,
			describedBy,
		}),
		when(errKey != "", el("p", attrs{class("field-error"), at("id", id+"-error")}, text(T(loc, errKey)))),
	))
}
