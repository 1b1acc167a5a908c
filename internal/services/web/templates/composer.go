package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// ComposerImageView is one uploaded photo preview.
type ComposerImageView struct {
	URL       string
	RemoveURL string
}

// ComposerPageView is the listing composer page model.
type ComposerPageView struct {
	PageID       string
	Title        string
	Category     string
	Description  string
	Categories   []CategoryOption
	Images       []ComposerImageView
	MaxImages    int
	CanUpload    bool
	MissingTitle bool
	MissingDesc  bool
}

// ComposerFragment renders the listing composer. Every button posts the same
// multipart form so typed fields survive photo uploads and removals.
func ComposerFragment(view ComposerPageView, loc Localizer) templ.Component {
	return el("section", attrs{class("composer"), at("id", "composer")},
		el("header", attrs{class("page-header")},
			el("h1", nil, text(T(loc, "web.create.title"))),
		),
		when(view.MissingTitle || view.MissingDesc, el("p", attrs{class("form-error"), at("role", "alert")}, text(T(loc, "web.create.required")))),
		el("form", attrs{at("method", "post"), action(routepath.Create), at("enctype", "multipart/form-data"), class("form")},
			hidden(routepath.PageParam, view.PageID),
			formField("composer-title", T(loc, "web.create.field_title"), view.MissingTitle,
				el("input", attrs{
					at("id", "composer-title"),
					at("name", "title"),
					at("type", "text"),
					at("value", view.Title),
					at("placeholder", T(loc, "web.create.field_title_placeholder")),
					flagAttr("required", true),
				}),
			),
			formField("composer-category", T(loc, "web.create.field_category"), false,
				categorySelect("category", "composer-category", view.Categories, loc),
			),
			formField("composer-description", T(loc, "web.create.field_description"), view.MissingDesc,
				el("textarea", attrs{
					at("id", "composer-description"),
					at("name", "description"),
					at("rows", "6"),
					at("placeholder", T(loc, "web.create.field_description_placeholder")),
					flagAttr("required", true),
				}, text(view.Description)),
			),
			composerImages(view, loc),
			el("div", attrs{class("form-actions")},
				el("button", attrs{at("type", "submit"), class("button primary")}, text(T(loc, "web.create.submit"))),
				el("a", attrs{href(routepath.Root), class("button")}, text(T(loc, "web.create.cancel"))),
			),
		),
	)
}

func composerImages(view ComposerPageView, loc Localizer) templ.Component {
	previews := make([]templ.Component, 0, len(view.Images))
	for _, image := range view.Images {
		previews = append(previews, el("li", attrs{class("image-preview")},
			el("img", attrs{src(image.URL), at("alt", "")}),
			el("button", attrs{
				at("type", "submit"),
				at("formaction", string(templ.URL(image.RemoveURL))),
				flagAttr("formnovalidate", true),
				class("icon-button"),
				at("title", T(loc, "web.create.remove_image")),
			}, text("×")),
		))
	}

	var upload templ.Component
	if view.CanUpload {
		upload = el("div", attrs{class("upload")},
			el("input", attrs{at("id", "composer-images"), at("type", "file"), at("name", "images"), at("accept", "image/*"), flagAttr("multiple", true)}),
			el("button", attrs{
				at("type", "submit"),
				at("formaction", string(templ.URL(routepath.CreateImages))),
				flagAttr("formnovalidate", true),
				class("button"),
			}, text(T(loc, "web.create.upload"))),
		)
	} else {
		upload = el("p", attrs{class("muted")}, text(T(loc, "web.create.limit_reached")))
	}

	return el("fieldset", attrs{class("images")},
		el("legend", nil, text(T(loc, "web.create.field_images", view.MaxImages))),
		when(len(previews) > 0, el("ul", attrs{class("image-grid")}, previews...)),
		upload,
		el("p", attrs{class("muted image-count")}, text(T(loc, "web.create.images_count", len(view.Images), view.MaxImages))),
	)
}

func formField(id string, label string, invalid bool, control templ.Component) templ.Component {
	cls := "field"
	if invalid {
		cls += " is-invalid"
	}
	return el("div", attrs{class(cls)},
		el("label", attrs{at("for", id)}, text(label)),
		control,
	)
}
