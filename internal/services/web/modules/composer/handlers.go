package composer

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/gametrade/internal/marketplace"
	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
	"go.uber.org/zap"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

const imagesField = "images"

type handlers struct {
	modulehandler.Base
	service        service
	logger         *zap.Logger
	maxUploadBytes int64
}

func newHandlers(s service, base modulehandler.Base, logger *zap.Logger, maxUploadBytes int64) handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return handlers{Base: base, service: s, logger: logger, maxUploadBytes: maxUploadBytes}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := h.service.loadDraft(r.URL.Query().Get(routepath.PageParam))
	h.renderPage(w, r, http.StatusOK, page, nil)
}

func (h handlers) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	uploads, err := readUploads(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.service.addImages(r.PostFormValue(routepath.PageParam), readFields(r), uploads)
	h.finish(w, r, page)
}

func (h handlers) handleRemoveImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(strings.TrimSpace(r.PathValue("index")))
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_image_index", "image index must be a number"))
		return
	}
	if err := h.parseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.service.removeImage(r.PostFormValue(routepath.PageParam), readFields(r), index)
	h.finish(w, r, page)
}

func (h handlers) handleImage(w http.ResponseWriter, r *http.Request) {
	blob, ok := h.service.image(r.URL.Query().Get(routepath.PageParam), r.PathValue("blobID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	w.Header().Set("Cache-Control", "private, no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(blob.Data)
	}
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	page, missing := h.service.submit(r.PostFormValue(routepath.PageParam), readFields(r))
	if len(missing) > 0 {
		h.renderPage(w, r, http.StatusBadRequest, page, missing)
		return
	}
	h.logger.Info("listing draft submitted",
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.String("page_id", page.ID),
		zap.String("title", strings.TrimSpace(page.Draft.Title)),
		zap.String("category", string(page.Draft.Category)),
		zap.Int("description_length", len([]rune(strings.TrimSpace(page.Draft.Description)))),
		zap.Int("images", len(page.Draft.Images)),
	)
	httpx.WriteRedirect(w, r, routepath.Profile)
}

// finish answers a photo action: HTMX gets the refreshed form, everything
// else is redirected back to the same page instance.
func (h handlers) finish(w http.ResponseWriter, r *http.Request, page draftPage) {
	if httpx.IsHTMXRequest(r) {
		h.renderPage(w, r, http.StatusOK, page, nil)
		return
	}
	httpx.WriteRedirect(w, r, routepath.WithPage(routepath.Create, page.ID))
}

func (h handlers) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.Wrap(apperrors.KindInvalidInput, "web.error.upload_too_large", "composer upload exceeds the size limit", err)
	}
	return apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_form", "failed to parse composer form", err)
}

func readFields(r *http.Request) draftFields {
	category, _ := marketplace.ParseCategory(r.PostFormValue("category"))
	return draftFields{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Category:    category,
	}
}

// readUploads loads the posted photos. Files whose sniffed type is not an
// image are skipped.
func readUploads(r *http.Request) ([]upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File[imagesField]
	out := make([]upload, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_form", "failed to open uploaded image", err)
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_form", "failed to read uploaded image", err)
		}
		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			continue
		}
		out = append(out, upload{ContentType: contentType, Data: data})
	}
	return out, nil
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, page draftPage, missing []string) {
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.ComposerPageView{
		PageID:      page.ID,
		Title:       page.Draft.Title,
		Category:    string(page.Draft.Category),
		Description: page.Draft.Description,
		Categories:  categoryOptions(page.Draft.Category),
		Images:      make([]webtemplates.ComposerImageView, 0, len(page.Draft.Images)),
		MaxImages:   marketplace.MaxImages,
		CanUpload:   page.Draft.Remaining() > 0,
	}
	for idx, ref := range page.Draft.Images {
		view.Images = append(view.Images, webtemplates.ComposerImageView{
			URL:       routepath.CreateImage(blobID(ref), page.ID),
			RemoveURL: routepath.CreateImageRemove(idx),
		})
	}
	for _, field := range missing {
		switch field {
		case "title":
			view.MissingTitle = true
		case "description":
			view.MissingDesc = true
		}
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.create.title"), status, webtemplates.ComposerFragment(view, loc))
}

func categoryOptions(selected marketplace.Category) []webtemplates.CategoryOption {
	options := []webtemplates.CategoryOption{{
		Value:    "",
		LabelKey: "web.create.field_category_placeholder",
		Selected: selected == "",
	}}
	for _, value := range marketplace.Categories() {
		options = append(options, webtemplates.CategoryOption{
			Value:    string(value),
			LabelKey: webtemplates.CategoryLabelKey(string(value)),
			Selected: value == selected,
		})
	}
	return options
}
