package composer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/gametrade/internal/marketplace"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagestate"
)

const blobRefPrefix = "blob:"

// upload is one accepted photo file.
type upload struct {
	ContentType string
	Data        []byte
}

// draftFields are the typed inputs posted with every composer form action.
type draftFields struct {
	Title       string
	Description string
	Category    marketplace.Category
}

type draftState struct {
	draft marketplace.ListingDraft
	blobs map[string]upload
}

// draftPage is a snapshot of one composer page instance.
type draftPage struct {
	ID    string
	Draft marketplace.ListingDraft
}

type service struct {
	pages *pagestate.Store[draftState]
}

func newService(opts ...pagestate.Option) service {
	return service{pages: pagestate.New[draftState](opts...)}
}

func newDraftState() (draftState, error) {
	return draftState{blobs: map[string]upload{}}, nil
}

func (s service) loadDraft(pageID string) draftPage {
	return s.apply(pageID, nil, nil)
}

// saveFields stores the typed fields without touching the photos.
func (s service) saveFields(pageID string, fields draftFields) draftPage {
	return s.apply(pageID, &fields, nil)
}

// addImages stores uploads as blobs and appends their references. Uploads
// beyond the photo limit are discarded.
func (s service) addImages(pageID string, fields draftFields, uploads []upload) draftPage {
	return s.apply(pageID, &fields, func(state *draftState) {
		refs := make([]string, 0, len(uploads))
		for _, file := range uploads {
			ref := blobRefPrefix + uuid.NewString()
			state.blobs[ref] = file
			refs = append(refs, ref)
		}
		for _, ref := range state.draft.AddImages(refs...) {
			delete(state.blobs, ref)
		}
	})
}

// removeImage drops the photo at index. An index outside the sequence is a
// no-op.
func (s service) removeImage(pageID string, fields draftFields, index int) draftPage {
	return s.apply(pageID, &fields, func(state *draftState) {
		if ref, ok := state.draft.RemoveImage(index); ok {
			delete(state.blobs, ref)
		}
	})
}

// image returns the blob behind blobID while the page instance lives.
func (s service) image(pageID string, blobID string) (upload, bool) {
	var (
		out   upload
		found bool
	)
	s.pages.Update(pageID, func(state *draftState) {
		out, found = state.blobs[blobRefPrefix+blobID]
	})
	return out, found
}

// submit saves fields and reports the blank required fields. A complete draft
// ends its page instance.
func (s service) submit(pageID string, fields draftFields) (draftPage, []string) {
	page := s.saveFields(pageID, fields)
	missing := page.Draft.MissingFields()
	if len(missing) == 0 {
		s.pages.Delete(page.ID)
	}
	return page, missing
}

func (s service) apply(pageID string, fields *draftFields, mutate func(*draftState)) draftPage {
	var page draftPage
	id, _, _ := s.pages.Acquire(pageID, newDraftState, func(state *draftState) {
		if fields != nil {
			state.draft.Title = fields.Title
			state.draft.Description = fields.Description
			state.draft.Category = fields.Category
		}
		if mutate != nil {
			mutate(state)
		}
		page.Draft = state.draft
		page.Draft.Images = append([]string(nil), state.draft.Images...)
	})
	page.ID = id
	return page
}

// blobID returns the route segment of a blob reference.
func blobID(ref string) string {
	return strings.TrimPrefix(ref, blobRefPrefix)
}
