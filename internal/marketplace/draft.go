package marketplace

import "strings"

// ListingDraft is the listing being composed on the create page.
type ListingDraft struct {
	Title       string
	Description string
	Category    Category
	Images      []string
}

// AddImages appends refs and keeps only the first MaxImages references of the
// combined sequence. It returns the refs that were dropped so callers can
// release whatever backs them.
func (d *ListingDraft) AddImages(refs ...string) (dropped []string) {
	combined := append(d.Images, refs...)
	if len(combined) <= MaxImages {
		d.Images = combined
		return nil
	}
	dropped = append([]string(nil), combined[MaxImages:]...)
	d.Images = combined[:MaxImages:MaxImages]
	return dropped
}

// RemoveImage removes the reference at index and returns it. An index outside
// the sequence leaves the draft unchanged.
func (d *ListingDraft) RemoveImage(index int) (string, bool) {
	if index < 0 || index >= len(d.Images) {
		return "", false
	}
	ref := d.Images[index]
	d.Images = append(d.Images[:index:index], d.Images[index+1:]...)
	return ref, true
}

// Remaining returns how many more images the draft accepts.
func (d ListingDraft) Remaining() int {
	return max(MaxImages-len(d.Images), 0)
}

// MissingFields returns the names of required fields left blank.
func (d ListingDraft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	return missing
}
