package marketplace

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func refs(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return out
}

func TestAddImagesKeepsFirstTen(t *testing.T) {
	t.Parallel()

	var draft ListingDraft
	dropped := draft.AddImages(refs("a", 12)...)

	if len(draft.Images) != MaxImages {
		t.Fatalf("len(Images) = %d, want %d", len(draft.Images), MaxImages)
	}
	if diff := cmp.Diff(refs("a", 12)[:10], draft.Images); diff != "" {
		t.Fatalf("Images mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a-10", "a-11"}, dropped); diff != "" {
		t.Fatalf("dropped mismatch (-want +got):\n%s", diff)
	}
}

func TestAddImagesNeverExceedsLimitAcrossCalls(t *testing.T) {
	t.Parallel()

	var draft ListingDraft
	for _, n := range []int{3, 4, 0, 5, 1, 20} {
		draft.AddImages(refs(fmt.Sprint(n), n)...)
		if len(draft.Images) > MaxImages {
			t.Fatalf("len(Images) = %d after adding %d, want <= %d", len(draft.Images), n, MaxImages)
		}
	}
	if draft.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", draft.Remaining())
	}
}

func TestAddImagesUnderLimitDropsNothing(t *testing.T) {
	t.Parallel()

	draft := ListingDraft{Images: []string{"x"}}
	if dropped := draft.AddImages("y", "z"); dropped != nil {
		t.Fatalf("dropped = %v, want nil", dropped)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, draft.Images); diff != "" {
		t.Fatalf("Images mismatch (-want +got):\n%s", diff)
	}
	if draft.Remaining() != 7 {
		t.Fatalf("Remaining() = %d, want 7", draft.Remaining())
	}
}

func TestRemoveImage(t *testing.T) {
	t.Parallel()

	draft := ListingDraft{Images: []string{"a", "b", "c"}}
	ref, ok := draft.RemoveImage(1)
	if !ok || ref != "b" {
		t.Fatalf("RemoveImage(1) = (%q, %v), want (%q, true)", ref, ok, "b")
	}
	if diff := cmp.Diff([]string{"a", "c"}, draft.Images); diff != "" {
		t.Fatalf("Images mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveImageOutOfRangeIsNoop(t *testing.T) {
	t.Parallel()

	for _, index := range []int{-1, 2, 10} {
		draft := ListingDraft{Images: []string{"a", "b"}}
		if _, ok := draft.RemoveImage(index); ok {
			t.Fatalf("RemoveImage(%d) ok = true, want false", index)
		}
		if diff := cmp.Diff([]string{"a", "b"}, draft.Images); diff != "" {
			t.Fatalf("RemoveImage(%d) changed images (-want +got):\n%s", index, diff)
		}
	}
}

func TestRemoveImageDoesNotCorruptEarlierSnapshot(t *testing.T) {
	t.Parallel()

	draft := ListingDraft{Images: []string{"a", "b", "c"}}
	snapshot := draft.Images
	draft.RemoveImage(0)
	if diff := cmp.Diff([]string{"a", "b", "c"}, snapshot); diff != "" {
		t.Fatalf("snapshot changed (-want +got):\n%s", diff)
	}
}

func TestMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft ListingDraft
		want  []string
	}{
		{name: "complete", draft: ListingDraft{Title: "Bow", Description: "Long range"}, want: nil},
		{name: "blank title", draft: ListingDraft{Title: "  ", Description: "Long range"}, want: []string{"title"}},
		{name: "both missing", draft: ListingDraft{}, want: []string{"title", "description"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, tc.draft.MissingFields()); diff != "" {
			t.Fatalf("%s: MissingFields() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}
