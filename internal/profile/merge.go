package profile

import "github.com/curatescience/curate/cli/internal/api"

// MergeAuthor returns base with every set field of patch applied. Identity
// and activation are never patched.
func MergeAuthor(base api.Author, patch api.AuthorPatch) api.Author {
	out := base
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.PositionTitle != nil {
		out.PositionTitle = *patch.PositionTitle
	}
	if patch.Affiliations != nil {
		aff := *patch.Affiliations
		out.Affiliations = &aff
	}
	if patch.ProfileURLs != nil {
		urls := make([]string, len(*patch.ProfileURLs))
		copy(urls, *patch.ProfileURLs)
		out.ProfileURLs = urls
	}
	return out
}

// ConfirmedPatch returns patch with each set field replaced by the value the
// server stored for it. Fields the patch left unset stay unset.
func ConfirmedPatch(patch api.AuthorPatch, stored api.Author) api.AuthorPatch {
	var out api.AuthorPatch
	if patch.Name != nil {
		out.Name = &stored.Name
	}
	if patch.PositionTitle != nil {
		out.PositionTitle = &stored.PositionTitle
	}
	if patch.Affiliations != nil {
		aff := derefString(stored.Affiliations)
		out.Affiliations = &aff
	}
	if patch.ProfileURLs != nil {
		urls := stored.ProfileURLs
		if urls == nil {
			urls = []string{}
		}
		out.ProfileURLs = &urls
	}
	return out
}

// DiffAuthor builds the patch that turns base into edited. Unchanged fields
// stay nil.
func DiffAuthor(base, edited api.Author) api.AuthorPatch {
	var patch api.AuthorPatch
	if edited.Name != base.Name {
		patch.Name = &edited.Name
	}
	if edited.PositionTitle != base.PositionTitle {
		patch.PositionTitle = &edited.PositionTitle
	}
	if derefString(edited.Affiliations) != derefString(base.Affiliations) {
		aff := derefString(edited.Affiliations)
		patch.Affiliations = &aff
	}
	if !equalStrings(edited.ProfileURLs, base.ProfileURLs) {
		urls := edited.ProfileURLs
		if urls == nil {
			urls = []string{}
		}
		patch.ProfileURLs = &urls
	}
	return patch
}

// IsEmptyPatch reports whether the patch changes nothing.
func IsEmptyPatch(p api.AuthorPatch) bool {
	return p.Name == nil && p.PositionTitle == nil && p.Affiliations == nil && p.ProfileURLs == nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
