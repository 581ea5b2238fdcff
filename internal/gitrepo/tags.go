package gitrepo

import (
	"sort"

	"github.com/go-git/go-git/v5/plumbing"
)

// tagEntry pairs a tag name with its parsed version.
type tagEntry struct {
	name    string
	version Version
}

// LatestTag returns the highest-versioned tag in the repository. Absent
// (ok=false) when no version-shaped tags exist or the query fails, which
// callers treat as "diff from the beginning of history".
func (r *Repository) LatestTag() (string, bool) {
	tags := r.versionTags()
	if len(tags) == 0 {
		return "", false
	}
	return tags[0].name, true
}

// PreviousTag returns the second-highest-versioned tag. It serves runs
// where the newest tag marks the release currently being cut and must be
// excluded from the range. Absent when fewer than two version-shaped tags
// exist.
func (r *Repository) PreviousTag() (string, bool) {
	tags := r.versionTags()
	if len(tags) < 2 {
		return "", false
	}
	return tags[1].name, true
}

// versionTags lists the tags that parse as [v]X.Y.Z, sorted descending by
// version. Tags with other shapes (e.g. "nightly") are skipped.
func (r *Repository) versionTags() []tagEntry {
	iter, err := r.repo.Tags()
	if err != nil {
		logDebug("[gitrepo] listing tags: %v", err)
		return nil
	}

	var tags []tagEntry
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		version, err := ParseVersion(name)
		if err != nil {
			logDebug("[gitrepo] skipping tag %s: %v", name, err)
			return nil
		}
		tags = append(tags, tagEntry{name: name, version: version})
		return nil
	})
	if err != nil {
		logDebug("[gitrepo] iterating tags: %v", err)
		return nil
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].version.Compare(tags[j].version) > 0
	})

	logDebug("[gitrepo] versionTags: found %d version-shaped tags", len(tags))
	return tags
}
