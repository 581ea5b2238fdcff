// Package gitrepo issues the read-only git queries relog needs: listing
// tags in descending version order and listing commit subjects for a
// revision range. It uses the go-git library, so no git CLI is required
// in the CI image. Queries never mutate repository state, and failures
// degrade to absent/empty results rather than aborting a run.
package gitrepo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git queries. Pass nil to
// disable debug logging. The logger function should format and output the
// message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the git repository at path, traversing up the directory tree
// to find the repository root. An empty path means the current directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		path = "."
	}

	logDebug("[gitrepo] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repository{repo: repo}, nil
}

// Subjects returns the commit subject lines in since..HEAD, exclusive of
// since, newest first. An empty since means all commits reachable from
// HEAD. Blank subjects are dropped. Any query failure yields an empty
// slice: an empty or broken repository degrades to "no updates" rather
// than aborting the run.
func (r *Repository) Subjects(since string) []string {
	head, err := r.repo.Head()
	if err != nil {
		logDebug("[gitrepo] Subjects: no HEAD: %v", err)
		return nil
	}

	var exclude map[plumbing.Hash]bool
	if since != "" {
		exclude, err = r.reachableFrom(since)
		if err != nil {
			logDebug("[gitrepo] Subjects: resolving %s: %v", since, err)
			return nil
		}
	}

	iter, err := r.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		logDebug("[gitrepo] Subjects: log from HEAD: %v", err)
		return nil
	}

	var subjects []string
	err = iter.ForEach(func(c *object.Commit) error {
		if exclude[c.Hash] {
			return nil
		}
		if subject := firstLine(c.Message); subject != "" {
			subjects = append(subjects, subject)
		}
		return nil
	})
	if err != nil {
		logDebug("[gitrepo] Subjects: iterating commits: %v", err)
		return nil
	}

	logDebug("[gitrepo] Subjects: %d subjects since %q", len(subjects), since)
	return subjects
}

// reachableFrom returns the set of commit hashes reachable from ref. The
// set excludes an already-released tag's history from the rendered range.
func (r *Repository) reachableFrom(ref string) (map[plumbing.Hash]bool, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %s: %w", ref, err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: *hash})
	if err != nil {
		return nil, fmt.Errorf("walking history of %s: %w", ref, err)
	}

	seen := make(map[plumbing.Hash]bool)
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating history of %s: %w", ref, err)
	}

	return seen, nil
}

// firstLine returns the trimmed first line of a commit message.
func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimSpace(message)
}
