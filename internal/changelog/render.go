package changelog

import (
	"fmt"
	"io"
	"strings"
)

// Placeholder outputs for runs with nothing to render. They are the
// complete stdout contract for those runs, so callers consuming the
// output (e.g. a release-note field) always receive well-defined text.
const (
	NoUpdates            = "## No updates"
	NoCategorizedUpdates = "## No categorized updates"
)

// RenderMarkdown writes the grouped commits as Markdown. Buckets appear in
// ascending type order regardless of commit order in the log. Each bucket
// is a level-3 heading with the type's display title, one bullet per
// commit, and a trailing blank line.
//
// The function is idempotent - given the same input, it produces identical output.
func RenderMarkdown(g Grouped, w io.Writer) error {
	for _, t := range g.Types() {
		if err := renderBucket(t, g.Entries(t), w); err != nil {
			return fmt.Errorf("rendering %s bucket: %w", t, err)
		}
	}
	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(g Grouped) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(g, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderBucket writes one type heading and its bullet lines.
func renderBucket(t Type, entries []Entry, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "### %s\n\n", t.Title()); err != nil {
		return err
	}

	for _, e := range entries {
		if err := renderEntry(e, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// renderEntry writes a single bullet: "- **scope**: description" when the
// commit carried a scope, "- description" otherwise.
func renderEntry(e Entry, w io.Writer) error {
	if e.Scope != "" {
		_, err := fmt.Fprintf(w, "- **%s**: %s\n", e.Scope, e.Description)
		return err
	}
	_, err := fmt.Fprintf(w, "- %s\n", e.Description)
	return err
}
