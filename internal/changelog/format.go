package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// typeStyles maps commit types to their terminal coloring. Types without
// an entry render uncolored.
var typeStyles = map[Type]*color.Color{
	TypeFeat:     color.New(color.FgGreen),
	TypeFix:      color.New(color.FgYellow),
	TypePerf:     color.New(color.FgCyan),
	TypeRefactor: color.New(color.FgBlue),
	TypeDocs:     color.New(color.FgMagenta),
	TypeStyle:    color.New(color.FgMagenta),
	TypeTest:     color.New(color.FgGreen),
	TypeBuild:    color.New(color.FgBlue),
	TypeCI:       color.New(color.FgCyan),
	TypeChore:    color.New(color.FgWhite),
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes grouped commits with terminal styling for local
// preview. Bucket order matches RenderMarkdown; only the decoration
// differs. Markdown output remains the contract consumed by CI callers.
func FormatTerminal(g Grouped, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for _, t := range g.Types() {
		if err := formatBucket(t, g.Entries(t), w, opts, width); err != nil {
			return fmt.Errorf("formatting %s bucket: %w", t, err)
		}
	}

	return nil
}

// formatBucket writes one styled heading and its entries.
func formatBucket(t Type, entries []Entry, w io.Writer, opts FormatOptions, width int) error {
	if err := writeBucketHeader(t, w, opts); err != nil {
		return err
	}

	for _, e := range entries {
		if err := writeBucketEntry(t, e, w, opts, width); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

// writeBucketHeader writes the type heading line.
func writeBucketHeader(t Type, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s\n", t.Title())
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "%s\n", bold(t.Title()))
	return err
}

// writeBucketEntry writes a single entry with optional wrapping.
func writeBucketEntry(t Type, e Entry, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  - "
	text := e.Description
	if e.Scope != "" {
		text = e.Scope + ": " + e.Description
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, text)
		return err
	}

	wrapped := wrapText(text, width-len(prefix), "    ")

	style, ok := typeStyles[t]
	if !ok {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, wrapped)
		return err
	}

	colored := style.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		// Find the last space within maxWidth
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
