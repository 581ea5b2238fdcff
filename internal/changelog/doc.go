// Package changelog turns raw commit subject lines into a grouped,
// human-readable changelog. The pipeline is four pure stages: Parse splits
// a subject against the conventional-commit grammar, Classify filters a
// raw log down to recognized commits, Group buckets them by type, and
// RenderMarkdown (or FormatTerminal for local preview) emits the result.
// Every stage is deterministic and side-effect free; the version-control
// queries that feed it live in internal/gitrepo.
package changelog
