package changelog

import "strings"

// mergePrefix marks auto-generated merge commit subjects. The match is
// space- and case-sensitive: "Merge pull request #1", "Merge branch 'x'".
const mergePrefix = "Merge "

// Classify parses raw subject lines and keeps only commits whose type is
// in the closed type set. Merge commits are dropped before parsing, and
// subjects that fail the grammar or carry an unrecognized type are
// discarded. Input order is preserved.
func Classify(subjects []string) []Commit {
	var commits []Commit

	for _, subject := range subjects {
		if strings.HasPrefix(subject, mergePrefix) {
			continue
		}

		commit, ok := Parse(subject)
		if !ok || !commit.Type.Known() {
			continue
		}

		commits = append(commits, commit)
	}

	return commits
}
