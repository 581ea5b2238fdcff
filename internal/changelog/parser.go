package changelog

import (
	"regexp"
	"strings"
)

// subjectPattern matches "type(scope): description" and "type: description".
// The scope is any run of non-')' characters; the description is the rest
// of the line and must be non-empty.
var subjectPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?: (.+)$`)

// Parse splits a commit subject against the conventional-commit grammar.
// The type is case-folded to lowercase and the scope is the empty string
// when absent. The boolean result is false when the subject does not match
// the grammar; a failed parse is not an error, the caller simply discards
// the line.
func Parse(subject string) (Commit, bool) {
	m := subjectPattern.FindStringSubmatch(subject)
	if m == nil {
		return Commit{}, false
	}

	return Commit{
		Type:        Type(strings.ToLower(m[1])),
		Scope:       m[2],
		Description: m[3],
	}, true
}
