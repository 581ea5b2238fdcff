package changelog

import "testing"

func TestParse(t *testing.T) {
	tests := map[string]struct {
		subject string
		want    Commit
		ok      bool
	}{
		"type with scope": {
			subject: "fix(auth): token bug",
			want:    Commit{Type: TypeFix, Scope: "auth", Description: "token bug"},
			ok:      true,
		},
		"type without scope": {
			subject: "feat: add login",
			want:    Commit{Type: TypeFeat, Scope: "", Description: "add login"},
			ok:      true,
		},
		"type is case-folded": {
			subject: "FEAT: add login",
			want:    Commit{Type: TypeFeat, Scope: "", Description: "add login"},
			ok:      true,
		},
		"scope keeps inner punctuation": {
			subject: "refactor(cmd/relog): extract helpers",
			want:    Commit{Type: TypeRefactor, Scope: "cmd/relog", Description: "extract helpers"},
			ok:      true,
		},
		"unknown type still parses": {
			subject: "wip: half-done thing",
			want:    Commit{Type: "wip", Scope: "", Description: "half-done thing"},
			ok:      true,
		},
		"description keeps trailing colon text": {
			subject: "docs: update README: usage section",
			want:    Commit{Type: TypeDocs, Scope: "", Description: "update README: usage section"},
			ok:      true,
		},
		"no colon": {
			subject: "oops no colon here",
			ok:      false,
		},
		"missing space after colon": {
			subject: "fix:token bug",
			ok:      false,
		},
		"empty description": {
			subject: "fix: ",
			ok:      false,
		},
		"empty scope": {
			subject: "fix(): token bug",
			ok:      false,
		},
		"empty line": {
			subject: "",
			ok:      false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(tt.subject)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.subject, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.subject, got, tt.want)
			}
		})
	}
}
