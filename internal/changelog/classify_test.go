package changelog

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		subjects []string
		want     []Commit
	}{
		"merge commits dropped regardless of grammar": {
			subjects: []string{
				"Merge pull request #1",
				"Merge branch 'release/1.2' into main",
				"feat: add login",
			},
			want: []Commit{
				{Type: TypeFeat, Description: "add login"},
			},
		},
		"merge prefix is case-sensitive": {
			subjects: []string{
				"merge: consolidate helpers",
			},
			// Parses, but "merge" is not in the closed type set.
			want: nil,
		},
		"unknown types dropped": {
			subjects: []string{
				"wip: not done",
				"fix(auth): token bug",
				"release: cut 1.2.0",
			},
			want: []Commit{
				{Type: TypeFix, Scope: "auth", Description: "token bug"},
			},
		},
		"unparseable lines dropped": {
			subjects: []string{
				"oops no colon here",
				"update stuff",
			},
			want: nil,
		},
		"input order preserved": {
			subjects: []string{
				"fix: b",
				"feat: a",
				"fix: c",
			},
			want: []Commit{
				{Type: TypeFix, Description: "b"},
				{Type: TypeFeat, Description: "a"},
				{Type: TypeFix, Description: "c"},
			},
		},
		"empty input": {
			subjects: nil,
			want:     nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Classify(tt.subjects)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%v) = %+v, want %+v", tt.subjects, got, tt.want)
			}
		})
	}
}

func TestClassifyEveryKnownType(t *testing.T) {
	subjects := []string{
		"feat: a", "fix: b", "perf: c", "refactor: d", "docs: e",
		"style: f", "test: g", "build: h", "ci: i", "chore: j",
	}

	got := Classify(subjects)
	if len(got) != len(subjects) {
		t.Fatalf("Classify kept %d of %d known-type subjects", len(got), len(subjects))
	}

	for i, c := range got {
		if !c.Type.Known() {
			t.Errorf("commit %d has unknown type %q", i, c.Type)
		}
	}
}
