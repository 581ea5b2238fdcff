package changelog

// Type classifies a commit by its conventional-commit prefix.
// The set of recognized types is closed; anything else is discarded
// during classification.
type Type string

// The recognized commit types.
const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypePerf     Type = "perf"
	TypeRefactor Type = "refactor"
	TypeDocs     Type = "docs"
	TypeStyle    Type = "style"
	TypeTest     Type = "test"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeChore    Type = "chore"
)

// Commit is a single classified commit subject. Scope is the empty string
// when the subject carried no parenthesized scope.
type Commit struct {
	Type        Type
	Scope       string
	Description string
}

// Entry is the (scope, description) pair kept inside a bucket once the
// type has become the bucket key.
type Entry struct {
	Scope       string
	Description string
}

// typeInfo holds the display heading and rendering order for a type.
type typeInfo struct {
	Title string
	Order int
}

// typeTable is the process-wide type registry. It is built once and never
// mutated; buckets render in ascending Order.
var typeTable = map[Type]typeInfo{
	TypeFeat:     {Title: "✨ Features", Order: 1},
	TypeFix:      {Title: "🐛 Bug Fixes", Order: 2},
	TypePerf:     {Title: "⚡ Performance", Order: 3},
	TypeRefactor: {Title: "♻️ Refactoring", Order: 4},
	TypeDocs:     {Title: "📝 Documentation", Order: 5},
	TypeStyle:    {Title: "💄 Styles", Order: 6},
	TypeTest:     {Title: "✅ Tests", Order: 7},
	TypeBuild:    {Title: "📦️ Build System", Order: 8},
	TypeCI:       {Title: "👷 CI", Order: 9},
	TypeChore:    {Title: "🔧 Chores", Order: 10},
}

// Known reports whether t is a member of the closed type set.
func (t Type) Known() bool {
	_, ok := typeTable[t]
	return ok
}

// Title returns the display heading for the type. Unknown types fall back
// to their raw key so callers never render an empty heading.
func (t Type) Title() string {
	if info, ok := typeTable[t]; ok {
		return info.Title
	}
	return string(t)
}

// Order returns the rendering order of the type (lower renders first).
// Unknown types sort after every known one.
func (t Type) Order() int {
	if info, ok := typeTable[t]; ok {
		return info.Order
	}
	return len(typeTable) + 1
}

// Types returns all known types in ascending rendering order.
func Types() []Type {
	types := make([]Type, 0, len(typeTable))
	for t := range typeTable {
		types = append(types, t)
	}
	sortTypes(types)
	return types
}
