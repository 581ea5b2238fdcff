package changelog

import "sort"

// Grouped maps commit types to their entries. Buckets hold entries in the
// order the commits appeared in the input; types absent from the input
// have no bucket. A Grouped value is built once by Group and not mutated
// afterwards.
type Grouped struct {
	buckets map[Type][]Entry
}

// Group buckets classified commits by type.
func Group(commits []Commit) Grouped {
	buckets := make(map[Type][]Entry)

	for _, c := range commits {
		buckets[c.Type] = append(buckets[c.Type], Entry{
			Scope:       c.Scope,
			Description: c.Description,
		})
	}

	return Grouped{buckets: buckets}
}

// Types returns the types that have a bucket, in ascending rendering order.
func (g Grouped) Types() []Type {
	types := make([]Type, 0, len(g.buckets))
	for t := range g.buckets {
		types = append(types, t)
	}
	sortTypes(types)
	return types
}

// Entries returns the bucket for t, preserving commit order. Nil when t
// has no bucket.
func (g Grouped) Entries(t Type) []Entry {
	return g.buckets[t]
}

// IsEmpty reports whether no commit produced a bucket.
func (g Grouped) IsEmpty() bool {
	return len(g.buckets) == 0
}

// sortTypes orders types ascending by their rendering order.
func sortTypes(types []Type) {
	sort.Slice(types, func(i, j int) bool {
		return types[i].Order() < types[j].Order()
	})
}
