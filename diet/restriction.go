package diet

import (
	"fmt"
	"sort"
	"strings"
)

// Restriction is an immutable set of excluded category names. Exclusions
// may name any node in the graph, not just leaves; an excluded category
// forbids all of its descendants. A Restriction holds no reference to a
// CategoryGraph: it is plain data, evaluated lazily against whatever graph
// is passed to Forbids at query time, so exclusions may name categories the
// graph does not (yet) define.
type Restriction struct {
	excluded map[string]bool
}

// NewRestriction builds a restriction over the given excluded category
// names. Names are normalized to canonical uppercase form.
func NewRestriction(excluded ...string) Restriction {
	set := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		set[CanonicalName(name)] = true
	}
	return Restriction{excluded: set}
}

// Excluded returns the excluded category names, sorted.
func (r Restriction) Excluded() []string {
	out := make([]string, 0, len(r.excluded))
	for name := range r.excluded {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Excludes reports whether the restriction directly names the category.
func (r Restriction) Excludes(name string) bool {
	return r.excluded[CanonicalName(name)]
}

// Empty reports whether the restriction excludes nothing.
func (r Restriction) Empty() bool { return len(r.excluded) == 0 }

// Len reports the number of excluded categories.
func (r Restriction) Len() int { return len(r.excluded) }

// Union merges two restrictions into a new one excluding everything either
// excludes. Used when a parse matches several keywords, or when combining a
// person's sources of restriction.
func (r Restriction) Union(other Restriction) Restriction {
	merged := make(map[string]bool, len(r.excluded)+len(other.excluded))
	for name := range r.excluded {
		merged[name] = true
	}
	for name := range other.excluded {
		merged[name] = true
	}
	return Restriction{excluded: merged}
}

// SubsetOf reports whether every category this restriction excludes is also
// excluded by other.
func (r Restriction) SubsetOf(other Restriction) bool {
	for name := range r.excluded {
		if !other.excluded[name] {
			return false
		}
	}
	return true
}

// Equal reports whether two restrictions exclude exactly the same set.
func (r Restriction) Equal(other Restriction) bool {
	return len(r.excluded) == len(other.excluded) && r.SubsetOf(other)
}

// Forbids reports whether the category (or any of its ancestors in the
// graph) is excluded by this restriction. This is the single membership
// predicate the rest of the system builds on: restriction {"DAIRY"}
// forbids CHEESE when CHEESE → DAIRY.
func (r Restriction) Forbids(graph *CategoryGraph, category *FoodCategory) bool {
	if len(r.excluded) == 0 || category == nil {
		return false
	}
	for name := range graph.closure(category) {
		if r.excluded[name] {
			return true
		}
	}
	return false
}

// CompatibleWith reports whether every given category is allowed.
func (r Restriction) CompatibleWith(graph *CategoryGraph, categories []*FoodCategory) bool {
	for _, category := range categories {
		if r.Forbids(graph, category) {
			return false
		}
	}
	return true
}

func (r Restriction) String() string {
	if r.Empty() {
		return "Restriction(none)"
	}
	return fmt.Sprintf("Restriction(excludes %s)", strings.Join(r.Excluded(), ", "))
}
