package diet

import (
	"fmt"
	"iter"
)

// Tag is a canonical, reusable restriction with a classification label
// (e.g. "ethical", "allergen", "medical"). Tags are owned by a TagRegistry.
type Tag struct {
	name        string
	restriction Restriction
	category    string
}

// Name returns the canonical tag name (uppercase, hyphens preserved).
func (t *Tag) Name() string { return t.name }

// Restriction returns the restriction the tag stands for.
func (t *Tag) Restriction() Restriction { return t.restriction }

// Category returns the tag's free-text classification label.
func (t *Tag) Category() string { return t.category }

func (t *Tag) String() string {
	return fmt.Sprintf("Tag(%s, category=%s)", t.name, t.category)
}

// TagRegistry maps canonical tag names to tags, preserving registration
// order for iteration. Tag restrictions are not validated against any
// category graph at registration: they may name categories that are only
// defined later, and are evaluated at comparison time. Not safe for
// concurrent mutation.
type TagRegistry struct {
	tags  map[string]*Tag
	order []string
}

// NewTagRegistry creates an empty tag registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{tags: make(map[string]*Tag)}
}

// Register inserts or overwrites the tag keyed by the canonical form of
// name. Re-registering an existing name replaces its restriction and
// category in place; the tag keeps its original position in registration
// order.
func (tr *TagRegistry) Register(name string, restriction Restriction, category string) *Tag {
	canonical := CanonicalName(name)
	if existing, ok := tr.tags[canonical]; ok {
		existing.restriction = restriction
		existing.category = category
		return existing
	}
	tag := &Tag{name: canonical, restriction: restriction, category: category}
	tr.tags[canonical] = tag
	tr.order = append(tr.order, canonical)
	return tag
}

// Get resolves a tag by name, returning *UnknownTagError when absent.
func (tr *TagRegistry) Get(name string) (*Tag, error) {
	tag, ok := tr.tags[CanonicalName(name)]
	if !ok {
		return nil, &UnknownTagError{Name: CanonicalName(name)}
	}
	return tag, nil
}

// Len reports the number of registered tags.
func (tr *TagRegistry) Len() int { return len(tr.order) }

// All returns an iterator over tag names in registration order. The
// iterator is restartable and reflects registry state at each range.
func (tr *TagRegistry) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range tr.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Names returns every tag name in registration order.
func (tr *TagRegistry) Names() []string {
	out := make([]string, len(tr.order))
	copy(out, tr.order)
	return out
}

// ByCategory returns the names of tags whose classification label exactly
// equals the given string, in registration order.
func (tr *TagRegistry) ByCategory(category string) []string {
	var out []string
	for _, name := range tr.order {
		if tr.tags[name].category == category {
			out = append(out, name)
		}
	}
	return out
}

// GenerateTags returns every registered tag whose excluded set is a
// non-empty subset of the given restriction's excluded set (every tag the
// restriction implies), in registration order. A restriction
// matching no tag yields nil.
func (tr *TagRegistry) GenerateTags(restriction Restriction) []string {
	var out []string
	for _, name := range tr.order {
		tag := tr.tags[name]
		if tag.restriction.Empty() {
			continue
		}
		if tag.restriction.SubsetOf(restriction) {
			out = append(out, name)
		}
	}
	return out
}

// ImpliedTags generalizes GenerateTags through the category graph: a tag
// applies when every category it excludes is forbidden by the restriction,
// directly or via an ancestor. Under the default taxonomy a restriction on
// ANIMAL_PRODUCTS therefore implies DAIRY-FREE, EGG-FREE, and so on.
// Excluded categories the graph does not define fall back to direct
// membership.
func (tr *TagRegistry) ImpliedTags(graph *CategoryGraph, restriction Restriction) []string {
	var out []string
	for _, name := range tr.order {
		tag := tr.tags[name]
		if tag.restriction.Empty() {
			continue
		}
		if tagImplied(graph, tag, restriction) {
			out = append(out, name)
		}
	}
	return out
}

func tagImplied(graph *CategoryGraph, tag *Tag, restriction Restriction) bool {
	for _, excluded := range tag.restriction.Excluded() {
		category, err := graph.Get(excluded)
		if err != nil {
			if !restriction.Excludes(excluded) {
				return false
			}
			continue
		}
		if !restriction.Forbids(graph, category) {
			return false
		}
	}
	return true
}
