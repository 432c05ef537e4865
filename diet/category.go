package diet

import (
	"sort"
	"strings"
)

// FoodCategory is a node in the category graph. Categories form a directed
// acyclic graph: each category carries the names of its direct parents
// (e.g. CHEESE → DAIRY → ANIMAL_PRODUCTS), and a category may have several
// parents. Values are immutable once defined.
type FoodCategory struct {
	name    string
	parents []string
}

// Name returns the canonical (uppercase) category name.
func (c *FoodCategory) Name() string { return c.name }

// Parents returns the names of the direct parent categories.
func (c *FoodCategory) Parents() []string {
	out := make([]string, len(c.parents))
	copy(out, c.parents)
	return out
}

// CategoryGraph is a registry of food categories keyed by canonical name.
// The zero value is not usable; construct with NewCategoryGraph. The graph
// is not safe for concurrent mutation; hosts that share one across
// goroutines must serialize Define/Reset against queries.
type CategoryGraph struct {
	categories map[string]*FoodCategory
	order      []string
}

// NewCategoryGraph creates an empty category graph.
func NewCategoryGraph() *CategoryGraph {
	return &CategoryGraph{categories: make(map[string]*FoodCategory)}
}

// CanonicalName normalizes a category name to its canonical uppercase form.
func CanonicalName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Define registers a new category under the given name. Parent categories
// must already be defined: forward references return
// *UndefinedCategoryError, and redefining an existing name returns
// *DuplicateCategoryError. Parents-before-children ordering is what keeps
// the graph acyclic.
func (g *CategoryGraph) Define(name string, parents ...string) (*FoodCategory, error) {
	canonical := CanonicalName(name)
	if _, exists := g.categories[canonical]; exists {
		return nil, &DuplicateCategoryError{Name: canonical}
	}

	resolved := make([]string, 0, len(parents))
	seen := make(map[string]bool, len(parents))
	for _, parent := range parents {
		parentName := CanonicalName(parent)
		if _, ok := g.categories[parentName]; !ok {
			return nil, &UndefinedCategoryError{Name: parentName}
		}
		if seen[parentName] {
			continue
		}
		seen[parentName] = true
		resolved = append(resolved, parentName)
	}

	category := &FoodCategory{name: canonical, parents: resolved}
	g.categories[canonical] = category
	g.order = append(g.order, canonical)
	return category, nil
}

// Get resolves a category by name, returning *UndefinedCategoryError when
// the name has not been defined.
func (g *CategoryGraph) Get(name string) (*FoodCategory, error) {
	category, ok := g.categories[CanonicalName(name)]
	if !ok {
		return nil, &UndefinedCategoryError{Name: CanonicalName(name)}
	}
	return category, nil
}

// All returns every defined category in definition order.
func (g *CategoryGraph) All() []*FoodCategory {
	out := make([]*FoodCategory, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.categories[name])
	}
	return out
}

// Len reports the number of defined categories.
func (g *CategoryGraph) Len() int { return len(g.order) }

// Reset clears every defined category. Meant for rebuilding the taxonomy
// from scratch; existing *FoodCategory values become detached.
func (g *CategoryGraph) Reset() {
	g.categories = make(map[string]*FoodCategory)
	g.order = nil
}

// Ancestors returns all categories reachable by following parent edges from
// the named category, excluding the category itself. Diamond-shaped
// inheritance yields each ancestor exactly once. The result is sorted for
// deterministic output.
func (g *CategoryGraph) Ancestors(name string) ([]string, error) {
	category, err := g.Get(name)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	g.collectAncestors(category, visited)

	out := make([]string, 0, len(visited))
	for ancestor := range visited {
		out = append(out, ancestor)
	}
	sort.Strings(out)
	return out, nil
}

// collectAncestors walks parent edges depth-first. The visited set both
// accumulates the result and guards against revisiting shared ancestors.
func (g *CategoryGraph) collectAncestors(category *FoodCategory, visited map[string]bool) {
	for _, parentName := range category.parents {
		if visited[parentName] {
			continue
		}
		visited[parentName] = true
		// Parents are validated at Define time, so the lookup cannot miss.
		if parent, ok := g.categories[parentName]; ok {
			g.collectAncestors(parent, visited)
		}
	}
}

// closure returns the category name plus its full ancestor set.
func (g *CategoryGraph) closure(category *FoodCategory) map[string]bool {
	visited := make(map[string]bool)
	g.collectAncestors(category, visited)
	visited[category.name] = true
	return visited
}

// IsA reports whether the named category equals or inherits from ancestor,
// following the reflexive-transitive closure of parent edges. The named
// category must be defined; the candidate ancestor may be any string.
func (g *CategoryGraph) IsA(name, ancestor string) (bool, error) {
	category, err := g.Get(name)
	if err != nil {
		return false, err
	}
	return g.closure(category)[CanonicalName(ancestor)], nil
}

// Categorize finds the defined category whose name appears inside the given
// free-text ingredient name (e.g. "chicken breast" → CHICKEN). Categories
// are tried in definition order; *UndefinedCategoryError is returned when
// nothing applies.
func (g *CategoryGraph) Categorize(ingredientName string) (*FoodCategory, error) {
	needle := CanonicalName(ingredientName)
	for _, name := range g.order {
		if strings.Contains(needle, name) {
			return g.categories[name], nil
		}
	}
	return nil, &UndefinedCategoryError{Name: needle}
}
