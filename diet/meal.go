package diet

import (
	"fmt"
	"sort"
)

// Ingredient is a named food item with its most-specific category, caloric
// content, and free-text allergen labels.
type Ingredient struct {
	Name      string
	Category  *FoodCategory
	Calories  float64
	Allergens []string
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s [%s] - %.1f kcal", i.Name, i.Category.Name(), i.Calories)
}

// Meal is a named list of ingredients. Ingredient order is preserved for
// display but carries no meaning for compatibility checks.
type Meal struct {
	Name        string
	Ingredients []Ingredient
}

// NewMeal builds a meal from its ingredients.
func NewMeal(name string, ingredients ...Ingredient) Meal {
	return Meal{Name: name, Ingredients: ingredients}
}

// Categories returns the union of every ingredient's category and that
// category's full ancestor closure, the meal's effective exclusion
// footprint. Sorted for deterministic output.
func (m Meal) Categories(graph *CategoryGraph) []string {
	set := make(map[string]bool)
	for _, ingredient := range m.Ingredients {
		if ingredient.Category == nil {
			continue
		}
		for name := range graph.closure(ingredient.Category) {
			set[name] = true
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CompatibleWith reports whether no ingredient category violates the
// restriction. A meal with no ingredients is compatible with everything.
func (m Meal) CompatibleWith(graph *CategoryGraph, restriction Restriction) bool {
	for _, ingredient := range m.Ingredients {
		if restriction.Forbids(graph, ingredient.Category) {
			return false
		}
	}
	return true
}

// CompatibleWithAll reports whether the meal satisfies every restriction in
// the group.
func (m Meal) CompatibleWithAll(graph *CategoryGraph, restrictions []Restriction) bool {
	for _, restriction := range restrictions {
		if !m.CompatibleWith(graph, restriction) {
			return false
		}
	}
	return true
}

// TotalCalories sums the calories across all ingredients.
func (m Meal) TotalCalories() float64 {
	var total float64
	for _, ingredient := range m.Ingredients {
		total += ingredient.Calories
	}
	return total
}

func (m Meal) String() string {
	return fmt.Sprintf("Meal(%s, %d items, %.1f kcal)", m.Name, len(m.Ingredients), m.TotalCalories())
}
