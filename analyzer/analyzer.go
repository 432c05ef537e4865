// Package analyzer decides which meals satisfy which people.
//
// An Analyzer composes a category graph with meal and person lists and
// produces a people × meals compatibility matrix, per-meal scores, and
// rankings. Matrix values are computed eagerly on every call and never
// cached: after mutating categories, tags, meals, or people, callers query
// again and get current answers.
package analyzer

import (
	"sort"

	"github.com/mealfit/mealfit/diet"
)

// Analyzer evaluates meal/person compatibility. Meal and person order is
// preserved as matrix row and column order.
type Analyzer struct {
	graph  *diet.CategoryGraph
	tags   *diet.TagRegistry
	meals  []diet.Meal
	people []diet.Person
}

// New creates an Analyzer over the given meals and people.
func New(graph *diet.CategoryGraph, tags *diet.TagRegistry, meals []diet.Meal, people []diet.Person) *Analyzer {
	return &Analyzer{graph: graph, tags: tags, meals: meals, people: people}
}

// Matrix is a meals × people boolean grid: Cells[row][col] reports whether
// the meal in row `row` is compatible with the person in column `col`.
type Matrix struct {
	MealNames    []string
	PersonLabels []string
	Cells        [][]bool
}

// Matrix computes the full compatibility grid. Rows follow meal input
// order, columns follow person input order, and column headers are the
// people's tag-derived labels.
func (a *Analyzer) Matrix() Matrix {
	m := Matrix{
		MealNames:    make([]string, len(a.meals)),
		PersonLabels: make([]string, len(a.people)),
		Cells:        make([][]bool, len(a.meals)),
	}
	for j, person := range a.people {
		m.PersonLabels[j] = person.Label(a.tags)
	}
	for i, meal := range a.meals {
		m.MealNames[i] = meal.Name
		row := make([]bool, len(a.people))
		for j, person := range a.people {
			row[j] = meal.CompatibleWith(a.graph, person.Restriction())
		}
		m.Cells[i] = row
	}
	return m
}

// TrueCount returns the total number of compatible (true) cells.
func (m Matrix) TrueCount() int {
	count := 0
	for _, row := range m.Cells {
		for _, ok := range row {
			if ok {
				count++
			}
		}
	}
	return count
}

// MealScore pairs a meal name with the number of people who can eat it.
type MealScore struct {
	Meal       string
	Compatible int
}

// ScoreMeals counts, for each meal in input order, how many people it is
// compatible with.
func (a *Analyzer) ScoreMeals() []MealScore {
	scores := make([]MealScore, len(a.meals))
	for i, meal := range a.meals {
		count := 0
		for _, person := range a.people {
			if meal.CompatibleWith(a.graph, person.Restriction()) {
				count++
			}
		}
		scores[i] = MealScore{Meal: meal.Name, Compatible: count}
	}
	return scores
}

// MostCompatibleMeals ranks meals by descending compatibility count, ties
// broken by original meal order. topN <= 0 or beyond the meal count returns
// every meal.
func (a *Analyzer) MostCompatibleMeals(topN int) []MealScore {
	scores := a.ScoreMeals()
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Compatible > scores[j].Compatible
	})
	if topN > 0 && topN < len(scores) {
		scores = scores[:topN]
	}
	return scores
}

// UniversallyCompatibleMeals returns the meals every person can eat, in
// input order. With no people, every meal qualifies vacuously.
func (a *Analyzer) UniversallyCompatibleMeals() []diet.Meal {
	var out []diet.Meal
	for _, meal := range a.meals {
		compatible := true
		for _, person := range a.people {
			if !meal.CompatibleWith(a.graph, person.Restriction()) {
				compatible = false
				break
			}
		}
		if compatible {
			out = append(out, meal)
		}
	}
	return out
}
