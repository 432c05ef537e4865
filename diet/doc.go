// Package diet models dietary restrictions over a hierarchy of food
// categories.
//
// A CategoryGraph holds a multi-parent DAG of food categories (CHEESE →
// DAIRY → ANIMAL_PRODUCTS). A Restriction is a set of excluded category
// names; a category is forbidden when its ancestor closure intersects the
// exclusion set. A TagRegistry maps canonical names like VEGAN or NUT-FREE
// to restrictions and can infer which tags an arbitrary restriction
// implies. Ingredients, Meals, and People are thin data carriers that
// evaluate compatibility through the graph.
//
// All registries have an explicit construct → populate → query lifecycle
// and no internal locking; see CategoryGraph and TagRegistry for the
// concurrency contract.
package diet
