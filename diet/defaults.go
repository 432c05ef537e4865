package diet

// DefaultCategoryGraph builds the stock food category hierarchy. Callers
// extend it with further Define calls or replace it entirely.
func DefaultCategoryGraph() *CategoryGraph {
	g := NewCategoryGraph()

	define := func(name string, parents ...string) {
		// The stock hierarchy defines parents before children, so neither
		// error can occur.
		if _, err := g.Define(name, parents...); err != nil {
			panic(err)
		}
	}

	// Base categories
	define("ANIMAL_PRODUCTS")
	define("PLANT_BASED")

	// Animal product subcategories
	define("MEAT", "ANIMAL_PRODUCTS")
	define("DAIRY", "ANIMAL_PRODUCTS")
	define("EGGS", "ANIMAL_PRODUCTS")
	define("FISH", "ANIMAL_PRODUCTS")
	define("SHELLFISH", "FISH")

	// Meat subcategories
	define("BEEF", "MEAT")
	define("CHICKEN", "MEAT")
	define("PORK", "MEAT")

	// Dairy subcategories
	define("CHEESE", "DAIRY")
	define("MILK", "DAIRY")
	define("YOGURT", "DAIRY")

	// Fish subcategories
	define("SALMON", "FISH")
	define("TUNA", "FISH")

	// Plant-based categories
	define("NUTS", "PLANT_BASED")
	define("GRAINS", "PLANT_BASED")
	define("LEGUMES", "PLANT_BASED")
	define("VEGETABLES", "PLANT_BASED")
	define("FRUITS", "PLANT_BASED")

	// Nut subcategories
	define("ALMOND", "NUTS")
	define("PEANUT", "NUTS")
	define("CASHEW", "NUTS")

	// Grain subcategories
	define("WHEAT", "GRAINS")
	define("RICE", "GRAINS")
	define("OATS", "GRAINS")

	// Common allergens
	define("GLUTEN", "WHEAT")
	define("SOY", "LEGUMES")
	define("TOFU", "SOY")

	// Cuisine categories
	define("CUISINE")
	define("ASIAN", "CUISINE")
	define("JAPANESE", "ASIAN")
	define("CHINESE", "ASIAN")
	define("ITALIAN", "CUISINE")
	define("MEXICAN", "CUISINE")

	return g
}

// DefaultTagRegistry builds the stock set of canonical dietary tags.
func DefaultTagRegistry() *TagRegistry {
	tr := NewTagRegistry()

	// Ethical tags
	tr.Register("VEGAN", NewRestriction("ANIMAL_PRODUCTS"), "ethical")
	tr.Register("VEGETARIAN", NewRestriction("MEAT", "FISH", "SHELLFISH"), "ethical")
	tr.Register("PESCATARIAN", NewRestriction("MEAT"), "ethical")
	tr.Register("MEAT-FREE", NewRestriction("MEAT"), "ethical")

	// Allergen tags
	tr.Register("NUT-FREE", NewRestriction("NUTS"), "allergen")
	tr.Register("DAIRY-FREE", NewRestriction("DAIRY"), "allergen")
	tr.Register("EGG-FREE", NewRestriction("EGGS"), "allergen")
	tr.Register("SHELLFISH-FREE", NewRestriction("SHELLFISH"), "allergen")
	tr.Register("FISH-FREE", NewRestriction("FISH"), "allergen")
	tr.Register("BEEF-FREE", NewRestriction("BEEF"), "allergen")
	tr.Register("GLUTEN-FREE", NewRestriction("GLUTEN"), "allergen")
	tr.Register("SOY-FREE", NewRestriction("SOY"), "allergen")

	return tr
}
