package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphExtendsDefaults(t *testing.T) {
	cfg := &Config{
		Categories: []CategoryConfig{
			{Name: "KIMCHI", Parents: []string{"VEGETABLES", "ASIAN"}},
		},
	}

	graph, err := cfg.BuildGraph()
	require.NoError(t, err)

	ok, err := graph.IsA("KIMCHI", "PLANT_BASED")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuildGraphUnknownParent(t *testing.T) {
	cfg := &Config{
		Categories: []CategoryConfig{
			{Name: "KIMCHI", Parents: []string{"PICKLED"}},
		},
	}
	_, err := cfg.BuildGraph()
	assert.Error(t, err)
}

func TestBuildTagsOverride(t *testing.T) {
	cfg := &Config{
		Tags: []TagConfig{
			{Name: "VEGAN", Excludes: []string{"ANIMAL_PRODUCTS", "HONEY"}, Category: "strict"},
			{Name: "KETO", Excludes: []string{"GRAINS"}},
		},
	}

	tags := cfg.BuildTags()

	vegan, err := tags.Get("VEGAN")
	require.NoError(t, err)
	assert.True(t, vegan.Restriction().Excludes("HONEY"))
	assert.Equal(t, "strict", vegan.Category())

	keto, err := tags.Get("KETO")
	require.NoError(t, err)
	assert.Equal(t, "custom", keto.Category(), "missing category defaults to custom")
}

func TestBuildMeals(t *testing.T) {
	cfg := &Config{
		Meals: []MealConfig{
			{
				Name: "Cheese Board",
				Ingredients: []IngredientConfig{
					{Name: "Brie", Category: "CHEESE", Calories: 334},
					{Name: "salmon roll", Calories: 180}, // category inferred
				},
			},
		},
	}

	graph, err := cfg.BuildGraph()
	require.NoError(t, err)

	meals, err := cfg.BuildMeals(graph)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	require.Len(t, meals[0].Ingredients, 2)
	assert.Equal(t, "CHEESE", meals[0].Ingredients[0].Category.Name())
	assert.Equal(t, "SALMON", meals[0].Ingredients[1].Category.Name())
	assert.Equal(t, 514.0, meals[0].TotalCalories())
}

func TestBuildMealsUnknownCategory(t *testing.T) {
	cfg := &Config{
		Meals: []MealConfig{
			{Name: "Mystery", Ingredients: []IngredientConfig{{Name: "slurm"}}},
		},
	}
	graph, err := cfg.BuildGraph()
	require.NoError(t, err)

	_, err = cfg.BuildMeals(graph)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, validate(&Config{Parser: ParserConfig{FuzzThreshold: 101}}))
	assert.Error(t, validate(&Config{Tags: []TagConfig{{Name: "KETO"}}}))
	assert.Error(t, validate(&Config{Meals: []MealConfig{{}}}))
	assert.NoError(t, validate(&Config{Parser: ParserConfig{FuzzThreshold: 75}}))
}
