// Package config loads mealfit CLI configuration from mealfit.yml.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mealfit/mealfit/diet"
	"github.com/mealfit/mealfit/parser"
)

// Config is the mealfit configuration. Categories, tags, and meals extend
// the built-in defaults.
type Config struct {
	Parser     ParserConfig     `mapstructure:"parser"`
	Categories []CategoryConfig `mapstructure:"categories"`
	Tags       []TagConfig      `mapstructure:"tags"`
	Meals      []MealConfig     `mapstructure:"meals"`
}

// ParserConfig tunes the freeform restriction parser.
type ParserConfig struct {
	FuzzThreshold int `mapstructure:"fuzz_threshold"`
}

// CategoryConfig defines an extra food category. Parents must name
// already-defined categories (built-in or earlier in the list).
type CategoryConfig struct {
	Name    string   `mapstructure:"name"`
	Parents []string `mapstructure:"parents"`
}

// TagConfig defines or overrides a dietary tag.
type TagConfig struct {
	Name     string   `mapstructure:"name"`
	Excludes []string `mapstructure:"excludes"`
	Category string   `mapstructure:"category"`
}

// IngredientConfig defines one ingredient of a configured meal. An empty
// Category is inferred from the ingredient name.
type IngredientConfig struct {
	Name      string   `mapstructure:"name"`
	Category  string   `mapstructure:"category"`
	Calories  float64  `mapstructure:"calories"`
	Allergens []string `mapstructure:"allergens"`
}

// MealConfig defines a meal available to the analyze command.
type MealConfig struct {
	Name        string             `mapstructure:"name"`
	Ingredients []IngredientConfig `mapstructure:"ingredients"`
}

// Load reads mealfit.yml (or mealfit.yaml) from the working directory,
// falling back to defaults when no file exists. Environment variables
// override file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("parser.fuzz_threshold", parser.DefaultFuzzThreshold)

	v.SetConfigName("mealfit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MEALFIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file - defaults only.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(config *Config) error {
	if config.Parser.FuzzThreshold < 0 || config.Parser.FuzzThreshold > 100 {
		return fmt.Errorf("parser.fuzz_threshold must be between 0 and 100, got %d", config.Parser.FuzzThreshold)
	}
	for _, tag := range config.Tags {
		if tag.Name == "" {
			return fmt.Errorf("tags entries need a name")
		}
		if len(tag.Excludes) == 0 {
			return fmt.Errorf("tag %q excludes nothing", tag.Name)
		}
	}
	for _, meal := range config.Meals {
		if meal.Name == "" {
			return fmt.Errorf("meals entries need a name")
		}
	}
	return nil
}

// BuildGraph constructs the category graph: stock hierarchy plus
// configured extensions, in file order.
func (c *Config) BuildGraph() (*diet.CategoryGraph, error) {
	graph := diet.DefaultCategoryGraph()
	for _, category := range c.Categories {
		if _, err := graph.Define(category.Name, category.Parents...); err != nil {
			return nil, fmt.Errorf("failed to define category %q: %w", category.Name, err)
		}
	}
	return graph, nil
}

// BuildTags constructs the tag registry: stock tags plus configured
// definitions, which may overwrite stock ones.
func (c *Config) BuildTags() *diet.TagRegistry {
	tags := diet.DefaultTagRegistry()
	for _, tag := range c.Tags {
		category := tag.Category
		if category == "" {
			category = "custom"
		}
		tags.Register(tag.Name, diet.NewRestriction(tag.Excludes...), category)
	}
	return tags
}

// BuildMeals resolves configured meals against the graph. Ingredients
// without an explicit category are categorized from their name.
func (c *Config) BuildMeals(graph *diet.CategoryGraph) ([]diet.Meal, error) {
	meals := make([]diet.Meal, 0, len(c.Meals))
	for _, mealConfig := range c.Meals {
		ingredients := make([]diet.Ingredient, 0, len(mealConfig.Ingredients))
		for _, ing := range mealConfig.Ingredients {
			var category *diet.FoodCategory
			var err error
			if ing.Category != "" {
				category, err = graph.Get(ing.Category)
			} else {
				category, err = graph.Categorize(ing.Name)
			}
			if err != nil {
				return nil, fmt.Errorf("meal %q ingredient %q: %w", mealConfig.Name, ing.Name, err)
			}
			ingredients = append(ingredients, diet.Ingredient{
				Name:      ing.Name,
				Category:  category,
				Calories:  ing.Calories,
				Allergens: ing.Allergens,
			})
		}
		meals = append(meals, diet.NewMeal(mealConfig.Name, ingredients...))
	}
	return meals, nil
}
