package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mealfit/mealfit/diet"
	"github.com/mealfit/mealfit/internal/cli/config"
	"github.com/mealfit/mealfit/internal/cli/ui"
	"github.com/mealfit/mealfit/parser"
)

var tagsCategory string

// NewTagsCommand creates the tags command
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [name]",
		Short: "List registered dietary tags",
		Long: `List registered dietary tags, or show a single tag's exclusions.

Examples:
  mealfit tags
  mealfit tags --category allergen
  mealfit tags VEGAN`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTags,
	}

	cmd.Flags().StringVarP(&tagsCategory, "category", "c", "", "Filter by classification label (exact match)")

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tags := cfg.BuildTags()

	if len(args) == 1 {
		return showTag(cmd, tags, args[0])
	}

	names := tags.Names()
	if tagsCategory != "" {
		names = tags.ByCategory(tagsCategory)
	}

	table := ui.NewTable(cmd.OutOrStdout(), []string{"Tag", "Classification", "Excludes"}, nil)
	for _, name := range names {
		tag, err := tags.Get(name)
		if err != nil {
			return err
		}
		table.AddRow(tag.Name(), tag.Category(), strings.Join(tag.Restriction().Excluded(), ", "))
	}
	table.Render()
	return nil
}

func showTag(cmd *cobra.Command, tags *diet.TagRegistry, name string) error {
	tag, err := tags.Get(name)
	if err != nil {
		if suggestion := closestTag(tags, name); suggestion != "" {
			return fmt.Errorf("%w (did you mean %s?)", err, suggestion)
		}
		return err
	}

	ui.Header(cmd.OutOrStdout(), tag.Name(), false)
	fmt.Fprintf(cmd.OutOrStdout(), "Classification: %s\n", tag.Category())
	fmt.Fprintf(cmd.OutOrStdout(), "Excludes: %s\n", strings.Join(tag.Restriction().Excluded(), ", "))
	return nil
}

// closestTag suggests the most similar registered tag name, if any comes
// close enough to be a plausible typo.
func closestTag(tags *diet.TagRegistry, name string) string {
	target := diet.CanonicalName(name)
	best, bestScore := "", 0
	for candidate := range tags.All() {
		if score := parser.Similarity(target, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore >= parser.DefaultFuzzThreshold {
		return best
	}
	return ""
}
