package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mealfit/mealfit/diet"
	"github.com/mealfit/mealfit/internal/cli/config"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [name]",
		Short: "Show the food category hierarchy",
		Long: `Show the food category hierarchy as a tree, or the ancestor
closure of a single category.

Examples:
  mealfit categories
  mealfit categories CHEESE`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCategories,
	}
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	graph, err := cfg.BuildGraph()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return showCategory(cmd, graph, args[0])
	}

	printCategoryTree(cmd.OutOrStdout(), graph)
	return nil
}

func showCategory(cmd *cobra.Command, graph *diet.CategoryGraph, name string) error {
	category, err := graph.Get(name)
	if err != nil {
		return err
	}
	ancestors, err := graph.Ancestors(category.Name())
	if err != nil {
		return err
	}

	labelColor := color.New(color.FgCyan, color.Bold)
	labelColor.Fprint(cmd.OutOrStdout(), "Category: ")
	fmt.Fprintln(cmd.OutOrStdout(), category.Name())
	labelColor.Fprint(cmd.OutOrStdout(), "Parents: ")
	fmt.Fprintln(cmd.OutOrStdout(), joinOrNone(category.Parents()))
	labelColor.Fprint(cmd.OutOrStdout(), "Ancestors: ")
	fmt.Fprintln(cmd.OutOrStdout(), joinOrNone(ancestors))
	return nil
}

// printCategoryTree renders the graph as an indented forest rooted at the
// parentless categories. Categories with several parents appear under each.
func printCategoryTree(w io.Writer, graph *diet.CategoryGraph) {
	children := make(map[string][]string)
	var roots []string
	for _, category := range graph.All() {
		parents := category.Parents()
		if len(parents) == 0 {
			roots = append(roots, category.Name())
			continue
		}
		for _, parent := range parents {
			children[parent] = append(children[parent], category.Name())
		}
	}
	sort.Strings(roots)

	var render func(name string, depth int)
	render = func(name string, depth int) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name)
		kids := children[name]
		sort.Strings(kids)
		for _, child := range kids {
			render(child, depth+1)
		}
	}
	for _, root := range roots {
		render(root, 0)
	}
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
