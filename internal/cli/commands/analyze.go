package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mealfit/mealfit/analyzer"
	"github.com/mealfit/mealfit/internal/cli/config"
	"github.com/mealfit/mealfit/internal/cli/ui"
	"github.com/mealfit/mealfit/parser"
)

var (
	analyzeGuestsFile string
	analyzeFormat     string
	analyzeOutput     string
	analyzeTop        int
	analyzeUniversal  bool
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze meal compatibility for a guest list",
		Long: `Analyze which configured meals each guest can eat.

Meals come from mealfit.yml; guests come from a CSV file with Name and
Dietary Restriction columns. Restriction text is parsed with the freeform
parser.

Examples:
  mealfit analyze --guests guests.csv
  mealfit analyze --guests guests.csv --format markdown --output matrix.md
  mealfit analyze --guests guests.csv --top 3
  mealfit analyze --guests guests.csv --universal`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeGuestsFile, "guests", "g", "", "Guest list CSV file (required)")
	cmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "Output format: table, csv, or markdown")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().IntVar(&analyzeTop, "top", 0, "Show only the top N meals by compatibility")
	cmd.Flags().BoolVar(&analyzeUniversal, "universal", false, "Show only meals every guest can eat")
	_ = cmd.MarkFlagRequired("guests")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	graph, err := cfg.BuildGraph()
	if err != nil {
		return err
	}
	tags := cfg.BuildTags()
	meals, err := cfg.BuildMeals(graph)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		return fmt.Errorf("no meals configured; add a meals section to mealfit.yml")
	}

	file, err := os.Open(analyzeGuestsFile)
	if err != nil {
		return fmt.Errorf("failed to open guest list: %w", err)
	}
	defer file.Close()

	guests, err := analyzer.ReadGuests(file)
	if err != nil {
		return err
	}

	p := parser.New(&parser.Options{
		FuzzThreshold: cfg.Parser.FuzzThreshold,
		Logger:        newLogger(),
	})
	analysis := analyzer.AnalyzeGuests(graph, tags, p, guests)
	a := analyzer.New(graph, tags, meals, analysis.People())

	out := cmd.OutOrStdout()
	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if analyzeUniversal {
		universal := a.UniversallyCompatibleMeals()
		if len(universal) == 0 {
			fmt.Fprintln(out, "No meal is compatible with every guest.")
			return nil
		}
		ui.Header(out, "Universally compatible meals", false)
		for _, meal := range universal {
			fmt.Fprintf(out, "%s (%.1f kcal)\n", meal.Name, meal.TotalCalories())
		}
		return nil
	}

	if analyzeTop > 0 {
		ui.Header(out, fmt.Sprintf("Top %d meals", analyzeTop), false)
		for _, score := range a.MostCompatibleMeals(analyzeTop) {
			fmt.Fprintf(out, "%s: %d compatible\n", score.Meal, score.Compatible)
		}
		return nil
	}

	matrix := a.Matrix()
	switch analyzeFormat {
	case "table":
		ui.RenderMatrix(out, matrix, nil)
	case "csv":
		if err := matrix.WriteCSV(out); err != nil {
			return err
		}
	case "markdown":
		if err := matrix.WriteMarkdown(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", analyzeFormat)
	}

	if analyzeOutput != "" {
		successColor := color.New(color.FgGreen)
		successColor.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", analyzeOutput)
	}
	return nil
}
