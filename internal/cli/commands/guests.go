package commands

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mealfit/mealfit/analyzer"
	"github.com/mealfit/mealfit/internal/cli/config"
	"github.com/mealfit/mealfit/internal/cli/ui"
	"github.com/mealfit/mealfit/parser"
)

var guestsFile string

// NewGuestsCommand creates the guests command
func NewGuestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guests",
		Short: "Manage and summarize guest lists",
	}

	cmd.PersistentFlags().StringVarP(&guestsFile, "file", "f", "guests.csv", "Guest list CSV file")

	cmd.AddCommand(newGuestsAddCommand())
	cmd.AddCommand(newGuestsSummaryCommand())

	return cmd
}

func newGuestsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Interactively add a guest to the list",
		Long: `Prompt for a guest's name and dietary restriction text, preview
the parsed restriction, and append the row to the guest list CSV. The file
is created with a header row when it does not exist.`,
		RunE: runGuestsAdd,
	}
}

func runGuestsAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var name string
	if err := survey.AskOne(&survey.Input{Message: "Guest name:"}, &name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var restrictionText string
	if err := survey.AskOne(&survey.Input{
		Message: "Dietary restriction (freeform, empty for none):",
	}, &restrictionText); err != nil {
		return err
	}

	p := parser.New(&parser.Options{FuzzThreshold: cfg.Parser.FuzzThreshold, Logger: newLogger()})
	restriction, trace := p.ParseWithTrace(restrictionText)

	infoColor := color.New(color.FgCyan)
	if restriction == nil {
		infoColor.Fprintln(cmd.OutOrStdout(), "Parsed: no restriction")
	} else {
		infoColor.Fprintf(cmd.OutOrStdout(), "Parsed: excludes %v (confidence %.2f)\n",
			restriction.Excluded(), trace.Score)
	}

	confirmed := true
	if err := survey.AskOne(&survey.Confirm{Message: "Add this guest?", Default: true}, &confirmed); err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	if err := appendGuest(guestsFile, name, restrictionText); err != nil {
		return err
	}

	successColor := color.New(color.FgGreen)
	successColor.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", name, guestsFile)
	return nil
}

// appendGuest appends a row to the guest CSV, writing the header first for
// a new file.
func appendGuest(path, name, restrictionText string) error {
	_, statErr := os.Stat(path)
	newFile := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open guest list: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if newFile {
		if err := w.Write([]string{"Name", "Dietary Restriction"}); err != nil {
			return fmt.Errorf("failed to write guest list header: %w", err)
		}
	}
	if err := w.Write([]string{name, restrictionText}); err != nil {
		return fmt.Errorf("failed to write guest row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func newGuestsSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize the guest list's dietary needs",
		RunE:  runGuestsSummary,
	}
}

func runGuestsSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	graph, err := cfg.BuildGraph()
	if err != nil {
		return err
	}
	tags := cfg.BuildTags()

	file, err := os.Open(guestsFile)
	if err != nil {
		return fmt.Errorf("failed to open guest list: %w", err)
	}
	defer file.Close()

	guests, err := analyzer.ReadGuests(file)
	if err != nil {
		return err
	}

	p := parser.New(&parser.Options{FuzzThreshold: cfg.Parser.FuzzThreshold, Logger: newLogger()})
	analysis := analyzer.AnalyzeGuests(graph, tags, p, guests)
	out := cmd.OutOrStdout()

	ui.Header(out, "Dietary tags", false)
	tagTable := ui.NewTable(out, []string{"Tag", "Guests"}, nil)
	for _, gc := range analysis.TagSummary() {
		tagTable.AddRow(gc.Key, fmt.Sprintf("%d", gc.Count))
	}
	tagTable.Render()
	fmt.Fprintln(out)

	ui.Header(out, "Common restrictions (2+ guests)", false)
	common := analysis.CommonRestrictions(2)
	if len(common) == 0 {
		fmt.Fprintln(out, "(none)")
	}
	for _, gc := range common {
		fmt.Fprintf(out, "%s: %d guests\n", gc.Key, gc.Count)
	}
	fmt.Fprintln(out)

	ui.Header(out, "Groups", false)
	for _, group := range analysis.RestrictionGroups() {
		fmt.Fprintf(out, "%s: %v\n", group.Key, group.Names)
	}

	return nil
}
