package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mealfit/mealfit/internal/cli/config"
	"github.com/mealfit/mealfit/parser"
)

var (
	parseDebug     bool
	parseThreshold int
)

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse freeform dietary restriction text",
		Long: `Parse freeform dietary restriction text into an exclusion set.

The parser matches words against a fixed keyword table, falls back to
fuzzy matching for near-misses, and reports a confidence score. It never
fails: unrecognized input yields no restriction and a low score.

Examples:
  mealfit parse "vegetarian and dairy free"
  mealfit parse --debug "no nuts please"
  mealfit parse --threshold 85 "vegitarian"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().BoolVarP(&parseDebug, "debug", "d", false, "Print the full parse trace as JSON")
	cmd.Flags().IntVarP(&parseThreshold, "threshold", "t", 0, "Fuzzy match threshold 1-100 (default from config)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	threshold := cfg.Parser.FuzzThreshold
	if parseThreshold > 0 {
		threshold = parseThreshold
	}

	p := parser.New(&parser.Options{
		FuzzThreshold: threshold,
		Logger:        newLogger(),
	})

	text := strings.Join(args, " ")
	restriction, trace := p.ParseWithTrace(text)

	if parseDebug {
		out, err := json.MarshalIndent(trace, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode trace: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	labelColor := color.New(color.FgCyan, color.Bold)
	if restriction == nil {
		labelColor.Fprint(cmd.OutOrStdout(), "Restriction: ")
		fmt.Fprintln(cmd.OutOrStdout(), "none")
	} else {
		labelColor.Fprint(cmd.OutOrStdout(), "Excludes: ")
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(restriction.Excluded(), ", "))
	}
	labelColor.Fprint(cmd.OutOrStdout(), "Confidence: ")
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", trace.Score)
	labelColor.Fprint(cmd.OutOrStdout(), "Reason: ")
	fmt.Fprintln(cmd.OutOrStdout(), trace.Reason)

	return nil
}
