// =============================================================================
// txgen - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which re-checks an existing
// dataset file against the generator's structural rules and prints the
// same summary report as 'generate'.
//
// COMMAND USAGE:
//   txgen validate <file.csv>
//
// Useful after hand-editing a demo dataset, or to confirm a file produced
// by an earlier run still matches the current profile's ranges.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightx/txgen/internal/dataset"
	"github.com/insightx/txgen/internal/validation"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <file.csv>",
	Short: "Validate an existing dataset file",
	Long: `The validate command loads a CSV dataset previously written by
'txgen generate' and re-runs the invariant checks and summary statistics.

The command fails only on I/O or parse errors. Rule violations are printed
as an itemised report with a zero exit code, matching the non-fatal
validation semantics of 'generate'.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	cfg, err := loadProfile()
	if err != nil {
		return err
	}

	logger.Debug("validating dataset file", zap.String("path", path))

	ds, err := dataset.ReadCSV(path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Println("=== txgen ===")
	fmt.Printf("Loaded %d record(s) from %s\n\n", len(ds), path)

	violations := validation.Validate(ds, cfg)
	if len(violations) == 0 {
		fmt.Println("Data validation passed")
	} else {
		fmt.Println("Validation violations found:")
		for _, v := range violations {
			fmt.Printf("  - %s\n", v)
		}
	}

	fmt.Println()
	fmt.Print(validation.Summarize(ds, cfg).Render())
	return nil
}
