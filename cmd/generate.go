// =============================================================================
// txgen - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which produces a synthetic
// transaction dataset, validates it, prints the summary report, and writes
// the output file.
//
// COMMAND USAGE:
//   txgen generate [flags]
//
// FLAGS:
//   -n, --rows        : Number of records to generate
//   -o, --output      : Output file path (.csv or .xlsx)
//   -s, --seed        : Random seed for reproducible datasets
//       --format      : Output format, csv or xlsx (default: from extension)
//       --days-back   : Length of the trailing timestamp window in days
//       --preview     : Print the first N rows with persona display names
//       --plain-names : Use the static name list for preview personas
//
// PIPELINE:
//   1. Load the generator profile (built-in or --config)
//   2. Generate N records from the seeded stream
//   3. Run the invariant validator; violations are reported, not fatal
//   4. Print the summary report
//   5. Write the dataset file
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightx/txgen/internal/dataset"
	"github.com/insightx/txgen/internal/generator"
	"github.com/insightx/txgen/internal/model"
	"github.com/insightx/txgen/internal/persona"
	"github.com/insightx/txgen/internal/validation"
	"github.com/insightx/txgen/pkg/utils"
)

var (
	rows       int
	outputPath string
	seed       int64
	format     string
	daysBack   int
	preview    int
	plainNames bool
)

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic transaction dataset",
	Long: `The generate command produces a dataset of synthetic payment transactions,
validates it against the generator's structural rules, prints a summary
report, and writes the result to a CSV or XLSX file.

Validation violations are reported but never block the run: this is a
demo-data tool, so the file is written either way and the report tells you
what to look at.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&rows, "rows", "n", 500, "Number of records to generate")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "data/transactions.csv", "Output file path (.csv or .xlsx)")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 42, "Random seed for reproducible datasets")
	generateCmd.Flags().StringVar(&format, "format", "", "Output format: csv or xlsx (default: inferred from extension)")
	generateCmd.Flags().IntVar(&daysBack, "days-back", 0, "Trailing timestamp window in days (default: profile value)")
	generateCmd.Flags().IntVar(&preview, "preview", 0, "Print the first N generated rows with persona display names")
	generateCmd.Flags().BoolVar(&plainNames, "plain-names", false, "Use the static fallback name list for preview personas")
}

func runGenerate() error {
	cfg, err := loadProfile()
	if err != nil {
		return err
	}
	if daysBack > 0 {
		cfg.DaysBack = daysBack
	}

	gen, err := generator.New(
		generator.WithConfig(cfg),
		generator.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	logger.Debug("generating dataset",
		zap.Int("rows", rows),
		zap.Int64("seed", seed),
		zap.Int("days_back", cfg.DaysBack),
	)

	ds, err := gen.Generate(rows)
	if err != nil {
		return err
	}

	fmt.Println("=== txgen ===")
	fmt.Printf("Generated %d record(s) with seed %d\n\n", len(ds), seed)

	// Invariant check. Violations are itemised but non-fatal: the file is
	// still written below.
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

	if preview > 0 {
		printPreview(ds, preview)
	}

	if err := writeDataset(ds); err != nil {
		return err
	}

	fmt.Printf("\nDataset saved to: %s\n", outputPath)
	return nil
}

// writeDataset persists the dataset in the requested format. The format is
// taken from --format when set, otherwise from the output file extension.
func writeDataset(ds model.Dataset) error {
	resolved := format
	if resolved == "" {
		if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
			resolved = "xlsx"
		} else {
			resolved = "csv"
		}
	}

	// A directory output path gets a timestamped file name inside it.
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, utils.UniqueOutputName("transactions", "."+resolved))
	}

	if err := utils.EnsureParentDir(outputPath); err != nil {
		return err
	}

	switch resolved {
	case "csv":
		return dataset.WriteCSV(outputPath, ds)
	case "xlsx":
		return dataset.WriteXLSX(outputPath, ds)
	default:
		return fmt.Errorf("unsupported format %q (use csv or xlsx)", resolved)
	}
}

// printPreview prints the first n rows annotated with persona display
// names. Names are flavor for eyeballing the data; they are not part of
// the dataset schema.
func printPreview(ds model.Dataset, n int) {
	var namer persona.Namer
	if plainNames {
		namer = persona.NewStatic()
	} else {
		namer = persona.NewFake(seed)
	}

	if n > len(ds) {
		n = len(ds)
	}

	fmt.Println("\nPreview:")
	fmt.Printf("  %-15s %-22s %-12s %-22s %12s  %s\n",
		"TRANSACTION", "SENDER", "TYPE", "MERCHANT", "AMOUNT", "STATUS")
	for _, t := range ds[:n] {
		merchant := "-"
		if t.MerchantCategory != "" {
			merchant = fmt.Sprintf("%s (%s)", namer.MerchantName(), t.MerchantCategory)
		}
		fmt.Printf("  %-15s %-22s %-12s %-22s %12.2f  %s\n",
			t.TransactionID, namer.PersonName(), t.TransactionType,
			merchant, t.AmountINR, t.TransactionStatus)
	}
}
