// =============================================================================
// txgen - Main Entry Point
// =============================================================================
//
// txgen generates synthetic payment-transaction datasets with embedded
// statistical patterns (conditional failure rates, fraud correlated with
// high-value amounts, device-dependent amount ranges) for analytics demos.
//
// USAGE:
//   txgen generate        - Generate a dataset and write it to CSV/XLSX
//   txgen validate        - Re-validate an existing dataset file
//   txgen version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core generator, validation, and dataset I/O
//   - pkg/           : Shared utilities
//   - configs/       : Example generator profile overrides (YAML)
//
// =============================================================================

package main

import (
	"github.com/insightx/txgen/cmd"
)

func main() {
	cmd.Execute()
}
