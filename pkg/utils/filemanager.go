// =============================================================================
// txgen - File Utilities
// =============================================================================
//
// Small file-management helpers shared by the CLI commands: output
// directory creation and collision-free default output naming.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureParentDir creates the parent directory of path if it is missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// UniqueOutputName builds a timestamped, collision-free file name, e.g.
// "transactions_20240115_103000_a1b2c3d4.csv".
func UniqueOutputName(prefix, ext string) string {
	short := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%s_%s_%s%s", prefix, time.Now().Format("20060102_150405"), short, ext)
}
