// =============================================================================
// txgen - Dataset CSV I/O
// =============================================================================
//
// This module persists an assembled dataset to a delimited flat file and
// loads one back for re-validation. The header row always matches
// model.Columns exactly; the reader rejects files whose header drifted
// from the schema so downstream consumers never silently misread columns.
//
// =============================================================================

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightx/txgen/internal/model"
)

// WriteCSV writes the dataset to path with a schema header row.
// An I/O failure leaves the in-memory dataset untouched and valid.
func WriteCSV(path string, ds model.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(model.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, t := range ds {
		if err := w.Write(t.CSVRow()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// ReadCSV loads a dataset previously written by WriteCSV.
func ReadCSV(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(model.Columns)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, col := range model.Columns {
		if header[i] != col {
			return nil, fmt.Errorf("header mismatch at column %d: expected %q, got %q", i+1, col, header[i])
		}
	}

	var ds model.Dataset
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}

		t, err := model.FromCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		ds = append(ds, t)
	}

	return ds, nil
}
