package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/insightx/txgen/internal/model"
)

// xlsxSheetName is the worksheet the dataset is written to.
const xlsxSheetName = "Transactions"

// WriteXLSX writes the dataset to an XLSX workbook with the same column
// schema as the CSV form. Conditionally-absent fields become empty cells,
// numeric and flag columns stay numeric.
func WriteXLSX(path string, ds model.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	for col, name := range model.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(xlsxSheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}

	for i, t := range ds {
		values := []any{
			t.TransactionID,
			t.Timestamp.Format(model.TimestampLayout),
			t.TransactionType,
			t.MerchantCategory,
			t.AmountINR,
			t.TransactionStatus,
			t.SenderAgeGroup,
			t.ReceiverAgeGroup,
			t.SenderState,
			t.SenderBank,
			t.ReceiverBank,
			t.DeviceType,
			t.NetworkType,
			t.FraudFlag,
			t.HourOfDay,
			t.DayOfWeek,
			t.IsWeekend,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell for row %d: %w", i+1, err)
			}
			if err := f.SetCellValue(xlsxSheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
