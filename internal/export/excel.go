package export

import (
	"fmt"

	"github.com/jonathan/job-listings/internal/types"
	"github.com/xuri/excelize/v2"
)

// excelSheet is the single worksheet written to exported workbooks.
const excelSheet = "Job Listings"

// Excel serializes listings into a single-sheet XLSX workbook, header row
// first, and returns the encoded bytes. Construction is synchronous and
// in-memory; no external call is made.
func Excel(listings []types.Listing) ([]byte, error) {
	if len(listings) == 0 {
		return nil, &ValidationError{Message: "results must be a non-empty list"}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	for i, row := range rows(listings) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(excelSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
