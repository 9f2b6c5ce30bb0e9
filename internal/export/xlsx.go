package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the only sheet in exported workbooks.
const SheetName = "Sessies"

// WriteXLSX writes the grid as a single-sheet workbook. Numeric cells are
// stored as numbers and the header row is bold and frozen.
func WriteXLSX(w io.Writer, grid [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for idx, row := range grid {
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", idx+1, err)
		}
		cells := make([]interface{}, len(row))
		for i, val := range row {
			cells[i] = cellValue(idx, val)
		}
		if err := f.SetSheetRow(SheetName, axis, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", idx+1, err)
		}
	}

	if len(grid) > 0 && len(grid[0]) > 0 {
		if err := styleHeader(f, len(grid[0])); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func cellValue(row int, val string) interface{} {
	if row == 0 || val == "" {
		return val
	}
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	return val
}

func styleHeader(f *excelize.File, width int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return fmt.Errorf("failed to address header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}
	return nil
}
