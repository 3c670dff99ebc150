package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the rows of the named sheet, or of the first sheet when
// sheet is empty.
func readXLSX(filename, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoData
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// LoadSheet reads one named sheet of a workbook.
func LoadSheet(filename, sheet string) (*Dataset, error) {
	rows, err := readXLSX(filename, sheet)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	ds, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	ds.Name = sheet
	return ds, nil
}
