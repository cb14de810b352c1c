package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const clientsSheet = "Clientes"

// XLSXEncoder writes a single-sheet workbook.
type XLSXEncoder struct {
	sheet string
}

func NewXLSXEncoder() XLSXEncoder {
	return XLSXEncoder{sheet: clientsSheet}
}

func (XLSXEncoder) Format() string { return "xlsx" }
func (XLSXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXEncoder) Extension() string { return "xlsx" }

func (e XLSXEncoder) Encode(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), e.sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, e.sheet, 1, header); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(e.sheet, 1, 1, headerStyle)
	}

	for i, row := range rows {
		escaped := make([]string, len(row))
		for j, v := range row {
			escaped[j] = EscapeFormula(v)
		}
		if err := writeRow(f, e.sheet, i+2, escaped); err != nil {
			return nil, err
		}
	}

	if len(header) > 0 {
		last, err := excelize.ColumnNumberToName(len(header))
		if err == nil {
			_ = f.SetColWidth(e.sheet, "A", last, 20)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
