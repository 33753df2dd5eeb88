package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{
		sheetName: "Dashboard",
	}
}

// Export writes the title block, summary and table to a single sheet
func (e *ExcelExporter) Export(data *ExportData, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}

	row := 1
	if data.Title != "" {
		e.set(f, 1, row, data.Title)
		f.SetCellStyle(e.sheetName, cellName(1, row), cellName(1, row), boldStyle)
		row++
		if data.Description != "" {
			e.set(f, 1, row, data.Description)
			row++
		}
		row++
	}

	for _, item := range data.Summary {
		e.set(f, 1, row, item.Label)
		e.set(f, 2, row, item.Value)
		row++
	}
	if len(data.Summary) > 0 {
		row++
	}

	headerStyle, err := e.createHeaderStyle(f, data.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := row
	for col, header := range data.Headers {
		e.set(f, col+1, row, header)
		f.SetCellStyle(e.sheetName, cellName(col+1, row), cellName(col+1, row), headerStyle)
	}
	row++

	oddStyle, _ := e.createRowStyle(f, data.Style, data.Style.RowBgColor1)
	evenStyle := oddStyle
	if data.Style.AlternateRows {
		evenStyle, _ = e.createRowStyle(f, data.Style, data.Style.RowBgColor2)
	}

	for i, values := range data.Rows {
		style := oddStyle
		if i%2 == 1 {
			style = evenStyle
		}
		for col, value := range values {
			e.set(f, col+1, row, value)
			f.SetCellStyle(e.sheetName, cellName(col+1, row), cellName(col+1, row), style)
		}
		row++
	}

	if len(data.Headers) > 0 {
		f.SetColWidth(e.sheetName, "A", columnNumberToName(len(data.Headers)), 16)

		if data.Style.FreezeHeader {
			f.SetPanes(e.sheetName, &excelize.Panes{
				Freeze:      true,
				YSplit:      headerRow,
				TopLeftCell: cellName(1, headerRow+1),
				ActivePane:  "bottomLeft",
			})
		}
		if data.Style.AutoFilter && len(data.Rows) > 0 {
			rng := fmt.Sprintf("%s:%s", cellName(1, headerRow), cellName(len(data.Headers), headerRow+len(data.Rows)))
			f.AutoFilter(e.sheetName, rng, nil)
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

func (e *ExcelExporter) set(f *excelize.File, col, row int, value interface{}) {
	f.SetCellValue(e.sheetName, cellName(col, row), value)
}

func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style ExportStyle) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  style.FontSize,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func (e *ExcelExporter) createRowStyle(f *excelize.File, style ExportStyle, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{Size: style.FontSize},
	}
	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}
	return f.NewStyle(rowStyle)
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", columnNumberToName(col), row)
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
