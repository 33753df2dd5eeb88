package export

import (
	"io"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
)

// ParseFormat maps a query value to a format; "xlsx" is accepted for Excel
func ParseFormat(s string) (ExportFormat, bool) {
	switch s {
	case "pdf":
		return FormatPDF, true
	case "excel", "xlsx":
		return FormatExcel, true
	default:
		return "", false
	}
}

// Exporter is the interface for all export formats
type Exporter interface {
	Export(data *ExportData, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// SummaryItem is one label/value line printed above the table
type SummaryItem struct {
	Label string
	Value string
}

// ExportData represents one report: a title block, a summary and a table
type ExportData struct {
	Title       string
	Description string
	CreatedAt   time.Time

	Summary []SummaryItem

	Headers []string
	Rows    [][]interface{}

	Style ExportStyle
}

// ExportStyle defines styling options for exports
type ExportStyle struct {
	Orientation   string // "portrait" or "landscape"
	PageSize      string // "A4", "Letter"
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows
	FontSize      float64
	FreezeHeader  bool // Excel only
	AutoFilter    bool // Excel only
}

// DefaultStyle returns default export styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBgColor: "#112240",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontSize:      10,
		FreezeHeader:  true,
		AutoFilter:    true,
	}
}
