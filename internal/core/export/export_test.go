package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleData() *ExportData {
	return &ExportData{
		Title:       "Birdfeeder Analytics - Last 7 Days",
		Description: "Revenue is +12.0% changed vs previous.",
		CreatedAt:   time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		Summary:     []SummaryItem{{Label: "Total Revenue", Value: "$700"}},
		Headers:     []string{"Date", "Revenue"},
		Rows: [][]interface{}{
			{"2024-01-01", 100.0},
			{"2024-01-02", 120.5},
		},
		Style: DefaultStyle(),
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("xlsx")
	assert.True(t, ok)
	assert.Equal(t, FormatExcel, f)

	f, ok = ParseFormat("pdf")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, f)

	_, ok = ParseFormat("csv")
	assert.False(t, ok)
}

func TestExportExcel(t *testing.T) {
	content, contentType, ext, err := NewService().Export(sampleData(), FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", ext)
	assert.Contains(t, contentType, "spreadsheetml")

	wb, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer wb.Close()

	title, err := wb.GetCellValue("Dashboard", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Birdfeeder Analytics - Last 7 Days", title)

	// title, description, blank, summary, blank, header
	header, err := wb.GetCellValue("Dashboard", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	revenue, err := wb.GetCellValue("Dashboard", "B8")
	require.NoError(t, err)
	assert.Equal(t, "120.5", revenue)
}

func TestExportPDF(t *testing.T) {
	content, contentType, ext, err := NewService().Export(sampleData(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, ".pdf", ext)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestExportPDFManyRows(t *testing.T) {
	data := sampleData()
	for i := 0; i < 200; i++ {
		data.Rows = append(data.Rows, []interface{}{"2024-01-01", float64(i)})
	}

	content, _, _, err := NewService().Export(data, FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestExportPDFRequiresHeaders(t *testing.T) {
	data := sampleData()
	data.Headers = nil

	_, _, _, err := NewService().Export(data, FormatPDF)
	assert.Error(t, err)
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, _, err := NewService().Export(sampleData(), ExportFormat("csv"))
	assert.Error(t, err)
}

func TestColumnNumberToName(t *testing.T) {
	assert.Equal(t, "A", columnNumberToName(1))
	assert.Equal(t, "Z", columnNumberToName(26))
	assert.Equal(t, "AA", columnNumberToName(27))
	assert.Equal(t, "A1", cellName(1, 1))
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#112240")
	assert.Equal(t, []int{0x11, 0x22, 0x40}, []int{r, g, b})
}
