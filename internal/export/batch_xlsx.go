package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pvillanueva/fup-consult/internal/provider"
)

const (
	sheetResumen        = "Resumen"
	sheetConsolidado    = "Datos Consolidados"
	sheetSocios         = "Socios Detallados"
	sheetRepresentantes = "Representantes Detallados"
	sheetOrganos        = "Organos Administracion"
)

var (
	consolidatedWidths   = []float64{15, 40, 15, 15, 30, 40, 15, 15, 15, 25, 30, 12, 18, 25}
	sociosWidths         = []float64{15, 35, 40, 12, 25, 18, 15, 18, 15}
	representantesWidths = []float64{15, 35, 40, 12, 25, 18, 30, 15}
	organosWidths        = []float64{15, 35, 40, 12, 25, 18, 20, 30, 15}
)

type batchWorkbook struct {
	f *excelize.File

	headerStyle  int
	titleStyle   int
	sectionStyle int
	boldStyle    int
	borderStyle  int
	successStyle int
}

func newBatchWorkbook() (*batchWorkbook, error) {
	f := excelize.NewFile()
	w := &batchWorkbook{f: f}

	thin := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
	var err error
	w.headerStyle, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	w.titleStyle, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	w.sectionStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, err
	}
	w.boldStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	w.borderStyle, err = f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return nil, err
	}
	w.successStyle, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
		Border: thin,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// BuildBatchXLSX renders the consolidated batch workbook: a Resumen sheet
// with summary statistics plus one consolidated and three detail sheets.
// Stream mode trades per-cell styling for constant memory and is meant for
// large result sets.
func BuildBatchXLSX(records []*provider.Record, originalFilename string, generatedAt time.Time, stream bool) (*excelize.File, error) {
	w, err := newBatchWorkbook()
	if err != nil {
		return nil, err
	}
	if err := w.f.SetSheetName("Sheet1", sheetResumen); err != nil {
		return nil, err
	}
	if err := w.summarySheet(records, originalFilename, generatedAt); err != nil {
		return nil, err
	}

	sheets := []struct {
		name    string
		headers []string
		widths  []float64
		rows    func(*provider.Record) [][]any
	}{
		{sheetConsolidado, consolidatedHeaders, consolidatedWidths, func(r *provider.Record) [][]any {
			return [][]any{consolidatedRow(r)}
		}},
		{sheetSocios, sociosHeaders, sociosWidths, sociosRows},
		{sheetRepresentantes, representantesHeaders, representantesWidths, representantesRows},
		{sheetOrganos, organosHeaders, organosWidths, organosRows},
	}
	for _, sh := range sheets {
		if _, err := w.f.NewSheet(sh.name); err != nil {
			return nil, err
		}
		if stream {
			err = w.streamDataSheet(sh.name, sh.headers, sh.widths, records, sh.rows)
		} else {
			err = w.dataSheet(sh.name, sh.headers, sh.widths, records, sh.rows)
		}
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sh.name, err)
		}
	}
	w.f.SetActiveSheet(0)
	return w.f, nil
}

func (w *batchWorkbook) summarySheet(records []*provider.Record, originalFilename string, generatedAt time.Time) error {
	const sheet = sheetResumen

	if err := w.f.MergeCell(sheet, "A1", "D1"); err != nil {
		return err
	}
	if err := w.f.SetCellValue(sheet, "A1", "RESUMEN DE PROCESAMIENTO BATCH"); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheet, "A1", "D1", w.titleStyle); err != nil {
		return err
	}
	if err := w.f.SetRowHeight(sheet, 1, 30); err != nil {
		return err
	}

	row := 3
	metadata := []struct {
		label string
		value any
	}{
		{"Archivo Original", originalFilename},
		{"Fecha de Procesamiento", generatedAt.Format("02/01/2006 15:04:05")},
		{"Total de RUCs Procesados", len(records)},
	}
	for _, m := range metadata {
		labelCell := fmt.Sprintf("A%d", row)
		_ = w.f.SetCellValue(sheet, labelCell, m.label)
		_ = w.f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.value)
		_ = w.f.SetCellStyle(sheet, labelCell, labelCell, w.boldStyle)
		row++
	}

	row += 2
	row = w.statsTable(sheet, row, "ESTADÍSTICAS POR ESTADO", "Estado", countByEstado(records), len(records))
	row += 2
	w.statsTable(sheet, row, "ESTADÍSTICAS POR TIPO DE CONTRIBUYENTE", "Tipo de Contribuyente", countByTipo(records), len(records))

	widths := []float64{35, 30, 15, 15}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func (w *batchWorkbook) statsTable(sheet string, row int, title, keyHeader string, stats []statCount, total int) int {
	titleCell := fmt.Sprintf("A%d", row)
	_ = w.f.SetCellValue(sheet, titleCell, title)
	_ = w.f.SetCellStyle(sheet, titleCell, titleCell, w.sectionStyle)
	row++

	_ = w.f.SetCellValue(sheet, fmt.Sprintf("A%d", row), keyHeader)
	_ = w.f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Cantidad")
	_ = w.f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Porcentaje")
	_ = w.f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), w.headerStyle)
	row++

	for _, st := range stats {
		_ = w.f.SetCellValue(sheet, fmt.Sprintf("A%d", row), st.Key)
		_ = w.f.SetCellValue(sheet, fmt.Sprintf("B%d", row), st.Count)
		if total > 0 {
			_ = w.f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.1f%%", float64(st.Count)/float64(total)*100))
		}
		row++
	}
	return row
}

// dataSheet writes a styled sheet: header row, bordered data rows, frozen
// header and an autofilter. Rows of companies in estado ACTIVO get the green
// fill on the consolidated sheet.
func (w *batchWorkbook) dataSheet(sheet string, headers []string, widths []float64, records []*provider.Record, rowsOf func(*provider.Record) [][]any) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := w.f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := w.f.SetCellStyle(sheet, "A1", lastCol+"1", w.headerStyle); err != nil {
		return err
	}

	rowIdx := 2
	for _, rec := range records {
		for _, values := range rowsOf(rec) {
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
				if err := w.f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			style := w.borderStyle
			if sheet == sheetConsolidado && rec.General.Estado == "ACTIVO" {
				style = w.successStyle
			}
			first, _ := excelize.CoordinatesToCellName(1, rowIdx)
			last, _ := excelize.CoordinatesToCellName(len(headers), rowIdx)
			if err := w.f.SetCellStyle(sheet, first, last, style); err != nil {
				return err
			}
			rowIdx++
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	if err := w.f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return err
	}
	if rowIdx > 2 {
		if err := w.f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, rowIdx-1), nil); err != nil {
			return err
		}
	}
	return nil
}

// streamDataSheet writes the same rows through a stream writer. Only the
// header row keeps its style.
func (w *batchWorkbook) streamDataSheet(sheet string, headers []string, widths []float64, records []*provider.Record, rowsOf func(*provider.Record) [][]any) error {
	sw, err := w.f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	for i, width := range widths {
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return err
		}
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = excelize.Cell{StyleID: w.headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", headerRow); err != nil {
		return err
	}

	rowIdx := 2
	for _, rec := range records {
		for _, values := range rowsOf(rec) {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			if err := sw.SetRow(cell, values); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return sw.Flush()
}
