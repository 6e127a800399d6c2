package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pvillanueva/fup-consult/internal/provider"
)

var (
	experienciaHeaders = []string{"N° Contrato", "Entidad", "Objeto Contractual", "Monto", "Fecha", "Estado"}
	experienciaWidths  = []float64{20, 40, 50, 15, 15, 15}
)

// BuildFichaXLSX renders one provider record as a five-sheet ficha workbook.
func BuildFichaXLSX(rec *provider.Record) (*excelize.File, error) {
	w, err := newBatchWorkbook()
	if err != nil {
		return nil, err
	}
	if err := w.f.SetSheetName("Sheet1", "DatosGenerales"); err != nil {
		return nil, err
	}
	if err := w.generalSheet(rec); err != nil {
		return nil, err
	}

	sheets := []struct {
		name    string
		headers []string
		widths  []float64
		rows    [][]any
	}{
		{"SociosAccionistas", sociosHeaders[2:], sociosWidths[2:], stripCompanyColumns(sociosRows(rec), len(rec.Socios) > 0)},
		{"Representantes", representantesHeaders[2:], representantesWidths[2:], stripCompanyColumns(representantesRows(rec), len(rec.Representantes) > 0)},
		{"OrganosAdministracion", organosHeaders[2:], organosWidths[2:], stripCompanyColumns(organosRows(rec), len(rec.Organos) > 0)},
	}
	for _, sh := range sheets {
		if _, err := w.f.NewSheet(sh.name); err != nil {
			return nil, err
		}
		if err := w.fichaListSheet(sh.name, sh.headers, sh.widths, sh.rows); err != nil {
			return nil, err
		}
	}
	if _, err := w.f.NewSheet("Experiencia"); err != nil {
		return nil, err
	}
	if err := w.fichaListSheet("Experiencia", experienciaHeaders, experienciaWidths, experienciaRows(rec)); err != nil {
		return nil, err
	}
	w.f.SetActiveSheet(0)
	return w.f, nil
}

func experienciaRows(rec *provider.Record) [][]any {
	if len(rec.Experiencia) == 0 {
		return [][]any{{"Sin información disponible"}}
	}
	rows := make([][]any, 0, len(rec.Experiencia))
	for _, c := range rec.Experiencia {
		monto := any("")
		if c.Monto != nil {
			monto = *c.Monto
		}
		rows = append(rows, []any{c.NumeroContrato, c.Entidad, c.ObjetoContractual, monto, c.FechaSuscripcion, c.Estado})
	}
	return rows
}

func (w *batchWorkbook) generalSheet(rec *provider.Record) error {
	const sheet = "DatosGenerales"
	g := rec.General

	_ = w.f.SetCellValue(sheet, "A1", "Campo")
	_ = w.f.SetCellValue(sheet, "B1", "Valor")
	if err := w.f.SetCellStyle(sheet, "A1", "B1", w.headerStyle); err != nil {
		return err
	}

	rows := []struct {
		campo string
		valor string
	}{
		{"RUC", g.RUC},
		{"Razón Social", g.RazonSocial},
		{"Estado", g.Estado},
		{"Condición", g.Condicion},
		{"Tipo de Contribuyente", g.TipoContribuyente},
		{"Domicilio Completo", g.Domicilio},
		{"Departamento", g.Departamento},
		{"Provincia", g.Provincia},
		{"Distrito", g.Distrito},
		{"Teléfonos", strings.Join(g.Telefonos, ", ")},
		{"Emails", strings.Join(g.Emails, ", ")},
	}
	for i, r := range rows {
		_ = w.f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), r.campo)
		_ = w.f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), r.valor)
	}

	if err := w.f.SetColWidth(sheet, "A", "A", 25); err != nil {
		return err
	}
	return w.f.SetColWidth(sheet, "B", "B", 50)
}

func (w *batchWorkbook) fichaListSheet(sheet string, headers []string, widths []float64, rows [][]any) error {
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
	for i, values := range rows {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := w.f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// stripCompanyColumns drops the leading RUC and razón social columns the
// batch detail rows carry; a single ficha repeats them on every row for
// nothing. Placeholder rows for empty lists are dropped entirely.
func stripCompanyColumns(rows [][]any, hasEntries bool) [][]any {
	if !hasEntries {
		return nil
	}
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r[2:])
	}
	return out
}
