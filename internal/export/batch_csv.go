package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pvillanueva/fup-consult/internal/provider"
)

// utf8BOM makes Excel open the CSV with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BuildBatchCSV renders the batch results as a single sectioned CSV file.
func BuildBatchCSV(records []*provider.Record, originalFilename string, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteBatchCSV(&buf, records, originalFilename, generatedAt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBatchCSV streams the batch results to w as a sectioned CSV file: a
// metadata header followed by the consolidated section and the three detail
// sections. The layout mirrors the XLSX workbook. Rows are written section by
// section, so memory stays bounded regardless of record count.
func WriteBatchCSV(w io.Writer, records []*provider.Record, originalFilename string, generatedAt time.Time) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	fmt.Fprintf(w, "# REPORTE DE PROCESAMIENTO BATCH\n")
	fmt.Fprintf(w, "# Archivo Original: %s\n", originalFilename)
	fmt.Fprintf(w, "# Fecha: %s\n", generatedAt.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(w, "# Total RUCs: %d\n", len(records))
	fmt.Fprintf(w, "#\n")

	sections := []struct {
		marker  string
		headers []string
		rows    func(*provider.Record) [][]any
	}{
		{"=== DATOS CONSOLIDADOS ===", consolidatedHeaders, func(r *provider.Record) [][]any {
			return [][]any{consolidatedRow(r)}
		}},
		{"=== SOCIOS DETALLADOS ===", sociosHeaders, sociosRows},
		{"=== REPRESENTANTES DETALLADOS ===", representantesHeaders, representantesRows},
		{"=== ORGANOS DE ADMINISTRACION ===", organosHeaders, organosRows},
	}
	for i, sec := range sections {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, sec.marker+"\n"); err != nil {
			return err
		}
		if err := writeSection(w, sec.headers, records, sec.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(out io.Writer, headers []string, records []*provider.Record, rowsOf func(*provider.Record) [][]any) error {
	w := csv.NewWriter(out)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, rec := range records {
		for _, values := range rowsOf(rec) {
			row := make([]string, len(values))
			for i, v := range values {
				row[i] = cellString(v)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
