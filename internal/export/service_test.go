package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pvillanueva/fup-consult/internal/entity"
	"github.com/pvillanueva/fup-consult/internal/provider"
)

func sampleRecords() []*provider.Record {
	return []*provider.Record{
		{
			General: provider.General{
				RUC:               "20100070970",
				RazonSocial:       "SUPERMERCADOS PERUANOS S.A.",
				Estado:            "ACTIVO",
				Condicion:         "HABIDO",
				TipoContribuyente: "SOCIEDAD ANONIMA",
				Domicilio:         "SAN BORJA, LIMA, LIMA",
				Departamento:      "LIMA",
				Provincia:         "LIMA",
				Distrito:          "SAN BORJA",
				Telefonos:         []string{"016114949"},
				Emails:            []string{"contacto@spsa.pe"},
			},
			Socios: []provider.Shareholder{
				{NombreCompleto: "INRETAIL PERU CORP.", TipoDocumento: "RUC", NumeroDocumento: "20563265071", PorcentajeParticipacion: "99.98"},
			},
			Representantes: []provider.Representative{
				{NombreCompleto: "PEREZ TORRES JUAN", TipoDocumento: "DNI", NumeroDocumento: "40211233", Cargo: "REPRESENTANTE LEGAL"},
			},
			Organos: []provider.AdminBodyMember{
				{NombreCompleto: "GARCIA LOPEZ MARIA", TipoDocumento: "DNI", NumeroDocumento: "10234567", Cargo: "GERENTE GENERAL"},
			},
			Experiencia: []provider.Contract{
				{NumeroContrato: "CONV-2023-001", Entidad: "MUNICIPALIDAD DE LIMA", ObjetoContractual: "SUMINISTRO DE ALIMENTOS", Monto: montoPtr(250000), FechaSuscripcion: "2023-05-10", Estado: "CULMINADO"},
			},
		},
		{
			General: provider.General{
				RUC:         "20600055519",
				RazonSocial: "ACME S.A.C.",
				Estado:      "BAJA DE OFICIO",
			},
		},
	}
}

func montoPtr(v float64) *float64 { return &v }

func itemsFor(t *testing.T, records []*provider.Record) []*entity.BatchItem {
	t.Helper()
	jobID := uuid.New()
	items := make([]*entity.BatchItem, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		items = append(items, &entity.BatchItem{
			ID:         uuid.New(),
			JobID:      jobID,
			RUC:        rec.General.RUC,
			ResultData: data,
		})
	}
	return items
}

func TestBuildBatchXLSX(t *testing.T) {
	records := sampleRecords()
	f, err := BuildBatchXLSX(records, "proveedores.xlsx", time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC), false)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		sheetResumen, sheetConsolidado, sheetSocios, sheetRepresentantes, sheetOrganos,
	}, f.GetSheetList())

	title, err := f.GetCellValue(sheetResumen, "A1")
	require.NoError(t, err)
	assert.Equal(t, "RESUMEN DE PROCESAMIENTO BATCH", title)

	total, err := f.GetCellValue(sheetResumen, "B5")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	ruc, err := f.GetCellValue(sheetConsolidado, "A2")
	require.NoError(t, err)
	assert.Equal(t, "20100070970", ruc)
	numSocios, err := f.GetCellValue(sheetConsolidado, "L2")
	require.NoError(t, err)
	assert.Equal(t, "1", numSocios)

	// the second company has no socios, so its row is a placeholder
	placeholder, err := f.GetCellValue(sheetSocios, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Sin socios registrados", placeholder)
}

func TestBuildBatchXLSXStreamed(t *testing.T) {
	records := sampleRecords()
	f, err := BuildBatchXLSX(records, "proveedores.xlsx", time.Now(), true)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows(sheetConsolidado)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, consolidatedHeaders, rows[0])
	assert.Equal(t, "20100070970", rows[1][0])
}

func TestBuildBatchCSV(t *testing.T) {
	records := sampleRecords()
	data, err := BuildBatchCSV(records, "proveedores.xlsx", time.Now())
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, utf8BOM))
	text := string(bytes.TrimPrefix(data, utf8BOM))

	assert.True(t, strings.HasPrefix(text, "# REPORTE DE PROCESAMIENTO BATCH"))
	assert.Contains(t, text, "# Archivo Original: proveedores.xlsx")
	assert.Contains(t, text, "=== DATOS CONSOLIDADOS ===")
	assert.Contains(t, text, "=== SOCIOS DETALLADOS ===")
	assert.Contains(t, text, "=== REPRESENTANTES DETALLADOS ===")
	assert.Contains(t, text, "=== ORGANOS DE ADMINISTRACION ===")
	assert.Contains(t, text, "20100070970,SUPERMERCADOS PERUANOS S.A.,ACTIVO")
	assert.Contains(t, text, "Sin representantes registrados")
}

func TestAssembleResult(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, slog.New(slog.DiscardHandler))

	records := sampleRecords()
	job := &entity.BatchJob{ID: uuid.New(), Filename: "proveedores.xlsx"}
	path, err := svc.AssembleResult(context.Background(), job, itemsFor(t, records))
	require.NoError(t, err)
	assert.Contains(t, path, "batch_result_"+job.ID.String()+".xlsx")

	_, err = os.Stat(path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 5)
}

func TestAssembleResultLargeDatasetWritesCSV(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, slog.New(slog.DiscardHandler))

	jobID := uuid.New()
	items := make([]*entity.BatchItem, 0, LargeDatasetThreshold+1)
	for i := 0; i <= LargeDatasetThreshold; i++ {
		ruc := fmt.Sprintf("20%09d", i+1)
		data, err := json.Marshal(&provider.Record{General: provider.General{RUC: ruc, RazonSocial: "EMPRESA " + ruc, Estado: "ACTIVO"}})
		require.NoError(t, err)
		items = append(items, &entity.BatchItem{ID: uuid.New(), JobID: jobID, RUC: ruc, ResultData: data})
	}

	job := &entity.BatchJob{ID: jobID, Filename: "masivo.xlsx"}
	path, err := svc.AssembleResult(context.Background(), job, items)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM))
	text := string(data)
	assert.Contains(t, text, "# Total RUCs: 10001")
	assert.Contains(t, text, "=== DATOS CONSOLIDADOS ===")
}

func TestAssembleResultSkipsBadPayloads(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, slog.New(slog.DiscardHandler))

	items := itemsFor(t, sampleRecords())
	items = append(items, &entity.BatchItem{ID: uuid.New(), RUC: "20111111111", ResultData: json.RawMessage("{broken")})

	job := &entity.BatchJob{ID: uuid.New(), Filename: "proveedores.xlsx"}
	path, err := svc.AssembleResult(context.Background(), job, items)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetConsolidado)
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + two good records
}

func TestFichaXLSX(t *testing.T) {
	svc := NewService(t.TempDir(), slog.New(slog.DiscardHandler))

	data, err := svc.FichaXLSX(sampleRecords()[0])
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"DatosGenerales", "SociosAccionistas", "Representantes", "OrganosAdministracion", "Experiencia"}, f.GetSheetList())

	// DatosGenerales is a Campo/Valor listing: RUC first, then razón social
	v, err := f.GetCellValue("DatosGenerales", "B2")
	require.NoError(t, err)
	assert.Equal(t, "20100070970", v)

	v, err = f.GetCellValue("DatosGenerales", "B3")
	require.NoError(t, err)
	assert.Equal(t, "SUPERMERCADOS PERUANOS S.A.", v)

	v, err = f.GetCellValue("SociosAccionistas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INRETAIL PERU CORP.", v)

	v, err = f.GetCellValue("Experiencia", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CONV-2023-001", v)
	v, err = f.GetCellValue("Experiencia", "B2")
	require.NoError(t, err)
	assert.Equal(t, "MUNICIPALIDAD DE LIMA", v)
}

func TestFichaXLSXWithoutExperiencia(t *testing.T) {
	svc := NewService(t.TempDir(), slog.New(slog.DiscardHandler))

	data, err := svc.FichaXLSX(sampleRecords()[1])
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Experiencia", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Sin información disponible", v)
}
