package batch

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildRUCWorkbook(t *testing.T, rucs []string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "RUC"))
	for i, ruc := range rucs {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, f.SetCellValue(sheet, cell, ruc))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestSubmitFileXLSX(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, newFakeLookup(), &fakeAssembler{})

	content := buildRUCWorkbook(t, []string{
		"20100070970",
		"20600055519",
		"20100070970", // duplicate
		"RUC pendiente",
		"",
	})

	job, err := svc.SubmitFile(context.Background(), "proveedores.xlsx", content)
	require.NoError(t, err)
	assert.Equal(t, "proveedores.xlsx", job.Filename)
	assert.Equal(t, 2, job.TotalItems)
}

func TestSubmitFileXLSXHeaderOnly(t *testing.T) {
	svc := newTestService(newMemStore(), newFakeLookup(), &fakeAssembler{})

	content := buildRUCWorkbook(t, nil)
	_, err := svc.SubmitFile(context.Background(), "vacio.xlsx", content)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestSubmitFileInvalidXLSX(t *testing.T) {
	svc := newTestService(newMemStore(), newFakeLookup(), &fakeAssembler{})

	_, err := svc.SubmitFile(context.Background(), "roto.xlsx", []byte("not a workbook"))
	require.Error(t, err)
}

func TestSubmitFilePlainText(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, newFakeLookup(), &fakeAssembler{})

	content := []byte("20100070970\n20600055519\nbogus\n20331066703,EMPRESA SAC\n")
	job, err := svc.SubmitFile(context.Background(), "rucs.txt", content)
	require.NoError(t, err)
	assert.Equal(t, 3, job.TotalItems)

	items, err := store.ListOutstanding(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "20331066703", items[2].RUC)
}

func TestSanitizeRUCs(t *testing.T) {
	out := sanitizeRUCs([]string{
		" 20100070970",
		"20100070970 ",
		"2010007097",   // too short
		"201000709701", // too long
		"20x00070970",
		"20600055519",
	})
	assert.Equal(t, []string{"20100070970", "20600055519"}, out)
}
