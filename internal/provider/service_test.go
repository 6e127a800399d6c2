package provider

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetcher returns canned payloads per endpoint, or an error when set.
type scriptedFetcher struct {
	resumen        string
	socios         string
	representantes string
	organos        string
	experiencia    string

	experienciaErr error
}

func (f *scriptedFetcher) FetchGeneralData(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(f.resumen), nil
}

func (f *scriptedFetcher) FetchSocios(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(f.socios), nil
}

func (f *scriptedFetcher) FetchRepresentantes(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(f.representantes), nil
}

func (f *scriptedFetcher) FetchOrganos(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(f.organos), nil
}

func (f *scriptedFetcher) FetchExperiencia(context.Context, string) (json.RawMessage, error) {
	if f.experienciaErr != nil {
		return nil, f.experienciaErr
	}
	return json.RawMessage(f.experiencia), nil
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{
		resumen:        sampleResumen,
		socios:         `{"listaSocios": []}`,
		representantes: `{"listaRepresentantes": []}`,
		organos:        `{"listaOrganos": []}`,
		experiencia: `{"listaContratos": [
			{"numeroContrato": "CONV-2023-001", "entidad": "MUNICIPALIDAD DE LIMA", "objetoContractual": "SUMINISTRO DE ALIMENTOS", "monto": 250000, "estado": "CULMINADO"}
		]}`,
	}
}

func TestGetProviderDataMergesExperiencia(t *testing.T) {
	svc := NewService(newScriptedFetcher(), slog.New(slog.DiscardHandler))

	rec, err := svc.GetProviderData(context.Background(), "20100070970")
	require.NoError(t, err)

	require.Len(t, rec.Experiencia, 1)
	assert.Equal(t, "CONV-2023-001", rec.Experiencia[0].NumeroContrato)
	assert.Equal(t, "MUNICIPALIDAD DE LIMA", rec.Experiencia[0].Entidad)

	// empty supplementary lists keep the resumen conformacion data
	require.Len(t, rec.Socios, 1)
	assert.Equal(t, "INRETAIL PERU CORP.", rec.Socios[0].NombreCompleto)
}

func TestGetProviderDataExperienciaBestEffort(t *testing.T) {
	fetcher := newScriptedFetcher()
	fetcher.experienciaErr = errors.New("osce: timeout")
	svc := NewService(fetcher, slog.New(slog.DiscardHandler))

	rec, err := svc.GetProviderData(context.Background(), "20100070970")
	require.NoError(t, err)
	assert.Empty(t, rec.Experiencia)
	assert.NotNil(t, rec.Experiencia, "record keeps an empty contract list when the endpoint is down")
}
