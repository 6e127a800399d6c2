package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumen = `{
	"datosSunat": {
		"ruc": "20100070970",
		"razon": "SUPERMERCADOS PERUANOS S.A.",
		"estado": "ACTIVO",
		"condicion": "HABIDO",
		"tipoEmpresa": "SOCIEDAD ANONIMA",
		"departamento": "LIMA",
		"provincia": "LIMA",
		"distrito": "SAN BORJA"
	},
	"conformacion": {
		"socios": [
			{"razonSocial": " INRETAIL PERU CORP. ", "siglaDocIde": "RUC", "nroDocumento": "20563265071", "porcentajeAcciones": 99.98}
		],
		"representantes": [
			{"razonSocial": "PEREZ TORRES JUAN", "siglaDocIde": "DNI", "nroDocumento": "40211233"}
		],
		"organosAdm": [
			{"apellidosNomb": "GARCIA LOPEZ MARIA", "siglaDocIde": "DNI", "nroDocumento": "10234567", "descCargo": "GERENTE GENERAL"}
		]
	}
}`

func TestNormalizeResumen(t *testing.T) {
	rec, err := NormalizeResumen([]byte(sampleResumen))
	require.NoError(t, err)

	assert.Equal(t, "20100070970", rec.General.RUC)
	assert.Equal(t, "SUPERMERCADOS PERUANOS S.A.", rec.General.RazonSocial)
	assert.Equal(t, "ACTIVO", rec.General.Estado)
	assert.Equal(t, "HABIDO", rec.General.Condicion)
	assert.Equal(t, "SOCIEDAD ANONIMA", rec.General.TipoContribuyente)
	assert.Equal(t, "SAN BORJA, LIMA, LIMA", rec.General.Domicilio)

	require.Len(t, rec.Socios, 1)
	assert.Equal(t, "INRETAIL PERU CORP.", rec.Socios[0].NombreCompleto)
	assert.Equal(t, "99.98", rec.Socios[0].PorcentajeParticipacion)

	require.Len(t, rec.Representantes, 1)
	assert.Equal(t, "REPRESENTANTE LEGAL", rec.Representantes[0].Cargo)

	require.Len(t, rec.Organos, 1)
	assert.Equal(t, "GERENTE GENERAL", rec.Organos[0].Cargo)
}

func TestNormalizeResumenNoConformacion(t *testing.T) {
	raw := `{"datosSunat": {"ruc": "20600055519", "razon": "ACME S.A.C."}}`
	rec, err := NormalizeResumen([]byte(raw))
	require.NoError(t, err)

	assert.Empty(t, rec.General.Domicilio)
	assert.Empty(t, rec.Socios)
	assert.Empty(t, rec.Representantes)
	assert.Empty(t, rec.Organos)
}

func TestValidateResumen(t *testing.T) {
	require.NoError(t, ValidateResumen([]byte(sampleResumen)))

	err := ValidateResumen([]byte(`{"conformacion": {}}`))
	require.Error(t, err)

	err = ValidateResumen([]byte(`{"datosSunat": {"razon": "SIN RUC"}}`))
	require.Error(t, err)
}

func TestNormalizeSupplementaryLists(t *testing.T) {
	socios, err := normalizeSocios([]byte(`{"listaSocios": [
		{"nombreCompleto": "LUIS RAMOS", "tipoDocumento": "DNI", "numeroDocumento": "45678901", "porcentajeParticipacion": 50}
	]}`))
	require.NoError(t, err)
	require.Len(t, socios, 1)
	assert.Equal(t, "50", socios[0].PorcentajeParticipacion)

	reps, err := normalizeRepresentantes([]byte(`{"listaRepresentantes": [
		{"nombreCompleto": "ANA QUISPE", "tipoDocumento": "DNI", "numeroDocumento": "41234567", "cargo": "APODERADO", "fechaDesde": "2020-03-15"}
	]}`))
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "APODERADO", reps[0].Cargo)
	assert.Equal(t, "2020-03-15", reps[0].FechaDesde)

	organos, err := normalizeOrganos([]byte(`{"listaOrganos": []}`))
	require.NoError(t, err)
	assert.Empty(t, organos)
}

func TestNormalizeExperiencia(t *testing.T) {
	contratos, err := normalizeExperiencia([]byte(`{"listaContratos": [
		{"numeroContrato": "CONV-2023-001", "entidad": "MUNICIPALIDAD DE LIMA", "objetoContractual": "SUMINISTRO DE ALIMENTOS", "monto": 250000.5, "fechaSuscripcion": "2023-05-10", "estado": "CULMINADO"},
		{"numeroContrato": "CONV-2024-017", "entidad": "GOBIERNO REGIONAL DE CUSCO", "objetoContractual": "SERVICIO DE LIMPIEZA"}
	]}`))
	require.NoError(t, err)
	require.Len(t, contratos, 2)
	assert.Equal(t, "MUNICIPALIDAD DE LIMA", contratos[0].Entidad)
	require.NotNil(t, contratos[0].Monto)
	assert.Equal(t, 250000.5, *contratos[0].Monto)
	assert.Nil(t, contratos[1].Monto)

	empty, err := normalizeExperiencia([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = normalizeExperiencia([]byte(`{"listaContratos": "no"}`))
	require.Error(t, err)
}
