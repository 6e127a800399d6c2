package osce

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvillanueva/fup-consult/internal/common"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(common.OSCEConfig{
		FupBase: baseURL,
		Timeout: timeout,
	}, slog.New(slog.DiscardHandler))
}

func TestFetchGeneralData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ficha/20100070970/resumen", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"datosSunat": {"ruc": "20100070970", "razon": "ACME S.A."}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	raw, err := c.FetchGeneralData(context.Background(), "20100070970")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ACME S.A.")
}

func TestFetchGeneralDataMissingDatosSunat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"conformacion": {}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.FetchGeneralData(context.Background(), "20999999999")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindBusiness, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "20999999999")
}

func TestFetchExperiencia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contratos/20100070970", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limite"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"listaContratos": [{"numeroContrato": "CONV-2023-001"}]}`))
	}))
	defer srv.Close()

	c := NewClient(common.OSCEConfig{
		FupBase:     srv.URL,
		ExpprovBase: srv.URL,
		Timeout:     5 * time.Second,
	}, slog.New(slog.DiscardHandler))

	raw, err := c.FetchExperiencia(context.Background(), "20100070970")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "CONV-2023-001")
}

func TestGetBusinessErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultadoT01": {"codigo": "99", "mensaje": "RUC no registrado"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.FetchSocios(context.Background(), "20999999999")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindBusiness, apiErr.Kind)
	assert.Equal(t, "99", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "RUC no registrado")
}

func TestGetHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.FetchRepresentantes(context.Background(), "20100070970")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTP, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "404")
}

func TestGetMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.FetchOrganos(context.Background(), "20100070970")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTP, apiErr.Kind)
}

func TestGetTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 20*time.Millisecond)
	_, err := c.FetchGeneralData(context.Background(), "20100070970")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTimeout, apiErr.Kind)
}

func TestGetContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.FetchGeneralData(ctx, "20100070970")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || isTimeout(err))
}
