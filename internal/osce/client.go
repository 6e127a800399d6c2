// Package osce talks to the OSCE public provider-registry APIs. Every call is
// a single attempt; retry decisions belong to the caller.
package osce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pvillanueva/fup-consult/internal/common"
)

const resultOK = "00"

type Client struct {
	cfg  common.OSCEConfig
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg common.OSCEConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// FetchGeneralData retrieves the ficha resumen for a RUC: datosSunat plus the
// conformacion block (socios, representantes, organosAdm). This is the one
// required call per item.
func (c *Client) FetchGeneralData(ctx context.Context, ruc string) (json.RawMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("%s/ficha/%s/resumen", c.cfg.FupBase, ruc))
	if err != nil {
		return nil, err
	}
	var peek struct {
		DatosSunat json.RawMessage `json:"datosSunat"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return nil, httpError("malformed response body", err)
	}
	if len(peek.DatosSunat) == 0 || bytes.Equal(peek.DatosSunat, []byte("null")) {
		return nil, businessError("", fmt.Sprintf("no data found for RUC %s", ruc))
	}
	return raw, nil
}

// FetchRepresentantes retrieves the legal-representatives list.
func (c *Client) FetchRepresentantes(ctx context.Context, ruc string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/representantes/%s", c.cfg.FupBase, ruc))
}

// FetchSocios retrieves the shareholders list.
func (c *Client) FetchSocios(ctx context.Context, ruc string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/sociedades/%s", c.cfg.FupBase, ruc))
}

// FetchOrganos retrieves the administrative-bodies list.
func (c *Client) FetchOrganos(ctx context.Context, ruc string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/organos-administracion/%s", c.cfg.FupBase, ruc))
}

// experienciaLimit caps how many contracts the experiencia API returns.
const experienciaLimit = 50

// FetchExperiencia retrieves the provider's public-procurement contracts from
// the experiencia API.
func (c *Client) FetchExperiencia(ctx context.Context, ruc string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/contratos/%s?limite=%d", c.cfg.ExpprovBase, ruc, experienciaLimit))
}

func (c *Client) get(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, httpError("build request", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("osce request", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError(err)
		}
		return nil, httpError("request error", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("osce response body close error", "error", err)
		}
	}()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		if isTimeout(err) {
			return nil, timeoutError(err)
		}
		return nil, httpError("read response body", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httpError(fmt.Sprintf("HTTP error %d", resp.StatusCode), nil)
	}

	raw := buf.Bytes()
	// The APIs signal business errors inside a 200 body.
	var envelope struct {
		ResultadoT01 *struct {
			Codigo  string `json:"codigo"`
			Mensaje string `json:"mensaje"`
		} `json:"resultadoT01"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, httpError("malformed response body", err)
	}
	if envelope.ResultadoT01 != nil && envelope.ResultadoT01.Codigo != resultOK {
		return nil, businessError(envelope.ResultadoT01.Codigo, envelope.ResultadoT01.Mensaje)
	}
	return raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
