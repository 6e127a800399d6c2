package provider

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pvillanueva/fup-consult/internal/common"
)

// Fetcher is the slice of the OSCE client the aggregation service needs.
type Fetcher interface {
	FetchGeneralData(ctx context.Context, ruc string) (json.RawMessage, error)
	FetchSocios(ctx context.Context, ruc string) (json.RawMessage, error)
	FetchRepresentantes(ctx context.Context, ruc string) (json.RawMessage, error)
	FetchOrganos(ctx context.Context, ruc string) (json.RawMessage, error)
	FetchExperiencia(ctx context.Context, ruc string) (json.RawMessage, error)
}

// Service aggregates the registry endpoints into one Record per RUC.
type Service struct {
	client Fetcher
	logger *slog.Logger
}

func NewService(client Fetcher, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetProviderData fetches the ficha resumen for a RUC and enriches it with
// the supplementary socios, representantes, organos and experiencia
// endpoints.
//
// The resumen fetch is mandatory: if it fails or the payload does not match
// the expected shape, the lookup fails. The supplementary endpoints are best
// effort; their data replaces the resumen conformacion lists when non-empty,
// and a failure there only downgrades the record to the resumen data.
func (s *Service) GetProviderData(ctx context.Context, ruc string) (*Record, error) {
	raw, err := s.client.FetchGeneralData(ctx, ruc)
	if err != nil {
		return nil, err
	}
	if err := ValidateResumen(raw); err != nil {
		return nil, common.WrapError(err, "invalid resumen payload")
	}
	rec, err := NormalizeResumen(raw)
	if err != nil {
		return nil, common.WrapError(err, "normalize resumen")
	}

	if socios, ok := s.fetchSocios(ctx, ruc); ok && len(socios) > 0 {
		rec.Socios = socios
	}
	if reps, ok := s.fetchRepresentantes(ctx, ruc); ok && len(reps) > 0 {
		rec.Representantes = reps
	}
	if organos, ok := s.fetchOrganos(ctx, ruc); ok && len(organos) > 0 {
		rec.Organos = organos
	}
	if contratos, ok := s.fetchExperiencia(ctx, ruc); ok {
		rec.Experiencia = contratos
	}
	return rec, nil
}

func (s *Service) fetchSocios(ctx context.Context, ruc string) ([]Shareholder, bool) {
	raw, err := s.client.FetchSocios(ctx, ruc)
	if err != nil {
		s.logger.Warn("could not fetch socios", "ruc", ruc, "error", err)
		return nil, false
	}
	socios, err := normalizeSocios(raw)
	if err != nil {
		s.logger.Warn("could not decode socios", "ruc", ruc, "error", err)
		return nil, false
	}
	return socios, true
}

func (s *Service) fetchRepresentantes(ctx context.Context, ruc string) ([]Representative, bool) {
	raw, err := s.client.FetchRepresentantes(ctx, ruc)
	if err != nil {
		s.logger.Warn("could not fetch representantes", "ruc", ruc, "error", err)
		return nil, false
	}
	reps, err := normalizeRepresentantes(raw)
	if err != nil {
		s.logger.Warn("could not decode representantes", "ruc", ruc, "error", err)
		return nil, false
	}
	return reps, true
}

func (s *Service) fetchExperiencia(ctx context.Context, ruc string) ([]Contract, bool) {
	raw, err := s.client.FetchExperiencia(ctx, ruc)
	if err != nil {
		s.logger.Warn("could not fetch experiencia", "ruc", ruc, "error", err)
		return nil, false
	}
	contratos, err := normalizeExperiencia(raw)
	if err != nil {
		s.logger.Warn("could not decode experiencia", "ruc", ruc, "error", err)
		return nil, false
	}
	return contratos, true
}

func (s *Service) fetchOrganos(ctx context.Context, ruc string) ([]AdminBodyMember, bool) {
	raw, err := s.client.FetchOrganos(ctx, ruc)
	if err != nil {
		s.logger.Warn("could not fetch organos", "ruc", ruc, "error", err)
		return nil, false
	}
	organos, err := normalizeOrganos(raw)
	if err != nil {
		s.logger.Warn("could not decode organos", "ruc", ruc, "error", err)
		return nil, false
	}
	return organos, true
}
