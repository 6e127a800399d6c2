package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	fupv1 "github.com/pvillanueva/fup-consult/gen/proto/fup/v1"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/export"
	"github.com/pvillanueva/fup-consult/internal/osce"
	"github.com/pvillanueva/fup-consult/internal/provider"
)

var rucPattern = regexp.MustCompile(`^\d{11}$`)

type ProviderServer struct {
	fupv1.UnimplementedProviderServiceServer
	svc     *provider.Service
	exports *export.Service
	logger  *slog.Logger
}

func NewProviderServer(svc *provider.Service, exports *export.Service, logger *slog.Logger) *ProviderServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProviderServer{svc: svc, exports: exports, logger: logger}
}

func (s *ProviderServer) GetProvider(ctx context.Context, req *fupv1.GetProviderRequest) (*fupv1.GetProviderResponse, error) {
	ruc, err := parseRUC(req.GetRuc())
	if err != nil {
		return nil, err
	}
	rec, err := s.svc.GetProviderData(ctx, ruc)
	if err != nil {
		return nil, providerLookupError(s.logger, ruc, err)
	}
	return &fupv1.GetProviderResponse{Record: recordToProto(rec)}, nil
}

func (s *ProviderServer) ExportProvider(ctx context.Context, req *fupv1.ExportProviderRequest) (*fupv1.ExportProviderResponse, error) {
	ruc, err := parseRUC(req.GetRuc())
	if err != nil {
		return nil, err
	}
	rec, err := s.svc.GetProviderData(ctx, ruc)
	if err != nil {
		return nil, providerLookupError(s.logger, ruc, err)
	}
	xlsx, err := s.exports.FichaXLSX(rec)
	if err != nil {
		s.logger.Error("ficha export failed", "ruc", ruc, "err", err)
		return nil, common.InternalError("ficha export failed")
	}
	return &fupv1.ExportProviderResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("ficha_fup_%s.xlsx", ruc),
	}, nil
}

func parseRUC(raw string) (string, error) {
	ruc := strings.TrimSpace(raw)
	if !rucPattern.MatchString(ruc) {
		return "", common.InvalidArgumentError("ruc must be exactly 11 digits")
	}
	return ruc, nil
}

func providerLookupError(logger *slog.Logger, ruc string, err error) error {
	var apiErr *osce.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == osce.KindBusiness {
		return common.NotFoundError(fmt.Sprintf("no registry data for ruc %s", ruc))
	}
	logger.Error("provider lookup failed", "ruc", ruc, "err", err)
	return common.InternalError("provider lookup failed")
}

func recordToProto(rec *provider.Record) *fupv1.ProviderRecord {
	g := rec.General
	pb := &fupv1.ProviderRecord{
		General: &fupv1.GeneralData{
			Ruc:               g.RUC,
			RazonSocial:       g.RazonSocial,
			Estado:            g.Estado,
			Condicion:         g.Condicion,
			TipoContribuyente: g.TipoContribuyente,
			Domicilio:         g.Domicilio,
			Departamento:      g.Departamento,
			Provincia:         g.Provincia,
			Distrito:          g.Distrito,
			Telefonos:         g.Telefonos,
			Emails:            g.Emails,
		},
	}
	for _, s := range rec.Socios {
		socio := &fupv1.Shareholder{
			NombreCompleto:          s.NombreCompleto,
			TipoDocumento:           s.TipoDocumento,
			NumeroDocumento:         s.NumeroDocumento,
			PorcentajeParticipacion: s.PorcentajeParticipacion,
			DescTipoDocumento:       s.DescTipoDocumento,
			FechaIngreso:            s.FechaIngreso,
		}
		if s.NumeroAcciones != nil {
			socio.NumeroAcciones = *s.NumeroAcciones
		}
		pb.Socios = append(pb.Socios, socio)
	}
	for _, r := range rec.Representantes {
		pb.Representantes = append(pb.Representantes, &fupv1.Representative{
			NombreCompleto:    r.NombreCompleto,
			TipoDocumento:     r.TipoDocumento,
			NumeroDocumento:   r.NumeroDocumento,
			Cargo:             r.Cargo,
			DescTipoDocumento: r.DescTipoDocumento,
			FechaDesde:        r.FechaDesde,
		})
	}
	for _, c := range rec.Experiencia {
		contrato := &fupv1.Contract{
			NumeroContrato:    c.NumeroContrato,
			Entidad:           c.Entidad,
			ObjetoContractual: c.ObjetoContractual,
			FechaSuscripcion:  c.FechaSuscripcion,
			Estado:            c.Estado,
		}
		if c.Monto != nil {
			contrato.Monto = *c.Monto
		}
		pb.Experiencia = append(pb.Experiencia, contrato)
	}
	for _, o := range rec.Organos {
		pb.OrganosAdministracion = append(pb.OrganosAdministracion, &fupv1.AdminBodyMember{
			NombreCompleto:    o.NombreCompleto,
			TipoDocumento:     o.TipoDocumento,
			NumeroDocumento:   o.NumeroDocumento,
			Cargo:             o.Cargo,
			DescTipoDocumento: o.DescTipoDocumento,
			TipoOrgano:        o.TipoOrgano,
			FechaDesde:        o.FechaDesde,
		})
	}
	return pb
}
