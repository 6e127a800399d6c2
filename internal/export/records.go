// Package export renders consolidated batch results and single provider
// fichas as XLSX or CSV artifacts.
package export

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/pvillanueva/fup-consult/internal/entity"
	"github.com/pvillanueva/fup-consult/internal/provider"
)

// consolidatedHeaders is the column set of the "Datos Consolidados" sheet and
// the matching CSV section.
var consolidatedHeaders = []string{
	"RUC",
	"Razón Social",
	"Estado",
	"Condición",
	"Tipo de Contribuyente",
	"Domicilio",
	"Departamento",
	"Provincia",
	"Distrito",
	"Teléfonos",
	"Emails",
	"N° Socios",
	"N° Representantes",
	"N° Órganos Administración",
}

var sociosHeaders = []string{
	"RUC Empresa",
	"Razón Social Empresa",
	"Nombre Completo Socio",
	"Tipo Doc",
	"Descripción Documento",
	"Número Documento",
	"Participación %",
	"Número de Acciones",
	"Fecha Ingreso",
}

var representantesHeaders = []string{
	"RUC Empresa",
	"Razón Social Empresa",
	"Nombre Completo",
	"Tipo Doc",
	"Descripción Documento",
	"Número Documento",
	"Cargo",
	"Fecha Desde",
}

var organosHeaders = []string{
	"RUC Empresa",
	"Razón Social Empresa",
	"Nombre Completo",
	"Tipo Doc",
	"Descripción Documento",
	"Número Documento",
	"Tipo de Órgano",
	"Cargo",
	"Fecha Desde",
}

// decodeResults converts completed item payloads back into provider records.
// Undecodable payloads are skipped with a warning rather than sinking the
// whole export.
func decodeResults(items []*entity.BatchItem, logger *slog.Logger) []*provider.Record {
	records := make([]*provider.Record, 0, len(items))
	for _, item := range items {
		if len(item.ResultData) == 0 {
			continue
		}
		var rec provider.Record
		if err := json.Unmarshal(item.ResultData, &rec); err != nil {
			logger.Warn("skipping undecodable result", "item_id", item.ID, "ruc", item.RUC, "err", err)
			continue
		}
		records = append(records, &rec)
	}
	return records
}

func consolidatedRow(rec *provider.Record) []any {
	g := rec.General
	return []any{
		g.RUC,
		g.RazonSocial,
		g.Estado,
		g.Condicion,
		g.TipoContribuyente,
		g.Domicilio,
		g.Departamento,
		g.Provincia,
		g.Distrito,
		strings.Join(g.Telefonos, ", "),
		strings.Join(g.Emails, ", "),
		len(rec.Socios),
		len(rec.Representantes),
		len(rec.Organos),
	}
}

// sociosRows expands a record into one row per socio, or a single
// placeholder row when the company has none.
func sociosRows(rec *provider.Record) [][]any {
	g := rec.General
	if len(rec.Socios) == 0 {
		return [][]any{{g.RUC, g.RazonSocial, "Sin socios registrados", "", "", "", "", "", ""}}
	}
	rows := make([][]any, 0, len(rec.Socios))
	for _, s := range rec.Socios {
		var acciones any = ""
		if s.NumeroAcciones != nil {
			acciones = *s.NumeroAcciones
		}
		rows = append(rows, []any{
			g.RUC, g.RazonSocial,
			s.NombreCompleto, s.TipoDocumento, s.DescTipoDocumento, s.NumeroDocumento,
			s.PorcentajeParticipacion, acciones, s.FechaIngreso,
		})
	}
	return rows
}

func representantesRows(rec *provider.Record) [][]any {
	g := rec.General
	if len(rec.Representantes) == 0 {
		return [][]any{{g.RUC, g.RazonSocial, "Sin representantes registrados", "", "", "", "", ""}}
	}
	rows := make([][]any, 0, len(rec.Representantes))
	for _, r := range rec.Representantes {
		rows = append(rows, []any{
			g.RUC, g.RazonSocial,
			r.NombreCompleto, r.TipoDocumento, r.DescTipoDocumento, r.NumeroDocumento,
			r.Cargo, r.FechaDesde,
		})
	}
	return rows
}

func organosRows(rec *provider.Record) [][]any {
	g := rec.General
	if len(rec.Organos) == 0 {
		return [][]any{{g.RUC, g.RazonSocial, "Sin órganos de administración registrados", "", "", "", "", "", ""}}
	}
	rows := make([][]any, 0, len(rec.Organos))
	for _, o := range rec.Organos {
		rows = append(rows, []any{
			g.RUC, g.RazonSocial,
			o.NombreCompleto, o.TipoDocumento, o.DescTipoDocumento, o.NumeroDocumento,
			o.TipoOrgano, o.Cargo, o.FechaDesde,
		})
	}
	return rows
}

type statCount struct {
	Key   string
	Count int
}

// countByEstado tallies records per estado, sorted alphabetically.
func countByEstado(records []*provider.Record) []statCount {
	return tally(records, func(r *provider.Record) string { return r.General.Estado }, false, 0)
}

// countByTipo tallies records per tipo de contribuyente, highest counts
// first, capped at ten entries.
func countByTipo(records []*provider.Record) []statCount {
	return tally(records, func(r *provider.Record) string { return r.General.TipoContribuyente }, true, 10)
}

func tally(records []*provider.Record, key func(*provider.Record) string, byCount bool, limit int) []statCount {
	counts := make(map[string]int)
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = "DESCONOCIDO"
		}
		counts[k]++
	}
	out := make([]statCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, statCount{Key: k, Count: n})
	}
	if byCount {
		sort.Slice(out, func(i, j int) bool {
			if out[i].Count != out[j].Count {
				return out[i].Count > out[j].Count
			}
			return out[i].Key < out[j].Key
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
