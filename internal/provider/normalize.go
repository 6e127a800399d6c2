package provider

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// resumenPayload mirrors the ficha resumen endpoint shape.
type resumenPayload struct {
	DatosSunat struct {
		Ruc          string `json:"ruc"`
		Razon        string `json:"razon"`
		Estado       string `json:"estado"`
		Condicion    string `json:"condicion"`
		TipoEmpresa  string `json:"tipoEmpresa"`
		Departamento string `json:"departamento"`
		Provincia    string `json:"provincia"`
		Distrito     string `json:"distrito"`
	} `json:"datosSunat"`
	Conformacion struct {
		Socios []struct {
			RazonSocial        string      `json:"razonSocial"`
			SiglaDocIde        string      `json:"siglaDocIde"`
			NroDocumento       string      `json:"nroDocumento"`
			DescDocIde         string      `json:"descDocIde"`
			PorcentajeAcciones json.Number `json:"porcentajeAcciones"`
			NroAcciones        *float64    `json:"nroAcciones"`
		} `json:"socios"`
		Representantes []struct {
			RazonSocial  string `json:"razonSocial"`
			SiglaDocIde  string `json:"siglaDocIde"`
			NroDocumento string `json:"nroDocumento"`
			DescDocIde   string `json:"descDocIde"`
		} `json:"representantes"`
		OrganosAdm []struct {
			ApellidosNomb string `json:"apellidosNomb"`
			SiglaDocIde   string `json:"siglaDocIde"`
			NroDocumento  string `json:"nroDocumento"`
			DescDocIde    string `json:"descDocIde"`
			DescCargo     string `json:"descCargo"`
		} `json:"organosAdm"`
	} `json:"conformacion"`
}

// NormalizeResumen converts a raw ficha resumen payload into a Record. The
// domicilio is assembled as "distrito, provincia, departamento" when a
// distrito is present, matching how the registry renders addresses.
func NormalizeResumen(raw []byte) (*Record, error) {
	var p resumenPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode resumen: %w", err)
	}

	rec := &Record{
		General: General{
			RUC:               p.DatosSunat.Ruc,
			RazonSocial:       p.DatosSunat.Razon,
			Estado:            p.DatosSunat.Estado,
			Condicion:         p.DatosSunat.Condicion,
			TipoContribuyente: p.DatosSunat.TipoEmpresa,
			Departamento:      p.DatosSunat.Departamento,
			Provincia:         p.DatosSunat.Provincia,
			Distrito:          p.DatosSunat.Distrito,
			Telefonos:         []string{},
			Emails:            []string{},
		},
		Socios:         []Shareholder{},
		Representantes: []Representative{},
		Organos:        []AdminBodyMember{},
		Experiencia:    []Contract{},
	}
	if p.DatosSunat.Distrito != "" {
		rec.General.Domicilio = fmt.Sprintf("%s, %s, %s",
			p.DatosSunat.Distrito, p.DatosSunat.Provincia, p.DatosSunat.Departamento)
	}

	for _, s := range p.Conformacion.Socios {
		rec.Socios = append(rec.Socios, Shareholder{
			NombreCompleto:          strings.TrimSpace(s.RazonSocial),
			TipoDocumento:           s.SiglaDocIde,
			NumeroDocumento:         s.NroDocumento,
			DescTipoDocumento:       s.DescDocIde,
			PorcentajeParticipacion: formatPercentage(s.PorcentajeAcciones),
			NumeroAcciones:          s.NroAcciones,
		})
	}
	for _, r := range p.Conformacion.Representantes {
		rec.Representantes = append(rec.Representantes, Representative{
			NombreCompleto:    strings.TrimSpace(r.RazonSocial),
			TipoDocumento:     r.SiglaDocIde,
			NumeroDocumento:   r.NroDocumento,
			DescTipoDocumento: r.DescDocIde,
			Cargo:             "REPRESENTANTE LEGAL",
		})
	}
	for _, o := range p.Conformacion.OrganosAdm {
		rec.Organos = append(rec.Organos, AdminBodyMember{
			NombreCompleto:    strings.TrimSpace(o.ApellidosNomb),
			TipoDocumento:     o.SiglaDocIde,
			NumeroDocumento:   o.NroDocumento,
			DescTipoDocumento: o.DescDocIde,
			Cargo:             o.DescCargo,
		})
	}
	return rec, nil
}

// formatPercentage renders a numeric participation as a plain decimal string,
// dropping a trailing ".00" so "25.00" and 25 both come out as "25".
func formatPercentage(n json.Number) string {
	s := n.String()
	if s == "" {
		return ""
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

// supplementary endpoint payloads

type sociosPayload struct {
	ListaSocios []struct {
		NombreCompleto          string      `json:"nombreCompleto"`
		TipoDocumento           string      `json:"tipoDocumento"`
		NumeroDocumento         string      `json:"numeroDocumento"`
		PorcentajeParticipacion json.Number `json:"porcentajeParticipacion"`
	} `json:"listaSocios"`
}

type representantesPayload struct {
	ListaRepresentantes []struct {
		NombreCompleto  string `json:"nombreCompleto"`
		TipoDocumento   string `json:"tipoDocumento"`
		NumeroDocumento string `json:"numeroDocumento"`
		Cargo           string `json:"cargo"`
		FechaDesde      string `json:"fechaDesde"`
	} `json:"listaRepresentantes"`
}

type experienciaPayload struct {
	ListaContratos []struct {
		NumeroContrato    string   `json:"numeroContrato"`
		Entidad           string   `json:"entidad"`
		ObjetoContractual string   `json:"objetoContractual"`
		Monto             *float64 `json:"monto"`
		FechaSuscripcion  string   `json:"fechaSuscripcion"`
		Estado            string   `json:"estado"`
	} `json:"listaContratos"`
}

type organosPayload struct {
	ListaOrganos []struct {
		NombreCompleto  string `json:"nombreCompleto"`
		TipoDocumento   string `json:"tipoDocumento"`
		NumeroDocumento string `json:"numeroDocumento"`
		Cargo           string `json:"cargo"`
		FechaDesde      string `json:"fechaDesde"`
	} `json:"listaOrganos"`
}

func normalizeSocios(raw []byte) ([]Shareholder, error) {
	var p sociosPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode socios: %w", err)
	}
	out := make([]Shareholder, 0, len(p.ListaSocios))
	for _, s := range p.ListaSocios {
		out = append(out, Shareholder{
			NombreCompleto:          s.NombreCompleto,
			TipoDocumento:           s.TipoDocumento,
			NumeroDocumento:         s.NumeroDocumento,
			PorcentajeParticipacion: formatPercentage(s.PorcentajeParticipacion),
		})
	}
	return out, nil
}

func normalizeRepresentantes(raw []byte) ([]Representative, error) {
	var p representantesPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode representantes: %w", err)
	}
	out := make([]Representative, 0, len(p.ListaRepresentantes))
	for _, r := range p.ListaRepresentantes {
		out = append(out, Representative{
			NombreCompleto:  r.NombreCompleto,
			TipoDocumento:   r.TipoDocumento,
			NumeroDocumento: r.NumeroDocumento,
			Cargo:           r.Cargo,
			FechaDesde:      r.FechaDesde,
		})
	}
	return out, nil
}

func normalizeExperiencia(raw []byte) ([]Contract, error) {
	var p experienciaPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode experiencia: %w", err)
	}
	out := make([]Contract, 0, len(p.ListaContratos))
	for _, c := range p.ListaContratos {
		out = append(out, Contract{
			NumeroContrato:    c.NumeroContrato,
			Entidad:           c.Entidad,
			ObjetoContractual: c.ObjetoContractual,
			Monto:             c.Monto,
			FechaSuscripcion:  c.FechaSuscripcion,
			Estado:            c.Estado,
		})
	}
	return out, nil
}

func normalizeOrganos(raw []byte) ([]AdminBodyMember, error) {
	var p organosPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode organos: %w", err)
	}
	out := make([]AdminBodyMember, 0, len(p.ListaOrganos))
	for _, o := range p.ListaOrganos {
		out = append(out, AdminBodyMember{
			NombreCompleto:  o.NombreCompleto,
			TipoDocumento:   o.TipoDocumento,
			NumeroDocumento: o.NumeroDocumento,
			Cargo:           o.Cargo,
			FechaDesde:      o.FechaDesde,
		})
	}
	return out, nil
}
