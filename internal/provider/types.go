// Package provider defines the normalized provider record aggregated from the
// OSCE registry APIs and the mapping from raw upstream payloads onto it.
package provider

// General carries the SUNAT-sourced company data for one RUC.
type General struct {
	RUC               string   `json:"ruc"`
	RazonSocial       string   `json:"razon_social"`
	Estado            string   `json:"estado"`
	Condicion         string   `json:"condicion"`
	TipoContribuyente string   `json:"tipo_contribuyente"`
	Domicilio         string   `json:"domicilio,omitempty"`
	Departamento      string   `json:"departamento,omitempty"`
	Provincia         string   `json:"provincia,omitempty"`
	Distrito          string   `json:"distrito,omitempty"`
	Telefonos         []string `json:"telefonos"`
	Emails            []string `json:"emails"`
}

// Shareholder is one socio of the company.
type Shareholder struct {
	NombreCompleto          string   `json:"nombre_completo"`
	TipoDocumento           string   `json:"tipo_documento"`
	NumeroDocumento         string   `json:"numero_documento"`
	PorcentajeParticipacion string   `json:"porcentaje_participacion,omitempty"`
	NumeroAcciones          *float64 `json:"numero_acciones,omitempty"`
	DescTipoDocumento       string   `json:"desc_tipo_documento,omitempty"`
	FechaIngreso            string   `json:"fecha_ingreso,omitempty"`
}

// Representative is one legal representative.
type Representative struct {
	NombreCompleto    string `json:"nombre_completo"`
	TipoDocumento     string `json:"tipo_documento"`
	NumeroDocumento   string `json:"numero_documento"`
	Cargo             string `json:"cargo,omitempty"`
	DescTipoDocumento string `json:"desc_tipo_documento,omitempty"`
	FechaDesde        string `json:"fecha_desde,omitempty"`
}

// AdminBodyMember is one member of an administrative body (gerencia,
// directorio, ...).
type AdminBodyMember struct {
	NombreCompleto    string `json:"nombre_completo"`
	TipoDocumento     string `json:"tipo_documento"`
	NumeroDocumento   string `json:"numero_documento"`
	Cargo             string `json:"cargo"`
	DescTipoDocumento string `json:"desc_tipo_documento,omitempty"`
	TipoOrgano        string `json:"tipo_organo,omitempty"`
	FechaDesde        string `json:"fecha_desde,omitempty"`
}

// Contract is one public-procurement contract from the experiencia API.
type Contract struct {
	NumeroContrato    string   `json:"numero_contrato"`
	Entidad           string   `json:"entidad"`
	ObjetoContractual string   `json:"objeto_contractual"`
	Monto             *float64 `json:"monto,omitempty"`
	FechaSuscripcion  string   `json:"fecha_suscripcion,omitempty"`
	Estado            string   `json:"estado,omitempty"`
}

// Record is the complete normalized provider record for one RUC. It is the
// payload stored on a completed batch item and the unit the exporters consume.
type Record struct {
	General        General           `json:"general"`
	Socios         []Shareholder     `json:"socios"`
	Representantes []Representative  `json:"representantes"`
	Organos        []AdminBodyMember `json:"organos_administracion"`
	Experiencia    []Contract        `json:"experiencia"`
}
