package dto

// PageRequest paginación para listados append-only (movimientos, transferencias).
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset están fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// RevealRequest parámetros de los listados con revelado incremental (?q=&page=).
type RevealRequest struct {
	Query string `query:"q"`
	Page  int    `query:"page"`
}

// RevealPage metadatos del prefijo visible: page páginas de page_size elementos.
type RevealPage struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Visible  int  `json:"visible"`
	Total    int  `json:"total"`
	HasMore  bool `json:"has_more"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
