package dto

import "time"

// ReportRequest parámetros de GET /api/reports/:category/:kind.
type ReportRequest struct {
	Category string `params:"category"` // membros | igrejas | deposito
	Kind     string `params:"kind"`
	Month    int    `query:"mes"` // aniversariantes; 0 = mes actual
	From     string `query:"inicio"`
	To       string `query:"fim"`
	Format   string `query:"format"` // json (defecto) | pdf
}

// ReportColumn columna de la tabla de un reporte.
type ReportColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ReportGroup conteo agrupado (por función, clasificación, tipo de mercadoria…).
type ReportGroup struct {
	Label string `json:"label"`
	Count int    `json:"quantidade"`
}

// ReportDTO resultado de un reporte: tabla y, si aplica, conteos agrupados y totales.
type ReportDTO struct {
	Category    string            `json:"category"`
	Kind        string            `json:"kind"`
	Title       string            `json:"title"`
	Columns     []ReportColumn    `json:"columns"`
	Rows        [][]string        `json:"rows"`
	Groups      []ReportGroup     `json:"groups,omitempty"`
	Totals      map[string]string `json:"totals,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// ReportKindDTO entrada del catálogo de reportes.
type ReportKindDTO struct {
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Label    string `json:"label"`
}
