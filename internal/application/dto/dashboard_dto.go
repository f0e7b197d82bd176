package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Members   MemberStatsDTO    `json:"membros"`
	Churches  ChurchStatsDTO    `json:"igrejas"`
	Inventory InventoryStatsDTO `json:"estoque"`
	DateLabel string            `json:"date_label"` // ej: "Março 2025"
}

// MemberStatsDTO totales del registro de miembros.
type MemberStatsDTO struct {
	Total  int              `json:"total"`
	ByRole map[string]int   `json:"por_funcao"`
	Recent []MemberResponse `json:"recentes"` // 5 últimos cadastrados
}

// ChurchStatsDTO totales del registro de igrejas.
type ChurchStatsDTO struct {
	Total            int            `json:"total"`
	ByClassification map[string]int `json:"por_classificacao"`
	CurrentMembers   int            `json:"membros_atuais"`
	BaptizedSouls    int            `json:"almas_batizadas"`
}

// InventoryStatsDTO indicadores del depósito.
type InventoryStatsDTO struct {
	TotalValue      decimal.Decimal    `json:"valor_total"`
	TotalItemTypes  int                `json:"tipos_itens"`
	RecentMovements []MovementResponse `json:"movimentacoes_recentes"`
	LowStock        []ItemResponse     `json:"estoque_baixo"`
}
