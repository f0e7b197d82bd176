package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinimumStock umbral usado cuando el ítem no define estoque mínimo.
const DefaultMinimumStock = 10

// Tipos de mercadoría del depósito.
const (
	CategoryManualAluno     = "Manuais Bíblicos - Aluno"
	CategoryManualProfessor = "Manuais Bíblicos - Professor"
	CategoryBiblias         = "Bíblias"
	CategoryHinarios        = "Hinários/Livretos"
	CategoryRevistas        = "Revistas"
	CategoryVestuario       = "Vestuário"
	CategoryAcessorios      = "Acessórios"
	CategoryCDsCantados     = "CDs Cantados"
	CategoryCDsOracao       = "CDs Oração"
	CategoryCDsInstrumental = "CDs Instrumental"
	CategoryCDsEspanhol     = "CDs Espanhol"
	CategoryCDsPlaybacks    = "CDs Playbacks"
	CategoryOutros          = "Outros"
)

// Categories en el orden en que se muestran en formularios y reportes.
var Categories = []string{
	CategoryManualAluno, CategoryManualProfessor, CategoryBiblias, CategoryHinarios,
	CategoryRevistas, CategoryVestuario, CategoryAcessorios, CategoryCDsCantados,
	CategoryCDsOracao, CategoryCDsInstrumental, CategoryCDsEspanhol, CategoryCDsPlaybacks,
	CategoryOutros,
}

// Unidades de medida.
const (
	UnitUnidade = "Unidade"
	UnitCaixa   = "Caixa"
	UnitPacote  = "Pacote"
	UnitDuzia   = "Dúzia"
)

// Units unidades de medida admitidas.
var Units = []string{UnitUnidade, UnitCaixa, UnitPacote, UnitDuzia}

// InventoryItem representa una mercadería del depósito de la iglesia.
// Stock nunca es negativo: las salidas y transferencias se validan antes de descontar.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	Code         string // código libre (SKU)
	Description  string
	Unit         string
	UnitPrice    decimal.Decimal
	Stock        int
	MinimumStock int // 0 = usar DefaultMinimumStock
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveMinimum devuelve el umbral mínimo aplicable.
func (i *InventoryItem) EffectiveMinimum() int {
	if i.MinimumStock <= 0 {
		return DefaultMinimumStock
	}
	return i.MinimumStock
}

// StockValue valor del stock actual (precio unitario × cantidad).
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Stock)))
}

// IsValidCategory indica si la categoría pertenece al catálogo cerrado.
func IsValidCategory(c string) bool { return contains(Categories, c) }

// IsValidUnit indica si la unidad de medida es admitida.
func IsValidUnit(u string) bool { return contains(Units, u) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
