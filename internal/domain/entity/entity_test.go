package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

func TestInventoryItem_EffectiveMinimum(t *testing.T) {
	assert.Equal(t, 10, (&entity.InventoryItem{}).EffectiveMinimum())
	assert.Equal(t, 3, (&entity.InventoryItem{MinimumStock: 3}).EffectiveMinimum())
}

func TestInventoryItem_StockValue(t *testing.T) {
	item := &entity.InventoryItem{UnitPrice: decimal.RequireFromString("12.50"), Stock: 4}
	assert.True(t, decimal.NewFromInt(50).Equal(item.StockValue()))
}

func TestCatalogos(t *testing.T) {
	assert.True(t, entity.IsValidCategory("Bíblias"))
	assert.False(t, entity.IsValidCategory("Biblias"))
	assert.True(t, entity.IsValidUnit("Dúzia"))
	assert.False(t, entity.IsValidUnit("Litro"))
	assert.True(t, entity.IsValidClassification("Setorial"))
	assert.True(t, entity.IsValidChurchType("Ponto de Pregação"))
	assert.True(t, entity.IsValidMinisterialRole("Presbítero"))
	assert.True(t, entity.IsValidMaritalStatus("Viúvo"))
}

func TestMovement_StockDelta(t *testing.T) {
	assert.Equal(t, 5, (&entity.Movement{Kind: entity.MovementEntry, Quantity: 5}).StockDelta())
	assert.Equal(t, -5, (&entity.Movement{Kind: entity.MovementExit, Quantity: 5}).StockDelta())
	assert.Equal(t, -5, (&entity.Movement{Kind: entity.MovementTransfer, Quantity: 5}).StockDelta())
}

func TestTransfer_CanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.TransferPending, entity.TransferSent, true},
		{entity.TransferPending, entity.TransferCancelled, true},
		{entity.TransferSent, entity.TransferReceived, true},
		{entity.TransferSent, entity.TransferPending, false},
		{entity.TransferReceived, entity.TransferCancelled, false},
		{entity.TransferCancelled, entity.TransferSent, false},
		{entity.TransferSent, entity.TransferSent, false},
		{entity.TransferPending, "perdido", false},
	}
	for _, c := range cases {
		tr := &entity.Transfer{Status: c.from}
		assert.Equal(t, c.ok, tr.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestMember_AgeAt(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	m := &entity.Member{BirthDate: &birth}

	assert.Equal(t, 34, m.AgeAt(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 35, m.AgeAt(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, (&entity.Member{}).AgeAt(time.Now()))
}
