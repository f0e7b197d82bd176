package inventory

import (
	"sort"

	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Límites por defecto de los widgets del dashboard.
const (
	DefaultLowStockLimit       = 5
	DefaultRecentMovementLimit = 5
)

// ApplyDelta suma delta (con signo) al stock, con piso en cero.
func ApplyDelta(stock, delta int) int {
	n := stock + delta
	if n < 0 {
		return 0
	}
	return n
}

// CheckQuantity valida que la cantidad de un movimiento sea positiva.
func CheckQuantity(quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// CheckAvailable exige cantidad solicitada <= stock actual (salidas y transferencias).
func CheckAvailable(item *entity.InventoryItem, quantity int) error {
	if quantity > item.Stock {
		return domain.ErrInsufficientStock
	}
	return nil
}

// TotalValue valor monetario del stock: suma de precio unitario × cantidad.
func TotalValue(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// TotalStockValue suma el valor de stock de todos los ítems.
func TotalStockValue(items []*entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.StockValue())
	}
	return total
}

// TotalItemTypes cantidad de ítems con stock disponible.
func TotalItemTypes(items []*entity.InventoryItem) int {
	n := 0
	for _, it := range items {
		if it.Stock > 0 {
			n++
		}
	}
	return n
}

// LowStock devuelve los ítems con stock > 0 ordenados por (stock - mínimo efectivo) ascendente:
// los más cercanos o por debajo del mínimo primero. El orden de entrada desempata.
// limit <= 0 usa DefaultLowStockLimit.
func LowStock(items []*entity.InventoryItem, limit int) []*entity.InventoryItem {
	if limit <= 0 {
		limit = DefaultLowStockLimit
	}
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.Stock > 0 {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stock-out[i].EffectiveMinimum() < out[j].Stock-out[j].EffectiveMinimum()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecentMovements copia y ordena por fecha de movimiento descendente, truncando a limit.
// No reordena el slice recibido.
func RecentMovements(movements []*entity.Movement, limit int) []*entity.Movement {
	if limit <= 0 {
		limit = DefaultRecentMovementLimit
	}
	out := make([]*entity.Movement, len(movements))
	copy(out, movements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
