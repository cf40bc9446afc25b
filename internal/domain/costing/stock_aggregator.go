package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// BuildStock pliega una secuencia de compras en un StockItem por ingrediente.
// El costo promedio se recalcula como TotalValue/QuantityAvailable sobre todo
// el histórico acumulado (promedio ponderado), así los totales finales no
// dependen del orden de los eventos. Los campos de "última compra" sí son
// sensibles al orden: solo se actualizan con una fecha estrictamente
// posterior; en empate se conserva la compra ya registrada.
//
// Filas con cantidad <= 0 o sin IngredientID se descartan en silencio: son
// ruido del feed, no un error. Función total sobre cualquier entrada.
func BuildStock(purchases []entity.PurchaseEvent) []entity.StockItem {
	byID := make(map[string]*entity.StockItem)
	order := make([]string, 0, len(purchases))

	for _, p := range purchases {
		if p.IngredientID == "" || !p.Quantity.GreaterThan(decimal.Zero) {
			continue
		}

		item, ok := byID[p.IngredientID]
		if !ok {
			item = &entity.StockItem{
				IngredientID:      p.IngredientID,
				IngredientName:    p.IngredientName,
				Unit:              p.Unit,
				QuantityAvailable: p.Quantity,
				TotalValue:        p.TotalCost,
				LastPurchaseAt:    p.PurchasedAt,
				LastPurchaseQty:   p.Quantity,
				LastSupplierName:  p.SupplierName,
			}
			// Quantity > 0 garantizado por el filtro de arriba.
			item.AverageUnitCost = item.TotalValue.Div(item.QuantityAvailable)
			byID[p.IngredientID] = item
			order = append(order, p.IngredientID)
			continue
		}

		item.QuantityAvailable = item.QuantityAvailable.Add(p.Quantity)
		item.TotalValue = item.TotalValue.Add(p.TotalCost)
		item.AverageUnitCost = item.TotalValue.Div(item.QuantityAvailable)

		if p.PurchasedAt.After(item.LastPurchaseAt) {
			item.LastPurchaseAt = p.PurchasedAt
			item.LastPurchaseQty = p.Quantity
			item.LastSupplierName = p.SupplierName
		}
	}

	out := make([]entity.StockItem, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}
