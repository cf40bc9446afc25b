package reorder

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// Alert indica que el stock actual de un ingrediente está por debajo del
// mínimo de su regla de reposición. Lleva la regla y el StockItem resuelto
// (o un placeholder a cantidad 0 si el ingrediente aún no tiene compras).
type Alert struct {
	Rule entity.StockRule
	Item entity.StockItem
}

// SuggestedQuantity devuelve la cantidad de pedido sugerida por la regla.
func (a Alert) SuggestedQuantity() decimal.Decimal {
	return a.Rule.ReorderQuantity
}

// EvaluateAlerts compara cada regla contra el snapshot de stock y emite una
// alerta cuando la cantidad actual es estrictamente menor que el mínimo
// (igual al mínimo no alerta). Se evalúan todas las reglas: el flag Active
// es informativo para el caller, no filtra la evaluación.
func EvaluateAlerts(rules []entity.StockRule, stock []entity.StockItem) []Alert {
	byID := make(map[string]entity.StockItem, len(stock))
	for _, item := range stock {
		byID[item.IngredientID] = item
	}

	alerts := make([]Alert, 0)
	for _, rule := range rules {
		item, ok := byID[rule.IngredientID]
		if !ok {
			// Sin compras registradas: cantidad actual 0 con el nombre
			// guardado en la regla.
			item = entity.StockItem{
				IngredientID:      rule.IngredientID,
				IngredientName:    rule.IngredientName,
				QuantityAvailable: decimal.Zero,
			}
		}
		if item.QuantityAvailable.LessThan(rule.MinStock) {
			alerts = append(alerts, Alert{Rule: rule, Item: item})
		}
	}
	return alerts
}

// BulkOrderLine es una línea del pedido combinado generado desde las alertas.
type BulkOrderLine struct {
	IngredientID   string
	IngredientName string
	Quantity       decimal.Decimal // ReorderQuantity de la regla
	Unit           string
}

// BulkOrderLines proyecta el conjunto de alertas a líneas de pedido para la
// acción de compra combinada. No deduplica: las alertas ya son una por
// ingrediente (las reglas son únicas por ingrediente por convención).
func BulkOrderLines(alerts []Alert) []BulkOrderLine {
	lines := make([]BulkOrderLine, 0, len(alerts))
	for _, a := range alerts {
		name := a.Item.IngredientName
		if name == "" {
			name = a.Rule.IngredientName
		}
		lines = append(lines, BulkOrderLine{
			IngredientID:   a.Rule.IngredientID,
			IngredientName: name,
			Quantity:       a.Rule.ReorderQuantity,
			Unit:           a.Item.Unit,
		})
	}
	return lines
}
