package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem es el estado de valoración actual de un ingrediente, derivado de
// sus compras: cantidades y valor acumulados más el costo promedio ponderado
// (TotalValue / QuantityAvailable, recalculado sobre todo el histórico).
type StockItem struct {
	IngredientID      string
	IngredientName    string
	QuantityAvailable decimal.Decimal
	Unit              string
	TotalValue        decimal.Decimal
	AverageUnitCost   decimal.Decimal
	LastPurchaseAt    time.Time       // fecha de la compra más reciente
	LastPurchaseQty   decimal.Decimal // cantidad de esa compra
	LastSupplierName  string          // proveedor de esa compra
}
