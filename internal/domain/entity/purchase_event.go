package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseEvent representa una compra registrada a un proveedor (inmutable).
// El agregador de stock es su único consumidor; nunca se edita ni se borra.
type PurchaseEvent struct {
	ID             string
	IngredientID   string
	IngredientName string
	Quantity       decimal.Decimal // debe ser > 0; filas con cantidad <= 0 se descartan al agregar
	Unit           string          // unidad libre: kg, l, ud, caja...
	TotalCost      decimal.Decimal // importe total pagado por la línea
	SupplierName   string
	PurchasedAt    time.Time
	CreatedBy      string // UserID que registró la compra
}
