package entity

import "github.com/shopspring/decimal"

// Ingredient es una entrada del catálogo de ingredientes. PrecioCompra es el
// precio de referencia; AveragePrice y LastPrice son campos enriquecidos que
// el caller puede poblar desde el stock (pueden venir vacíos).
type Ingredient struct {
	ID           string
	Name         string
	Unit         string
	PrecioCompra decimal.Decimal
	AveragePrice *decimal.Decimal // costo promedio ponderado derivado del stock
	LastPrice    *decimal.Decimal // precio de la última compra
	SupplierID   string
	SupplierName string
}
