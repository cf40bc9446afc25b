package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRule es una política de reposición definida por el usuario: umbral
// mínimo de stock y cantidad sugerida de pedido para un ingrediente.
// El motor la evalúa, nunca la muta; Active es informativo para el caller.
type StockRule struct {
	ID              string
	IngredientID    string
	IngredientName  string
	MinStock        decimal.Decimal
	ReorderQuantity decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
