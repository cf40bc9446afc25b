package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPurchaseRequest body para POST /api/purchases.
// PurchasedAt vacío se rellena con la hora del servidor.
type RegisterPurchaseRequest struct {
	IngredientID   string          `json:"ingredient_id" validate:"required"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity" validate:"required"`
	Unit           string          `json:"unit"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	SupplierName   string          `json:"supplier_name"`
	PurchasedAt    *time.Time      `json:"purchased_at,omitempty"`
}

// StockItemDTO estado de valoración de un ingrediente para la API.
type StockItemDTO struct {
	IngredientID      string          `json:"ingredient_id"`
	IngredientName    string          `json:"ingredient_name"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
	Unit              string          `json:"unit"`
	TotalValue        decimal.Decimal `json:"total_value"`
	AverageUnitCost   decimal.Decimal `json:"average_unit_cost"`
	LastPurchaseAt    time.Time       `json:"last_purchase_at"`
	LastPurchaseQty   decimal.Decimal `json:"last_purchase_qty"`
	LastSupplierName  string          `json:"last_supplier_name"`
}
