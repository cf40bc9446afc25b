package dto

import "github.com/shopspring/decimal"

// CreateStockRuleRequest body para crear una regla de reposición.
type CreateStockRuleRequest struct {
	IngredientID    string          `json:"ingredient_id" validate:"required"`
	IngredientName  string          `json:"ingredient_name"`
	MinStock        decimal.Decimal `json:"min_stock"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	Active          bool            `json:"active"`
}

// UpdateStockRuleRequest body para editar una regla existente.
type UpdateStockRuleRequest struct {
	MinStock        decimal.Decimal `json:"min_stock"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	Active          bool            `json:"active"`
}

// StockRuleDTO regla de reposición para la API.
type StockRuleDTO struct {
	ID              string          `json:"id"`
	IngredientID    string          `json:"ingredient_id"`
	IngredientName  string          `json:"ingredient_name"`
	MinStock        decimal.Decimal `json:"min_stock"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	Active          bool            `json:"active"`
}

// StockAlertDTO alerta de stock bajo mínimo.
type StockAlertDTO struct {
	Rule            StockRuleDTO    `json:"rule"`
	IngredientID    string          `json:"ingredient_id"`
	IngredientName  string          `json:"ingredient_name"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	Unit            string          `json:"unit"`
	SuggestedQty    decimal.Decimal `json:"suggested_qty"`
}

// BulkOrderLineDTO línea del pedido combinado generado desde las alertas.
type BulkOrderLineDTO struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}
