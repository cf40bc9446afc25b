package dto

import "github.com/shopspring/decimal"

// BreakdownSliceDTO porción del gráfico de tarta del escandallo.
type BreakdownSliceDTO struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// EscandalloDTO informe financiero de una receta para un precio de venta.
// RealCost en null significa "desconocido" (ingredientes sin precio), que el
// front debe distinguir de un 0 real ("gratis").
type EscandalloDTO struct {
	RecipeID      string              `json:"recipe_id"`
	RecipeName    string              `json:"recipe_name"`
	Costo         decimal.Decimal     `json:"costo"`
	PrecioVenta   decimal.Decimal     `json:"precio_venta"`
	BaseImponible decimal.Decimal     `json:"base_imponible"`
	IVASoportado  decimal.Decimal     `json:"iva_soportado"`
	MargenBruto   decimal.Decimal     `json:"margen_bruto"`
	Rentabilidad  decimal.Decimal     `json:"rentabilidad"`
	Breakdown     []BreakdownSliceDTO `json:"breakdown"`
	RealCost      *decimal.Decimal    `json:"real_cost"`
	MissingCount  int                 `json:"missing_count"`
}
