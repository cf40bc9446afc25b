package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// Tipo de IVA hostelería fijo al 21%.
var (
	ivaDivisor = decimal.NewFromFloat(1.21)
	cien       = decimal.NewFromInt(100)
)

// FinancialReport es el desglose financiero de una receta para un precio de
// venta dado.
type FinancialReport struct {
	Costo         decimal.Decimal // costo teórico de la receta (CostoReceta)
	PrecioVenta   decimal.Decimal
	BaseImponible decimal.Decimal // PrecioVenta / 1.21
	IVASoportado  decimal.Decimal // PrecioVenta - BaseImponible
	MargenBruto   decimal.Decimal // BaseImponible - Costo
	Rentabilidad  decimal.Decimal // % sobre base imponible; 0 exacto si la base no es positiva
}

// BreakdownSlice es una porción del gráfico de tarta del escandallo.
type BreakdownSlice struct {
	Label string
	Value decimal.Decimal
}

// EscandalloResult es la salida del motor de costos para un par
// (receta, precio de venta). RealCost en nil significa "desconocido":
// costo real 0 con ingredientes sin precio es indistinguible de una receta
// gratis, y el caller debe renderizarlos distinto.
type EscandalloResult struct {
	Report       FinancialReport
	Breakdown    []BreakdownSlice // {Costo, Margen, IVA}, siempre presente
	RealCost     *decimal.Decimal
	MissingCount int // líneas de receta sin precio resoluble
}

// CalculateEscandallo calcula el escandallo de una receta contra el catálogo.
// Devuelve nil (señal "no computable", no un error) si no hay receta o el
// precio de venta es negativo.
//
// La reconciliación de costo real busca cada línea en el catálogo por ID y,
// si falla, por igualdad de nombre. El precio unitario sale de la cadena
// ResolveUnitPrice; un precio > 0 aporta cantidad*precio al costo real, un
// ingrediente no localizable incrementa MissingCount.
func CalculateEscandallo(recipe *entity.Recipe, salePrice decimal.Decimal, catalog []entity.Ingredient) *EscandalloResult {
	if recipe == nil || salePrice.IsNegative() {
		return nil
	}

	costo := recipe.CostoReceta
	base := salePrice.Div(ivaDivisor)
	iva := salePrice.Sub(base)
	margen := base.Sub(costo)

	rentabilidad := decimal.Zero
	if base.GreaterThan(decimal.Zero) {
		rentabilidad = margen.Div(base).Mul(cien)
	}

	byID := make(map[string]entity.Ingredient, len(catalog))
	byName := make(map[string]entity.Ingredient, len(catalog))
	for _, ing := range catalog {
		byID[ing.ID] = ing
		if _, ok := byName[ing.Name]; !ok {
			byName[ing.Name] = ing
		}
	}

	realCost := decimal.Zero
	missing := 0
	for _, line := range recipe.Ingredients {
		ing, ok := byID[line.IngredientID]
		if !ok {
			ing, ok = byName[line.IngredientName]
		}
		if !ok {
			missing++
			continue
		}
		price := ResolveUnitPrice(ing)
		if price == nil {
			missing++
			continue
		}
		if price.GreaterThan(decimal.Zero) {
			realCost = realCost.Add(line.Quantity.Mul(*price))
		}
	}

	// Regla de ambigüedad: costo real exactamente 0 con faltantes se reporta
	// como desconocido, no como gratis. Sin faltantes, el 0 es un 0 real.
	var realCostOut *decimal.Decimal
	if !realCost.IsZero() || missing == 0 {
		realCostOut = &realCost
	}

	return &EscandalloResult{
		Report: FinancialReport{
			Costo:         costo,
			PrecioVenta:   salePrice,
			BaseImponible: base,
			IVASoportado:  iva,
			MargenBruto:   margen,
			Rentabilidad:  rentabilidad,
		},
		Breakdown: []BreakdownSlice{
			{Label: "Costo", Value: costo},
			{Label: "Margen", Value: margen},
			{Label: "IVA", Value: iva},
		},
		RealCost:     realCostOut,
		MissingCount: missing,
	}
}
