package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func recetaBasica() *entity.Recipe {
	return &entity.Recipe{
		ID:          "tinto-verano",
		Name:        "Tinto de verano",
		CostoReceta: d("2.50"),
		Ingredients: []entity.RecipeIngredient{
			{IngredientID: "vino", IngredientName: "Vino tinto", Quantity: d("0.2")},
			{IngredientID: "gaseosa", IngredientName: "Gaseosa", Quantity: d("0.15")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética de IVA y margen (IVA fijo 21%).
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateEscandallo_AritmeticaDeMargen(t *testing.T) {
	res := costing.CalculateEscandallo(recetaBasica(), d("10.00"), nil)
	require.NotNil(t, res)

	r := res.Report
	assert.InDelta(t, 8.2645, r.BaseImponible.InexactFloat64(), 0.0001, "base imponible = 10/1.21")
	assert.InDelta(t, 1.7355, r.IVASoportado.InexactFloat64(), 0.0001)
	assert.InDelta(t, 5.7645, r.MargenBruto.InexactFloat64(), 0.0001)
	assert.InDelta(t, 69.75, r.Rentabilidad.InexactFloat64(), 0.01, "rentabilidad en % sobre base")
}

func TestCalculateEscandallo_PrecioCeroNoDivideEntreCero(t *testing.T) {
	res := costing.CalculateEscandallo(recetaBasica(), decimal.Zero, nil)
	require.NotNil(t, res)

	assert.True(t, res.Report.BaseImponible.IsZero())
	assert.True(t, res.Report.Rentabilidad.IsZero(),
		"con base 0 la rentabilidad es exactamente 0 por política, nunca NaN")
}

func TestCalculateEscandallo_NoComputable(t *testing.T) {
	assert.Nil(t, costing.CalculateEscandallo(nil, d("10.00"), nil),
		"sin receta el resultado es nil, no un error")
	assert.Nil(t, costing.CalculateEscandallo(recetaBasica(), d("-1"), nil),
		"precio de venta negativo → nil")
}

func TestCalculateEscandallo_DesgloseSiemprePresente(t *testing.T) {
	res := costing.CalculateEscandallo(recetaBasica(), d("10.00"), nil)
	require.NotNil(t, res)
	require.Len(t, res.Breakdown, 3)
	assert.Equal(t, "Costo", res.Breakdown[0].Label)
	assert.Equal(t, "Margen", res.Breakdown[1].Label)
	assert.Equal(t, "IVA", res.Breakdown[2].Label)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de costo real contra el catálogo.
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateEscandallo_CostoRealConCadenaDePrecios(t *testing.T) {
	catalog := []entity.Ingredient{
		// AveragePrice manda sobre LastPrice y PrecioCompra.
		{ID: "vino", Name: "Vino tinto", PrecioCompra: d("9.99"), AveragePrice: dp("4.00"), LastPrice: dp("5.00")},
		// Sin enriquecidos: cae al precio de referencia.
		{ID: "gaseosa", Name: "Gaseosa", PrecioCompra: d("1.00")},
	}

	res := costing.CalculateEscandallo(recetaBasica(), d("10.00"), catalog)
	require.NotNil(t, res)
	require.NotNil(t, res.RealCost)

	// 0.2*4.00 + 0.15*1.00 = 0.95
	assert.True(t, res.RealCost.Equal(d("0.95")), "costo real: %s", res.RealCost)
	assert.Equal(t, 0, res.MissingCount)
}

func TestCalculateEscandallo_BusquedaPorNombreComoRespaldo(t *testing.T) {
	// El ID de la línea no existe en catálogo; el nombre sí.
	catalog := []entity.Ingredient{
		{ID: "otro-id", Name: "Vino tinto", PrecioCompra: d("5.00")},
		{ID: "gaseosa", Name: "Gaseosa", PrecioCompra: d("1.00")},
	}

	res := costing.CalculateEscandallo(recetaBasica(), d("10.00"), catalog)
	require.NotNil(t, res)
	require.NotNil(t, res.RealCost)
	assert.True(t, res.RealCost.Equal(d("1.15")), "0.2*5 + 0.15*1")
	assert.Equal(t, 0, res.MissingCount)
}

func TestCalculateEscandallo_DesconocidoVersusGratis(t *testing.T) {
	// Ninguna línea localizable: costo real desconocido (nil), no 0.
	res := costing.CalculateEscandallo(recetaBasica(), d("10.00"), nil)
	require.NotNil(t, res)
	assert.Nil(t, res.RealCost, "0 acumulado con faltantes colapsa a desconocido")
	assert.Equal(t, 2, res.MissingCount)

	// Una única línea con precio 0 genuino: costo real 0, no nil.
	receta := &entity.Recipe{
		ID:   "agua",
		Name: "Agua del grifo",
		Ingredients: []entity.RecipeIngredient{
			{IngredientID: "agua", IngredientName: "Agua", Quantity: d("0.3")},
		},
	}
	catalog := []entity.Ingredient{{ID: "agua", Name: "Agua", PrecioCompra: decimal.Zero}}

	res = costing.CalculateEscandallo(receta, d("1.50"), catalog)
	require.NotNil(t, res)
	require.NotNil(t, res.RealCost, "un 0 real sin faltantes se reporta como 0, no como desconocido")
	assert.True(t, res.RealCost.IsZero())
	assert.Equal(t, 0, res.MissingCount)
}

func TestCalculateEscandallo_ParcialmenteSinPrecio(t *testing.T) {
	catalog := []entity.Ingredient{
		{ID: "vino", Name: "Vino tinto", PrecioCompra: d("5.00")},
		// gaseosa no está en catálogo
	}

	res := costing.CalculateEscandallo(recetaBasica(), d("10.00"), catalog)
	require.NotNil(t, res)
	require.NotNil(t, res.RealCost, "con costo acumulado > 0 se reporta aunque haya faltantes")
	assert.True(t, res.RealCost.Equal(d("1.00")), "0.2*5")
	assert.Equal(t, 1, res.MissingCount)
}

func TestResolveUnitPrice_OrdenDeLaCadena(t *testing.T) {
	casos := []struct {
		nombre   string
		ing      entity.Ingredient
		esperado string
	}{
		{"promedio primero", entity.Ingredient{PrecioCompra: d("3"), AveragePrice: dp("1"), LastPrice: dp("2")}, "1"},
		{"ultimo precio segundo", entity.Ingredient{PrecioCompra: d("3"), LastPrice: dp("2")}, "2"},
		{"referencia al final", entity.Ingredient{PrecioCompra: d("3")}, "3"},
		{"cero presente cuenta como dato", entity.Ingredient{PrecioCompra: d("9"), AveragePrice: dp("0")}, "0"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := costing.ResolveUnitPrice(c.ing)
			require.NotNil(t, p)
			assert.True(t, p.Equal(d(c.esperado)), "esperado %s, obtenido %s", c.esperado, p)
		})
	}
}
