package costing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func compra(id, name string, qty, cost string, supplier string, at time.Time) entity.PurchaseEvent {
	return entity.PurchaseEvent{
		IngredientID:   id,
		IngredientName: name,
		Quantity:       d(qty),
		Unit:           "kg",
		TotalCost:      d(cost),
		SupplierName:   supplier,
		PurchasedAt:    at,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes de agregación: los totales son sumas exactas por ingrediente y
// el costo promedio es TotalValue/QuantityAvailable sobre todo el histórico.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildStock_TotalesExactosPorIngrediente(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	purchases := []entity.PurchaseEvent{
		compra("tomate", "Tomate pera", "10", "12.50", "Frutas López", base),
		compra("vodka", "Vodka Absolut 70cl", "6", "72.00", "Bebidas Sur", base.AddDate(0, 0, 1)),
		compra("tomate", "Tomate pera", "5", "7.25", "Mercagrande", base.AddDate(0, 0, 2)),
		compra("tomate", "Tomate pera", "2.5", "3.10", "Frutas López", base.AddDate(0, 0, 3)),
	}

	stock := costing.BuildStock(purchases)
	require.Len(t, stock, 2, "un StockItem por ingrediente distinto")

	byID := make(map[string]entity.StockItem)
	for _, s := range stock {
		byID[s.IngredientID] = s
	}

	tomate := byID["tomate"]
	assert.True(t, tomate.QuantityAvailable.Equal(d("17.5")),
		"la cantidad debe ser la suma exacta de las compras: %s", tomate.QuantityAvailable)
	assert.True(t, tomate.TotalValue.Equal(d("22.85")),
		"el valor total debe ser la suma exacta de los importes: %s", tomate.TotalValue)

	vodka := byID["vodka"]
	assert.True(t, vodka.QuantityAvailable.Equal(d("6")))
	assert.True(t, vodka.TotalValue.Equal(d("72.00")))
	assert.True(t, vodka.AverageUnitCost.Equal(d("12")), "72/6 = 12 por unidad")
}

func TestBuildStock_TotalesInsensiblesAlOrden(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := compra("gin", "Ginebra", "3", "45.00", "Bebidas Sur", base)
	b := compra("gin", "Ginebra", "7", "91.00", "Mercagrande", base.AddDate(0, 0, 5))

	s1 := costing.BuildStock([]entity.PurchaseEvent{a, b})
	s2 := costing.BuildStock([]entity.PurchaseEvent{b, a})
	require.Len(t, s1, 1)
	require.Len(t, s2, 1)

	assert.True(t, s1[0].TotalValue.Equal(s2[0].TotalValue))
	assert.True(t, s1[0].QuantityAvailable.Equal(s2[0].QuantityAvailable))
	assert.True(t, s1[0].AverageUnitCost.Equal(s2[0].AverageUnitCost),
		"el promedio ponderado no depende del orden de los eventos")
}

func TestBuildStock_PromedioConsistenteConTotales(t *testing.T) {
	base := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	purchases := []entity.PurchaseEvent{
		compra("cafe", "Café grano", "3", "10.00", "Cafés Norte", base),
		compra("cafe", "Café grano", "7", "33.33", "Cafés Norte", base.AddDate(0, 0, 1)),
	}

	stock := costing.BuildStock(purchases)
	require.Len(t, stock, 1)

	item := stock[0]
	// AverageUnitCost * QuantityAvailable debe reconstruir TotalValue
	// (tolerancia de redondeo de la división decimal).
	reconstruido := item.AverageUnitCost.Mul(item.QuantityAvailable)
	assert.InDelta(t, item.TotalValue.InexactFloat64(), reconstruido.InexactFloat64(), 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos de última compra y filtrado de filas malformadas.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildStock_UltimaCompraPorFecha(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	purchases := []entity.PurchaseEvent{
		compra("ron", "Ron añejo", "4", "60.00", "Bebidas Sur", base.AddDate(0, 0, 9)),
		compra("ron", "Ron añejo", "2", "31.00", "Licores Vega", base.AddDate(0, 0, 2)),
	}

	stock := costing.BuildStock(purchases)
	require.Len(t, stock, 1)

	// La segunda compra procesada es anterior en fecha: no debe pisar los
	// campos de última compra.
	assert.Equal(t, "Bebidas Sur", stock[0].LastSupplierName)
	assert.True(t, stock[0].LastPurchaseQty.Equal(d("4")))
	assert.Equal(t, base.AddDate(0, 0, 9), stock[0].LastPurchaseAt)
}

func TestBuildStock_EmpateDeFechaConservaLaPrimera(t *testing.T) {
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	purchases := []entity.PurchaseEvent{
		compra("lima", "Lima", "10", "8.00", "Frutas López", at),
		compra("lima", "Lima", "5", "4.50", "Mercagrande", at),
	}

	stock := costing.BuildStock(purchases)
	require.Len(t, stock, 1)

	// Empate exacto de timestamp: gana el evento procesado primero.
	assert.Equal(t, "Frutas López", stock[0].LastSupplierName)
	assert.True(t, stock[0].LastPurchaseQty.Equal(d("10")))
}

func TestBuildStock_DescartaFilasMalformadas(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	purchases := []entity.PurchaseEvent{
		compra("", "Sin ID", "5", "10.00", "Bebidas Sur", base),
		compra("oliva", "Aceituna", "0", "3.00", "Mercagrande", base),
		compra("oliva", "Aceituna", "-2", "1.00", "Mercagrande", base),
		compra("oliva", "Aceituna", "4", "6.00", "Mercagrande", base),
	}

	stock := costing.BuildStock(purchases)
	require.Len(t, stock, 1, "solo la fila válida debe agregarse")
	assert.True(t, stock[0].QuantityAvailable.Equal(d("4")))
	assert.True(t, stock[0].TotalValue.Equal(d("6.00")))
}

func TestBuildStock_EntradaVaciaDevuelveVacio(t *testing.T) {
	assert.Empty(t, costing.BuildStock(nil))
	assert.Empty(t, costing.BuildStock([]entity.PurchaseEvent{}))
}
