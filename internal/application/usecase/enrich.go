package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// enrichCatalogFromPurchases puebla los campos de precio enriquecidos del
// catálogo a partir del histórico de compras: AveragePrice con el costo
// promedio ponderado del stock y LastPrice con el precio unitario de la
// compra más reciente. Los ingredientes sin compras se devuelven tal cual
// (la cadena de precios caerá a PrecioCompra).
func enrichCatalogFromPurchases(catalog []entity.Ingredient, purchases []entity.PurchaseEvent) []entity.Ingredient {
	stock := costing.BuildStock(purchases)
	byID := make(map[string]entity.StockItem, len(stock))
	for _, it := range stock {
		byID[it.IngredientID] = it
	}

	out := make([]entity.Ingredient, len(catalog))
	for i, ing := range catalog {
		out[i] = ing
		it, ok := byID[ing.ID]
		if !ok {
			continue
		}
		avg := it.AverageUnitCost
		out[i].AveragePrice = &avg
		if last := lastUnitPrice(purchases, ing.ID, it); last != nil {
			out[i].LastPrice = last
		}
	}
	return out
}

// lastUnitPrice localiza la compra que el agregador marcó como más reciente
// y devuelve su precio unitario (TotalCost/Quantity).
func lastUnitPrice(purchases []entity.PurchaseEvent, ingredientID string, it entity.StockItem) *decimal.Decimal {
	for _, p := range purchases {
		if p.IngredientID != ingredientID || !p.Quantity.IsPositive() {
			continue
		}
		if p.PurchasedAt.Equal(it.LastPurchaseAt) && p.Quantity.Equal(it.LastPurchaseQty) && p.SupplierName == it.LastSupplierName {
			price := p.TotalCost.Div(p.Quantity)
			return &price
		}
	}
	return nil
}
