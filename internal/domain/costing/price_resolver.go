package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// PriceResolver intenta resolver el precio unitario de un ingrediente desde
// una fuente concreta. Devuelve nil si esa fuente no tiene dato.
type PriceResolver func(ing entity.Ingredient) *decimal.Decimal

// defaultPriceChain define la prioridad de fuentes de precio:
// costo promedio del stock → precio de la última compra → precio de
// referencia del catálogo. Añadir una fuente nueva es insertar un resolver
// aquí, sin tocar el bucle de reconciliación.
var defaultPriceChain = []PriceResolver{
	func(ing entity.Ingredient) *decimal.Decimal { return ing.AveragePrice },
	func(ing entity.Ingredient) *decimal.Decimal { return ing.LastPrice },
	func(ing entity.Ingredient) *decimal.Decimal { return &ing.PrecioCompra },
}

// ResolveUnitPrice recorre la cadena de resolvers y devuelve el primer precio
// disponible. Un precio 0 presente cuenta como dato (ingrediente gratis), no
// como ausencia: la ausencia es únicamente el campo sin poblar.
func ResolveUnitPrice(ing entity.Ingredient) *decimal.Decimal {
	for _, resolve := range defaultPriceChain {
		if p := resolve(ing); p != nil {
			v := *p
			return &v
		}
	}
	return nil
}
