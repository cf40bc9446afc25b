package matching

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// Source indica la procedencia de una entrada de comparación.
type Source string

const (
	// SourceLinked es el propio ingrediente seleccionado (línea base).
	SourceLinked Source = "linked"
	// SourceGlobalMatch es otro ingrediente del catálogo juzgado equivalente.
	SourceGlobalMatch Source = "global_match"
	// SourceCatalog es una línea de catálogo de proveedor sin importar.
	SourceCatalog Source = "catalog"
)

// Umbrales de equivalencia difusa. Las líneas de catálogo de proveedor usan
// un corte más estricto porque sus nombres vienen sin curar.
const (
	globalMatchThreshold = 0.4
	catalogLineThreshold = 0.6
)

// Dos precios a menos de un céntimo se consideran el mismo precio.
var priceEpsilon = decimal.NewFromFloat(0.01)

// ComparisonEntry es una fila del comparador de precios entre proveedores.
type ComparisonEntry struct {
	CandidateID  string
	SupplierID   string
	SupplierName string
	ProductName  string
	Price        decimal.Decimal
	Unit         string
	Source       Source
}

// Compare construye la lista de precios equivalentes para un ingrediente:
// siempre el propio ingrediente como "linked", el resto del catálogo propio
// por encima de 0.4 como "global_match" y las líneas de catálogos de
// proveedor por encima de 0.6 como "catalog". Entradas con el mismo
// proveedor y precio a menos de un céntimo se colapsan conservando la
// primera. El resultado queda ordenado ascendente por precio con desempate
// estable (la primera vista gana); el índice 0 es la mejor opción.
//
// Nunca se elimina una entrada por parecido de nombre: solo se suprimen
// duplicados de proveedor+precio.
func Compare(selected entity.Ingredient, all []entity.Ingredient, catalogs []entity.SupplierCatalogItem) []ComparisonEntry {
	entries := make([]ComparisonEntry, 0, 1+len(all))
	entries = append(entries, ingredientEntry(selected, SourceLinked))

	for _, ing := range all {
		if ing.ID == selected.ID {
			continue
		}
		if MatchScore(selected.Name, ing.Name) > globalMatchThreshold {
			entries = append(entries, ingredientEntry(ing, SourceGlobalMatch))
		}
	}

	for _, line := range catalogs {
		if MatchScore(selected.Name, line.ProductName) <= catalogLineThreshold {
			continue
		}
		// Supresión barata de casi-duplicados durante el escaneo.
		if hasNearDuplicate(entries, line.SupplierName, line.Price) {
			continue
		}
		entries = append(entries, ComparisonEntry{
			CandidateID:  line.ID,
			SupplierID:   line.SupplierID,
			SupplierName: line.SupplierName,
			ProductName:  line.ProductName,
			Price:        line.Price,
			Unit:         line.Unit,
			Source:       SourceCatalog,
		})
	}

	entries = dedupBySupplierAndPrice(entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Price.LessThan(entries[j].Price)
	})
	return entries
}

func ingredientEntry(ing entity.Ingredient, source Source) ComparisonEntry {
	price := decimal.Zero
	if p := costing.ResolveUnitPrice(ing); p != nil {
		price = *p
	}
	return ComparisonEntry{
		CandidateID:  ing.ID,
		SupplierID:   ing.SupplierID,
		SupplierName: ing.SupplierName,
		ProductName:  ing.Name,
		Price:        price,
		Unit:         ing.Unit,
		Source:       source,
	}
}

// hasNearDuplicate busca una entrada acumulada con el mismo proveedor y un
// precio a menos de priceEpsilon.
func hasNearDuplicate(entries []ComparisonEntry, supplierName string, price decimal.Decimal) bool {
	for _, e := range entries {
		if e.SupplierName == supplierName && e.Price.Sub(price).Abs().LessThan(priceEpsilon) {
			return true
		}
	}
	return false
}

// dedupBySupplierAndPrice colapsa duplicados globales de proveedor+precio
// conservando la primera aparición.
func dedupBySupplierAndPrice(entries []ComparisonEntry) []ComparisonEntry {
	out := make([]ComparisonEntry, 0, len(entries))
	for _, e := range entries {
		if !hasNearDuplicate(out, e.SupplierName, e.Price) {
			out = append(out, e)
		}
	}
	return out
}
