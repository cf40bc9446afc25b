package entity

import "github.com/shopspring/decimal"

// SupplierCatalogItem es una línea del catálogo de un proveedor: un producto
// ofertado que todavía no está importado al catálogo propio. Es la fuente
// más ruidosa del comparador de precios (nombres sin curar).
type SupplierCatalogItem struct {
	ID           string
	SupplierID   string
	SupplierName string
	ProductName  string // nombre tal y como aparece en el catálogo del proveedor
	Price        decimal.Decimal
	Unit         string
}
