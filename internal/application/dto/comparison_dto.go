package dto

import "github.com/shopspring/decimal"

// ComparisonEntryDTO fila del comparador de precios entre proveedores.
// Source: linked | global_match | catalog.
type ComparisonEntryDTO struct {
	CandidateID  string          `json:"candidate_id"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
	Unit         string          `json:"unit"`
	Source       string          `json:"source"`
}
