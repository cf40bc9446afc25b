package repository

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// SupplierCatalogRepository define el puerto de lectura de catálogos de
// proveedor (DIP). Los catálogos se importan en bloque desde ficheros del
// proveedor; aquí solo se consultan.
type SupplierCatalogRepository interface {
	ListAll(ctx context.Context) ([]entity.SupplierCatalogItem, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]entity.SupplierCatalogItem, error)
}
