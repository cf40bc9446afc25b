package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

var _ repository.SupplierCatalogRepository = (*SupplierCatalogRepo)(nil)

// SupplierCatalogRepo implementación de SupplierCatalogRepository sobre
// PostgreSQL. Solo lectura: los catálogos se importan en bloque fuera del motor.
type SupplierCatalogRepo struct {
	q Querier
}

// NewSupplierCatalogRepository construye el adaptador de catálogos de proveedor.
func NewSupplierCatalogRepository(q Querier) *SupplierCatalogRepo {
	return &SupplierCatalogRepo{q: q}
}

const supplierCatalogColumns = `c.id, c.supplier_id, COALESCE(s.name, ''), c.product_name, c.price, c.unit`

// ListAll devuelve todas las líneas de catálogo de todos los proveedores.
func (r *SupplierCatalogRepo) ListAll(ctx context.Context) ([]entity.SupplierCatalogItem, error) {
	query := `
		SELECT ` + supplierCatalogColumns + `
		FROM supplier_catalog_items c
		LEFT JOIN suppliers s ON s.id = c.supplier_id
		ORDER BY c.supplier_id, c.product_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list supplier catalog: %w", err)
	}
	defer rows.Close()
	return scanCatalogItems(rows)
}

// ListBySupplier devuelve las líneas de catálogo de un proveedor.
func (r *SupplierCatalogRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.SupplierCatalogItem, error) {
	query := `
		SELECT ` + supplierCatalogColumns + `
		FROM supplier_catalog_items c
		LEFT JOIN suppliers s ON s.id = c.supplier_id
		WHERE c.supplier_id = $1
		ORDER BY c.product_name`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier catalog by supplier: %w", err)
	}
	defer rows.Close()
	return scanCatalogItems(rows)
}

func scanCatalogItems(rows pgx.Rows) ([]entity.SupplierCatalogItem, error) {
	var list []entity.SupplierCatalogItem
	for rows.Next() {
		var it entity.SupplierCatalogItem
		if err := rows.Scan(&it.ID, &it.SupplierID, &it.SupplierName, &it.ProductName, &it.Price, &it.Unit); err != nil {
			return nil, fmt.Errorf("scan supplier catalog item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
