package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, ingredient_id, ingredient_name, quantity, unit, total_cost, supplier_name, purchased_at, created_by`

// Create persiste una compra (inmutable: solo INSERT).
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.PurchaseEvent) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.IngredientID, p.IngredientName, p.Quantity, p.Unit,
		p.TotalCost, p.SupplierName, p.PurchasedAt, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListAll devuelve el histórico completo en orden de registro.
func (r *PurchaseRepo) ListAll(ctx context.Context) ([]entity.PurchaseEvent, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY purchased_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	return scanPurchases(rows)
}

// ListByIngredient devuelve las compras de un ingrediente.
func (r *PurchaseRepo) ListByIngredient(ctx context.Context, ingredientID string) ([]entity.PurchaseEvent, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE ingredient_id = $1 ORDER BY purchased_at, id`
	rows, err := r.q.Query(ctx, query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by ingredient: %w", err)
	}
	defer rows.Close()
	return scanPurchases(rows)
}

func scanPurchases(rows pgx.Rows) ([]entity.PurchaseEvent, error) {
	var list []entity.PurchaseEvent
	for rows.Next() {
		var p entity.PurchaseEvent
		if err := rows.Scan(
			&p.ID, &p.IngredientID, &p.IngredientName, &p.Quantity, &p.Unit,
			&p.TotalCost, &p.SupplierName, &p.PurchasedAt, &p.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
