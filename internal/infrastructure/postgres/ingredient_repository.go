package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL.
// El catálogo es de solo lectura para el motor: lo mantiene otro sistema.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador del catálogo de ingredientes.
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `i.id, i.name, i.unit, i.precio_compra, i.supplier_id, COALESCE(s.name, '')`

// GetByID obtiene un ingrediente por ID. Devuelve (nil, nil) si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients i
		LEFT JOIN suppliers s ON s.id = i.supplier_id
		WHERE i.id = $1`
	var ing entity.Ingredient
	err := r.q.QueryRow(ctx, query, id).Scan(
		&ing.ID, &ing.Name, &ing.Unit, &ing.PrecioCompra, &ing.SupplierID, &ing.SupplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by id: %w", err)
	}
	return &ing, nil
}

// List devuelve el catálogo completo de ingredientes.
func (r *IngredientRepo) List(ctx context.Context) ([]entity.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients i
		LEFT JOIN suppliers s ON s.id = i.supplier_id
		ORDER BY i.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var list []entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.PrecioCompra, &ing.SupplierID, &ing.SupplierName); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}
