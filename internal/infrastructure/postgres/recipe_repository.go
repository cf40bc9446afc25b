package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL.
// Las líneas de receta viven en recipe_ingredients y se cargan siempre
// junto con la cabecera: una receta sin líneas no tiene escandallo.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// GetByID obtiene una receta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	query := `SELECT id, name, costo_receta FROM recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(ctx, query, id).Scan(&rec.ID, &rec.Name, &rec.CostoReceta)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe by id: %w", err)
	}

	lines, err := r.linesFor(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Ingredients = lines
	return &rec, nil
}

// List devuelve todas las recetas con sus líneas.
func (r *RecipeRepo) List(ctx context.Context) ([]entity.Recipe, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, costo_receta FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var list []entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CostoReceta); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		lines, err := r.linesFor(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Ingredients = lines
	}
	return list, nil
}

func (r *RecipeRepo) linesFor(ctx context.Context, recipeID string) ([]entity.RecipeIngredient, error) {
	query := `
		SELECT ingredient_id, ingredient_name, quantity
		FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()

	var lines []entity.RecipeIngredient
	for rows.Next() {
		var ri entity.RecipeIngredient
		if err := rows.Scan(&ri.IngredientID, &ri.IngredientName, &ri.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		lines = append(lines, ri)
	}
	return lines, rows.Err()
}
