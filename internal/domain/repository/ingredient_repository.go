package repository

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para el catálogo de
// ingredientes (DIP).
type IngredientRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	List(ctx context.Context) ([]entity.Ingredient, error)
}
