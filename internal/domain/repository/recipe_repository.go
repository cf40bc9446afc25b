package repository

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// RecipeRepository define el puerto de persistencia para recetas (DIP).
// El motor solo lee recetas; el catálogo externo es su dueño.
type RecipeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	List(ctx context.Context) ([]entity.Recipe, error)
}
