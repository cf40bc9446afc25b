package repository

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras (DIP).
// Las compras son inmutables: se crean y se listan, nunca se editan.
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.PurchaseEvent) error
	// ListAll devuelve el histórico completo de compras en orden de registro.
	// Es el snapshot de entrada del agregador de stock.
	ListAll(ctx context.Context) ([]entity.PurchaseEvent, error)
	ListByIngredient(ctx context.Context, ingredientID string) ([]entity.PurchaseEvent, error)
}
