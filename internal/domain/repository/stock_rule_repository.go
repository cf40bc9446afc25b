package repository

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// StockRuleRepository define el puerto de persistencia para reglas de
// reposición (DIP). El caller es dueño de la edición; el motor recibe el
// snapshot completo en cada evaluación.
type StockRuleRepository interface {
	Create(ctx context.Context, rule *entity.StockRule) error
	Update(ctx context.Context, rule *entity.StockRule) error
	GetByID(ctx context.Context, id string) (*entity.StockRule, error)
	List(ctx context.Context) ([]entity.StockRule, error)
}
