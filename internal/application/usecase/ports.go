package usecase

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// EscandalloPDFGenerator genera la representación imprimible del escandallo
// de una receta. Implementado en infrastructure/pdf con Maroto.
type EscandalloPDFGenerator interface {
	GenerateEscandalloPDF(ctx context.Context, recipe *entity.Recipe, result *costing.EscandalloResult) ([]byte, error)
}
