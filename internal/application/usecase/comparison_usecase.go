package usecase

import (
	"context"

	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/domain"
	"github.com/tu-usuario/barra-pro/internal/domain/matching"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

// ComparisonUseCase construye el comparador de precios entre proveedores
// para un ingrediente, con el catálogo enriquecido desde el stock.
type ComparisonUseCase struct {
	ingredientRepo repository.IngredientRepository
	catalogRepo    repository.SupplierCatalogRepository
	purchaseRepo   repository.PurchaseRepository
}

// NewComparisonUseCase construye el caso de uso.
func NewComparisonUseCase(
	ingredientRepo repository.IngredientRepository,
	catalogRepo repository.SupplierCatalogRepository,
	purchaseRepo repository.PurchaseRepository,
) *ComparisonUseCase {
	return &ComparisonUseCase{
		ingredientRepo: ingredientRepo,
		catalogRepo:    catalogRepo,
		purchaseRepo:   purchaseRepo,
	}
}

// GetComparison devuelve la lista de precios equivalentes ordenada
// ascendente; la primera entrada es la mejor opción.
func (uc *ComparisonUseCase) GetComparison(ctx context.Context, ingredientID string) ([]dto.ComparisonEntryDTO, error) {
	selected, err := uc.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.ingredientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	catalogs, err := uc.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	all = enrichCatalogFromPurchases(all, purchases)
	// Usar la versión enriquecida del seleccionado para que su precio
	// "linked" salga de la misma cadena de resolución.
	sel := *selected
	for _, ing := range all {
		if ing.ID == selected.ID {
			sel = ing
			break
		}
	}

	entries := matching.Compare(sel, all, catalogs)
	out := make([]dto.ComparisonEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ComparisonEntryDTO{
			CandidateID:  e.CandidateID,
			SupplierID:   e.SupplierID,
			SupplierName: e.SupplierName,
			ProductName:  e.ProductName,
			Price:        e.Price,
			Unit:         e.Unit,
			Source:       string(e.Source),
		})
	}
	return out, nil
}
