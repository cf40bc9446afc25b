package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/domain"
	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

// EscandalloUseCase calcula el escandallo de una receta con el catálogo
// enriquecido desde el stock, y genera su versión imprimible.
type EscandalloUseCase struct {
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	purchaseRepo   repository.PurchaseRepository
	pdfGen         EscandalloPDFGenerator
}

// NewEscandalloUseCase construye el caso de uso. pdfGen puede ser nil si no
// se expone el endpoint de PDF.
func NewEscandalloUseCase(
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	purchaseRepo repository.PurchaseRepository,
	pdfGen EscandalloPDFGenerator,
) *EscandalloUseCase {
	return &EscandalloUseCase{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		purchaseRepo:   purchaseRepo,
		pdfGen:         pdfGen,
	}
}

// GetEscandallo calcula el informe para (receta, precio de venta).
func (uc *EscandalloUseCase) GetEscandallo(ctx context.Context, recipeID string, salePrice decimal.Decimal) (*dto.EscandalloDTO, error) {
	recipe, result, err := uc.calculate(ctx, recipeID, salePrice)
	if err != nil {
		return nil, err
	}
	return toEscandalloDTO(recipe, result), nil
}

// GeneratePDF calcula el informe y lo vuelca a PDF.
func (uc *EscandalloUseCase) GeneratePDF(ctx context.Context, recipeID string, salePrice decimal.Decimal) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	recipe, result, err := uc.calculate(ctx, recipeID, salePrice)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateEscandalloPDF(ctx, recipe, result)
}

func (uc *EscandalloUseCase) calculate(ctx context.Context, recipeID string, salePrice decimal.Decimal) (*entity.Recipe, *costing.EscandalloResult, error) {
	if salePrice.IsNegative() {
		return nil, nil, domain.ErrInvalidInput
	}
	recipe, err := uc.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, nil, err
	}
	if recipe == nil {
		return nil, nil, domain.ErrNotFound
	}
	catalog, err := uc.ingredientRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	catalog = enrichCatalogFromPurchases(catalog, purchases)

	result := costing.CalculateEscandallo(recipe, salePrice, catalog)
	if result == nil {
		// Los guards de arriba ya cubren las precondiciones del motor.
		return nil, nil, domain.ErrInvalidInput
	}
	return recipe, result, nil
}

func toEscandalloDTO(recipe *entity.Recipe, res *costing.EscandalloResult) *dto.EscandalloDTO {
	breakdown := make([]dto.BreakdownSliceDTO, 0, len(res.Breakdown))
	for _, s := range res.Breakdown {
		breakdown = append(breakdown, dto.BreakdownSliceDTO{Label: s.Label, Value: s.Value})
	}
	return &dto.EscandalloDTO{
		RecipeID:      recipe.ID,
		RecipeName:    recipe.Name,
		Costo:         res.Report.Costo,
		PrecioVenta:   res.Report.PrecioVenta,
		BaseImponible: res.Report.BaseImponible,
		IVASoportado:  res.Report.IVASoportado,
		MargenBruto:   res.Report.MargenBruto,
		Rentabilidad:  res.Report.Rentabilidad,
		Breakdown:     breakdown,
		RealCost:      res.RealCost,
		MissingCount:  res.MissingCount,
	}
}
