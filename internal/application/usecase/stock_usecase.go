package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/domain"
	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

// StockUseCase registra compras y sirve el snapshot de stock valorado.
// El stock no se persiste: se recalcula plegando el histórico de compras en
// cada lectura (el agregador es determinista y barato).
type StockUseCase struct {
	purchaseRepo repository.PurchaseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(purchaseRepo repository.PurchaseRepository) *StockUseCase {
	return &StockUseCase{purchaseRepo: purchaseRepo}
}

// RegisterPurchase valida y persiste una compra nueva.
func (uc *StockUseCase) RegisterPurchase(ctx context.Context, userID string, in dto.RegisterPurchaseRequest) error {
	if in.IngredientID == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.TotalCost.IsNegative() {
		return domain.ErrInvalidInput
	}
	purchasedAt := time.Now()
	if in.PurchasedAt != nil {
		purchasedAt = *in.PurchasedAt
	}
	p := &entity.PurchaseEvent{
		ID:             uuid.New().String(),
		IngredientID:   in.IngredientID,
		IngredientName: in.IngredientName,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		TotalCost:      in.TotalCost,
		SupplierName:   in.SupplierName,
		PurchasedAt:    purchasedAt,
		CreatedBy:      userID,
	}
	return uc.purchaseRepo.Create(ctx, p)
}

// GetSnapshot devuelve el stock valorado actual plegando todas las compras.
func (uc *StockUseCase) GetSnapshot(ctx context.Context) ([]dto.StockItemDTO, error) {
	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := costing.BuildStock(purchases)
	out := make([]dto.StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toStockItemDTO(it))
	}
	return out, nil
}

func toStockItemDTO(it entity.StockItem) dto.StockItemDTO {
	return dto.StockItemDTO{
		IngredientID:      it.IngredientID,
		IngredientName:    it.IngredientName,
		QuantityAvailable: it.QuantityAvailable,
		Unit:              it.Unit,
		TotalValue:        it.TotalValue,
		AverageUnitCost:   it.AverageUnitCost,
		LastPurchaseAt:    it.LastPurchaseAt,
		LastPurchaseQty:   it.LastPurchaseQty,
		LastSupplierName:  it.LastSupplierName,
	}
}
