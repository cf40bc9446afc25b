package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/domain"
	"github.com/tu-usuario/barra-pro/internal/domain/costing"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/reorder"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

// AlertsUseCase gestiona las reglas de reposición y evalúa alertas contra el
// stock vivo. Cada evaluación lee un snapshot fresco de reglas y compras.
type AlertsUseCase struct {
	ruleRepo     repository.StockRuleRepository
	purchaseRepo repository.PurchaseRepository
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(ruleRepo repository.StockRuleRepository, purchaseRepo repository.PurchaseRepository) *AlertsUseCase {
	return &AlertsUseCase{ruleRepo: ruleRepo, purchaseRepo: purchaseRepo}
}

// GetAlerts evalúa todas las reglas contra el stock actual.
func (uc *AlertsUseCase) GetAlerts(ctx context.Context) ([]dto.StockAlertDTO, error) {
	alerts, err := uc.evaluate(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.StockAlertDTO{
			Rule:            toStockRuleDTO(a.Rule),
			IngredientID:    a.Item.IngredientID,
			IngredientName:  a.Item.IngredientName,
			CurrentQuantity: a.Item.QuantityAvailable,
			Unit:            a.Item.Unit,
			SuggestedQty:    a.SuggestedQuantity(),
		})
	}
	return out, nil
}

// GetBulkOrder proyecta el conjunto de alertas actual a líneas de pedido
// combinado.
func (uc *AlertsUseCase) GetBulkOrder(ctx context.Context) ([]dto.BulkOrderLineDTO, error) {
	alerts, err := uc.evaluate(ctx)
	if err != nil {
		return nil, err
	}
	lines := reorder.BulkOrderLines(alerts)
	out := make([]dto.BulkOrderLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.BulkOrderLineDTO{
			IngredientID:   l.IngredientID,
			IngredientName: l.IngredientName,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
		})
	}
	return out, nil
}

func (uc *AlertsUseCase) evaluate(ctx context.Context) ([]reorder.Alert, error) {
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return reorder.EvaluateAlerts(rules, costing.BuildStock(purchases)), nil
}

// ListRules devuelve todas las reglas de reposición.
func (uc *AlertsUseCase) ListRules(ctx context.Context) ([]dto.StockRuleDTO, error) {
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, toStockRuleDTO(r))
	}
	return out, nil
}

// CreateRule valida y crea una regla nueva.
func (uc *AlertsUseCase) CreateRule(ctx context.Context, in dto.CreateStockRuleRequest) (*dto.StockRuleDTO, error) {
	if in.IngredientID == "" || in.MinStock.IsNegative() || in.ReorderQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.StockRule{
		ID:              uuid.New().String(),
		IngredientID:    in.IngredientID,
		IngredientName:  in.IngredientName,
		MinStock:        in.MinStock,
		ReorderQuantity: in.ReorderQuantity,
		Active:          in.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	d := toStockRuleDTO(*rule)
	return &d, nil
}

// UpdateRule edita umbral, cantidad y flag de una regla existente.
func (uc *AlertsUseCase) UpdateRule(ctx context.Context, id string, in dto.UpdateStockRuleRequest) (*dto.StockRuleDTO, error) {
	if in.MinStock.IsNegative() || in.ReorderQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	rule, err := uc.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	rule.MinStock = in.MinStock
	rule.ReorderQuantity = in.ReorderQuantity
	rule.Active = in.Active
	rule.UpdatedAt = time.Now()
	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}
	d := toStockRuleDTO(*rule)
	return &d, nil
}

func toStockRuleDTO(r entity.StockRule) dto.StockRuleDTO {
	return dto.StockRuleDTO{
		ID:              r.ID,
		IngredientID:    r.IngredientID,
		IngredientName:  r.IngredientName,
		MinStock:        r.MinStock,
		ReorderQuantity: r.ReorderQuantity,
		Active:          r.Active,
	}
}
