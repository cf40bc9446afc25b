package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/application/usecase"
	"github.com/tu-usuario/barra-pro/internal/domain"
)

// AlertsHandler maneja alertas de reposición y reglas de stock (protegido).
type AlertsHandler struct {
	uc *usecase.AlertsUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *usecase.AlertsUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// GetAlerts godoc
// @Summary      Alertas de stock bajo mínimo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertDTO
// @Router       /api/alerts [get]
func (h *AlertsHandler) GetAlerts(c *fiber.Ctx) error {
	out, err := h.uc.GetAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetBulkOrder godoc
// @Summary      Pedido combinado desde las alertas actuales
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BulkOrderLineDTO
// @Router       /api/alerts/bulk-order [get]
func (h *AlertsHandler) GetBulkOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetBulkOrder(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRules godoc
// @Summary      Listar reglas de reposición
// @Tags         rules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockRuleDTO
// @Router       /api/rules [get]
func (h *AlertsHandler) ListRules(c *fiber.Ctx) error {
	out, err := h.uc.ListRules(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateRule godoc
// @Summary      Crear regla de reposición
// @Tags         rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRuleRequest  true  "Umbral y cantidad sugerida"
// @Success      201   {object}  dto.StockRuleDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rules [post]
func (h *AlertsHandler) CreateRule(c *fiber.Ctx) error {
	var in dto.CreateStockRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRule(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ingredient_id requerido; min_stock y reorder_quantity >= 0"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una regla para este ingrediente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateRule godoc
// @Summary      Editar regla de reposición
// @Tags         rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la regla"
// @Param        body  body  dto.UpdateStockRuleRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StockRuleDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rules/{id} [put]
func (h *AlertsHandler) UpdateRule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateRule(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_stock y reorder_quantity >= 0"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
