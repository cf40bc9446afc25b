package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/application/usecase"
	"github.com/tu-usuario/barra-pro/internal/domain"
)

// ComparisonHandler maneja el comparador de precios entre proveedores (protegido).
type ComparisonHandler struct {
	uc *usecase.ComparisonUseCase
}

// NewComparisonHandler construye el handler.
func NewComparisonHandler(uc *usecase.ComparisonUseCase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// GetComparison godoc
// @Summary      Comparar precios de un ingrediente entre proveedores
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingrediente"
// @Success      200  {array}   dto.ComparisonEntryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/comparison [get]
func (h *ComparisonHandler) GetComparison(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetComparison(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
