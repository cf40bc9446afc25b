package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/barra-pro/internal/application/dto"
	"github.com/tu-usuario/barra-pro/internal/application/usecase"
	"github.com/tu-usuario/barra-pro/internal/domain"
)

// EscandalloHandler maneja el informe de escandallo de recetas (protegido).
type EscandalloHandler struct {
	uc *usecase.EscandalloUseCase
}

// NewEscandalloHandler construye el handler.
func NewEscandalloHandler(uc *usecase.EscandalloUseCase) *EscandalloHandler {
	return &EscandalloHandler{uc: uc}
}

// GetEscandallo godoc
// @Summary      Escandallo de una receta
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID de la receta"
// @Param        sale_price  query  string  false  "Precio de venta con IVA"  default(0)
// @Success      200  {object}  dto.EscandalloDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/escandallo [get]
func (h *EscandalloHandler) GetEscandallo(c *fiber.Ctx) error {
	id := c.Params("id")
	salePrice, err := parseSalePrice(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_price debe ser un número >= 0"})
	}
	out, err := h.uc.GetEscandallo(c.Context(), id, salePrice)
	if err != nil {
		return escandalloError(c, err)
	}
	return c.JSON(out)
}

// GetEscandalloPDF godoc
// @Summary      Escandallo de una receta en PDF
// @Tags         recipes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id          path   string  true   "ID de la receta"
// @Param        sale_price  query  string  false  "Precio de venta con IVA"  default(0)
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/escandallo/pdf [get]
func (h *EscandalloHandler) GetEscandalloPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	salePrice, err := parseSalePrice(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_price debe ser un número >= 0"})
	}
	pdfBytes, err := h.uc.GeneratePDF(c.Context(), id, salePrice)
	if err != nil {
		return escandalloError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="escandallo.pdf"`)
	return c.Send(pdfBytes)
}

func parseSalePrice(c *fiber.Ctx) (decimal.Decimal, error) {
	raw := c.Query("sale_price", "0")
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return price, nil
}

func escandalloError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta no encontrada"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
