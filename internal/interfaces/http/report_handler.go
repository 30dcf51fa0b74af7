package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvribeiro/loja-virtual-api/internal/application/dto"
	"github.com/mvribeiro/loja-virtual-api/internal/application/usecase"
)

// ReportHandler trata os relatórios somente leitura.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Produtos com estoque baixo
// @Tags         relatorios
// @Produce      json
// @Param        limite  query  int  false  "Limite de estoque"  default(5)
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/relatorios/produtos-estoque-baixo [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("limite", 0))
	out, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorias de produtos
// @Tags         relatorios
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/relatorios/categorias [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumo geral
// @Tags         relatorios
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/relatorios/resumo [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
