package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mvribeiro/loja-virtual-api/internal/application/dto"
	"github.com/mvribeiro/loja-virtual-api/internal/application/sales"
	"github.com/mvribeiro/loja-virtual-api/internal/domain"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
	"github.com/mvribeiro/loja-virtual-api/pkg/validation"
)

const dateLayout = "2006-01-02"

// SaleHandler trata o registro e as listagens de vendas.
type SaleHandler struct {
	uc *sales.RegisterSaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.RegisterSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venda
// @Description  Valida o estoque sob bloqueio de linha e grava a venda e o
// @Description  decremento de estoque na mesma transação.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venda a registrar"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	result, err := h.uc.RegisterSale(c.Context(), in.ProductID, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuantidadeInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
		case errors.Is(err, domain.ErrProdutoNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case domain.IsEstoqueInsuficiente(err):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{
		SaleID:    result.SaleID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Total:     result.Total,
	})
}

// List godoc
// @Summary      Listar vendas
// @Description  Lista todas as vendas, mais recentes primeiro. Com data_inicio
// @Description  e data_fim (AAAA-MM-DD) filtra pelo período, inclusive.
// @Tags         vendas
// @Produce      json
// @Param        data_inicio  query  string  false  "Início do período (AAAA-MM-DD)"
// @Param        data_fim     query  string  false  "Fim do período (AAAA-MM-DD)"
// @Success      200  {array}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/vendas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	startStr := c.Query("data_inicio")
	endStr := c.Query("data_fim")

	var (
		list []*repository.SaleWithProduct
		err  error
	)
	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "data_inicio e data_fim devem ser informados juntos"})
		}
		start, parseErr := time.Parse(dateLayout, startStr)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "data_inicio inválida, use AAAA-MM-DD"})
		}
		end, parseErr := time.Parse(dateLayout, endStr)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "data_fim inválida, use AAAA-MM-DD"})
		}
		if end.Before(start) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "data_fim anterior a data_inicio"})
		}
		// O fim do período cobre o dia inteiro.
		end = end.Add(24*time.Hour - time.Nanosecond)
		list, err = h.uc.ListSalesByPeriod(c.Context(), start, end)
	} else {
		list, err = h.uc.ListSales(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SaleResponse{
			SaleID:      s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			Total:       s.Total,
			Date:        s.Date,
		})
	}
	return c.JSON(items)
}
