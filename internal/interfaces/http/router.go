package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvribeiro/loja-virtual-api/internal/application/sales"
	"github.com/mvribeiro/loja-virtual-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	RegisterSale *sales.RegisterSaleUseCase
	ReportUC     *usecase.ReportUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Produtos
	products := api.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Vendas
	salesGroup := api.Group("/vendas")
	saleHandler := NewSaleHandler(deps.RegisterSale)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)

	// Relatórios
	reports := api.Group("/relatorios")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/produtos-estoque-baixo", reportHandler.LowStock)
	reports.Get("/categorias", reportHandler.Categories)
	reports.Get("/resumo", reportHandler.Summary)
}
