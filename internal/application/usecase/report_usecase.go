package usecase

import (
	"context"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"github.com/mvribeiro/loja-virtual-api/internal/application/dto"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

const defaultLowStockThreshold = 5

// ReportUseCase relatórios somente leitura sobre produtos e vendas.
// Falhas de consulta sobem como erro; um relatório vazio nunca mascara um
// banco indisponível.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// LowStock lista produtos com estoque abaixo do limite (padrão 5).
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int64) (*dto.LowStockResponse, error) {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	products, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.LowStockResponse{
		Threshold: threshold,
		Total:     len(items),
		Products:  items,
	}, nil
}

// Categories lista as categorias distintas, ordenadas com collation pt-BR
// (acentos ordenam junto das letras base: "Eletrônicos" antes de "Móveis").
func (uc *ReportUseCase) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	collate.New(language.BrazilianPortuguese).SortStrings(categories)
	return &dto.CategoriesResponse{
		Total:      len(categories),
		Categories: categories,
	}, nil
}

// Summary devolve o resumo geral de produtos e vendas.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	s, err := uc.repo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		Products: dto.SummaryProducts{
			Total:      s.TotalProducts,
			OutOfStock: s.OutOfStockProducts,
			InStock:    s.TotalProducts - s.OutOfStockProducts,
		},
		Sales: dto.SummarySales{
			Total:      s.TotalSales,
			TotalValue: s.TotalSalesValue,
		},
	}, nil
}
