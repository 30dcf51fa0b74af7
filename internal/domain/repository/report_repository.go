package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
)

// SummaryResult agrega os números do relatório geral.
type SummaryResult struct {
	TotalProducts      int64
	OutOfStockProducts int64
	TotalSales         int64
	TotalSalesValue    decimal.Decimal
}

// ReportRepository consultas somente leitura para os relatórios.
// A agregação fica no SQL; os casos de uso só formatam o resultado.
type ReportRepository interface {
	ListLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetSummary(ctx context.Context) (*SummaryResult, error)
}
