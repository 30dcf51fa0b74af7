package dto

import "github.com/shopspring/decimal"

// LowStockResponse relatório de produtos com estoque abaixo do limite.
type LowStockResponse struct {
	Threshold int64             `json:"limite"`
	Total     int               `json:"total_produtos"`
	Products  []ProductResponse `json:"produtos"`
}

// CategoriesResponse relatório de categorias disponíveis.
type CategoriesResponse struct {
	Total      int      `json:"total"`
	Categories []string `json:"categorias"`
}

// SummaryResponse resumo geral de produtos e vendas.
type SummaryResponse struct {
	Products SummaryProducts `json:"produtos"`
	Sales    SummarySales    `json:"vendas"`
}

// SummaryProducts bloco de produtos do resumo.
type SummaryProducts struct {
	Total      int64 `json:"total"`
	OutOfStock int64 `json:"sem_estoque"`
	InStock    int64 `json:"com_estoque"`
}

// SummarySales bloco de vendas do resumo.
type SummarySales struct {
	Total      int64           `json:"total"`
	TotalValue decimal.Decimal `json:"valor_total"`
}
