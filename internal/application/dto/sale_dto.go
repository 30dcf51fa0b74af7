package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar uma venda.
type CreateSaleRequest struct {
	ProductID int64 `json:"produto_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantidade" validate:"required,gt=0"`
}

// CreateSaleResponse saída do registro de uma venda.
type CreateSaleResponse struct {
	SaleID    int64           `json:"venda_id"`
	ProductID int64           `json:"produto_id"`
	Quantity  int64           `json:"quantidade"`
	Total     decimal.Decimal `json:"valor_total"`
}

// SaleResponse item das listagens de vendas (inclui o nome do produto).
type SaleResponse struct {
	SaleID      int64           `json:"venda_id"`
	ProductID   int64           `json:"produto_id"`
	ProductName string          `json:"produto_nome"`
	Quantity    int64           `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	Total       decimal.Decimal `json:"valor_total"`
	Date        time.Time       `json:"data_venda"`
}
