package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
// Os nomes JSON seguem o contrato público da API (em português).
type CreateProductRequest struct {
	Name     string          `json:"nome" validate:"required,min=1,max=100"`
	Category string          `json:"categoria" validate:"required,min=1,max=50"`
	Price    decimal.Decimal `json:"preco"`
	Stock    int64           `json:"estoque" validate:"min=0"`
}

// UpdateProductRequest entrada para atualização parcial de um produto.
// Campos nil não são alterados.
type UpdateProductRequest struct {
	Name     *string          `json:"nome" validate:"omitempty,min=1,max=100"`
	Category *string          `json:"categoria" validate:"omitempty,min=1,max=50"`
	Price    *decimal.Decimal `json:"preco"`
	Stock    *int64           `json:"estoque" validate:"omitempty,min=0"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nome"`
	Category  string          `json:"categoria"`
	Price     decimal.Decimal `json:"preco"`
	Stock     int64           `json:"estoque"`
	CreatedAt time.Time       `json:"created_at"`
}
