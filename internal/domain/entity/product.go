package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo da loja.
// Stock nunca fica negativo: só é decrementado por vendas confirmadas
// (motor de vendas) ou ajustado por reposição via CRUD.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal // preço de venda unitário
	Stock     int64
	CreatedAt time.Time
}
