package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra uma venda confirmada. Imutável após a criação: vendas nunca
// são atualizadas nem removidas. UnitPrice é o preço capturado no momento da
// venda, mesmo que o produto mude de preço depois.
type Sale struct {
	ID        int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal // UnitPrice × Quantity
	Date      time.Time
}
