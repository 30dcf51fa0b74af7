package sales

import (
	"context"

	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atrelados a essa transação. Se fn retorna erro a transação
// sofre rollback; caso contrário, commit. Garante a atomicidade do motor
// de vendas: ou a venda e o decremento de estoque são visíveis juntos, ou
// nenhum dos dois.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
