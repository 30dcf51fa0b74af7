package repository

import (
	"context"

	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
)

// ProductRepository define a porta de persistência para Product.
// GetForUpdate e DecrementStock são usados pelo motor de vendas dentro de uma
// transação (ver sales.TxRunner); os demais métodos atendem o CRUD.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate lê o produto bloqueando a linha (SELECT ... FOR UPDATE).
	// Retorna nil sem erro quando o produto não existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// DecrementStock subtrai quantity do estoque do produto. Deve rodar na
	// mesma transação do GetForUpdate que validou a suficiência.
	DecrementStock(ctx context.Context, id, quantity int64) error
	Delete(ctx context.Context, id int64) error
}
