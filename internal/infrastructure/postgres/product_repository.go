package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mvribeiro/loja-virtual-api/internal/domain"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável com
// pool ou tx via Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nome, categoria, preco, estoque, created_at`

// Create insere o produto e preenche product.ID com o id gerado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO produtos (nome, categoria, preco, estoque)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.Stock,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID busca um produto por id. Retorna nil sem erro quando não existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// GetForUpdate lê o produto bloqueando a linha (SELECT ... FOR UPDATE).
// Vendas concorrentes do mesmo produto esperam aqui até a transação
// detentora do bloqueio comitar ou desfazer.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1 FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return &p, nil
}

// List lista produtos ordenados por id, com paginação.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByCategory lista produtos de uma categoria, ordenados por id.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE categoria = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos por categoria: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update atualiza nome, categoria, preco e estoque do produto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE produtos SET nome = $2, categoria = $3, preco = $4, estoque = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Price, product.Stock,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProdutoNaoEncontrado
	}
	return nil
}

// DecrementStock subtrai quantity do estoque. O CHECK (estoque >= 0) do
// schema é a última linha de defesa: o motor de vendas já validou a
// suficiência sob o mesmo bloqueio de linha.
func (r *ProductRepo) DecrementStock(ctx context.Context, id, quantity int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE produtos SET estoque = estoque - $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("estoque ficaria negativo: %w", err)
		}
		return fmt.Errorf("decrement estoque: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProdutoNaoEncontrado
	}
	return nil
}

// Delete remove um produto por id. Produtos com vendas registradas não podem
// ser removidos: a FK de vendas os protege.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProdutoComVendas
		}
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProdutoNaoEncontrado
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
