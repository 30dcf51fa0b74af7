package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository sobre PostgreSQL (usável com pool
// ou tx via Querier). Vendas são imutáveis: só INSERT e SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de persistência para vendas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create insere a venda e preenche sale.ID via RETURNING. Participa da
// transação do motor de vendas quando construído sobre a tx.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO vendas (produto_id, quantidade, preco_unitario, valor_total, data_venda)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.ProductID, sale.Quantity, sale.UnitPrice, sale.Total, sale.Date,
	).Scan(&sale.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("venda referencia produto inexistente: %w", err)
		}
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

const saleListQuery = `
	SELECT v.id, v.produto_id, v.quantidade, v.preco_unitario, v.valor_total, v.data_venda, p.nome
	FROM vendas v
	JOIN produtos p ON p.id = v.produto_id`

// List lista todas as vendas com o nome do produto, mais recentes primeiro.
func (r *SaleRepo) List(ctx context.Context) ([]*repository.SaleWithProduct, error) {
	rows, err := r.q.Query(ctx, saleListQuery+` ORDER BY v.data_venda DESC`)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListByPeriod lista as vendas com data_venda dentro de [start, end].
func (r *SaleRepo) ListByPeriod(ctx context.Context, start, end time.Time) ([]*repository.SaleWithProduct, error) {
	rows, err := r.q.Query(ctx,
		saleListQuery+` WHERE v.data_venda BETWEEN $1 AND $2 ORDER BY v.data_venda DESC`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list vendas por período: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]*repository.SaleWithProduct, error) {
	var list []*repository.SaleWithProduct
	for rows.Next() {
		var s repository.SaleWithProduct
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.Total, &s.Date, &s.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
