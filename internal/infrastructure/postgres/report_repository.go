package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas somente leitura para os relatórios. A agregação fica
// no SQL; falhas de leitura sobem como erro, nunca viram resultado vazio
// (resultado vazio e banco fora do ar são coisas diferentes).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ListLowStock lista produtos com estoque abaixo do limite, os mais críticos
// primeiro.
func (r *ReportRepo) ListLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error) {
	query := `
		SELECT id, nome, categoria, preco, estoque, created_at
		FROM produtos WHERE estoque < $1
		ORDER BY estoque, id`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("report.ListLowStock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListCategories lista as categorias distintas dos produtos cadastrados.
// A ordenação pt-BR fica no caso de uso (collation da aplicação).
func (r *ReportRepo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT categoria FROM produtos`)
	if err != nil {
		return nil, fmt.Errorf("report.ListCategories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetSummary agrega os totais de produtos e vendas em uma única ida ao banco.
func (r *ReportRepo) GetSummary(ctx context.Context) (*repository.SummaryResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM produtos)                               AS total_produtos,
	    (SELECT COUNT(*) FROM produtos WHERE estoque = 0)             AS produtos_sem_estoque,
	    (SELECT COUNT(*) FROM vendas)                                 AS total_vendas,
	    (SELECT COALESCE(SUM(valor_total), 0) FROM vendas)            AS valor_total_vendas`

	var s repository.SummaryResult
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.OutOfStockProducts, &s.TotalSales, &s.TotalSalesValue,
	)
	if err != nil {
		return nil, fmt.Errorf("report.GetSummary: %w", err)
	}
	return &s, nil
}
