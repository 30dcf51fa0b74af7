package repository

import (
	"context"
	"time"

	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
)

// SaleWithProduct é o resultado das listagens de vendas: a venda mais o nome
// do produto no momento da consulta (JOIN com produtos).
type SaleWithProduct struct {
	entity.Sale
	ProductName string
}

// SaleRepository define a porta de persistência para Sale.
// Vendas são imutáveis: não há Update nem Delete.
type SaleRepository interface {
	// Create insere a venda e preenche sale.ID com o identificador gerado.
	// Deve participar da transação do motor de vendas.
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]*SaleWithProduct, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*SaleWithProduct, error)
}
