package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/mvribeiro/loja-virtual-api/internal/domain"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

// RegisterSaleUseCase registra vendas de forma transacional: valida estoque
// sob bloqueio de linha (SELECT FOR UPDATE), grava a venda, decrementa o
// estoque e faz Commit ou Rollback como uma unidade só.
type RegisterSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewRegisterSaleUseCase constrói o caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// SaleResult é o retorno de uma venda registrada com sucesso.
type SaleResult struct {
	SaleID int64
	Total  decimal.Decimal
}

// RegisterSale valida e executa a venda como uma unidade atômica.
//
// Fluxo dentro da transação:
//  1. Bloqueia a linha do produto (GetForUpdate). Duas vendas concorrentes do
//     mesmo produto ficam totalmente ordenadas: uma só avalia o estoque depois
//     que a outra comita ou desfaz. Sem o bloqueio, duas requisições lendo
//     estoque=1 poderiam ambas prosseguir e deixar o estoque negativo.
//  2. Valida existência e suficiência do estoque contra a leitura bloqueada.
//  3. Calcula total = preço × quantidade com o preço capturado sob o mesmo
//     bloqueio (mudanças de preço concorrentes não afetam a venda em curso).
//  4. Insere a venda; a ausência de ID gerado é falha de armazenamento.
//  5. Decrementa o estoque.
//
// Qualquer erro após o início da transação provoca rollback completo; nenhum
// efeito parcial fica visível. Não há retry interno: o tipo do erro sobe
// inalterado para o chamador decidir.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, productID, quantity int64) (*SaleResult, error) {
	// Validação local, antes de qualquer acesso ao armazenamento.
	if quantity <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}

	var result SaleResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProdutoNaoEncontrado
		}
		if product.Stock < quantity {
			return &domain.EstoqueInsuficienteError{
				Disponivel: product.Stock,
				Solicitado: quantity,
			}
		}

		total := product.Price.Mul(decimal.NewFromInt(quantity))
		sale := &entity.Sale{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
			Total:     total,
			Date:      time.Now(),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		if sale.ID == 0 {
			return fmt.Errorf("venda inserida sem identificador")
		}
		if err := productRepo.DecrementStock(ctx, productID, quantity); err != nil {
			return err
		}

		result = SaleResult{SaleID: sale.ID, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSales lista todas as vendas com o nome do produto, mais recentes primeiro.
func (uc *RegisterSaleUseCase) ListSales(ctx context.Context) ([]*repository.SaleWithProduct, error) {
	return uc.saleRepo.List(ctx)
}

// ListSalesByPeriod lista as vendas com data_venda dentro do período [start, end].
func (uc *RegisterSaleUseCase) ListSalesByPeriod(ctx context.Context, start, end time.Time) ([]*repository.SaleWithProduct, error) {
	return uc.saleRepo.ListByPeriod(ctx, start, end)
}
