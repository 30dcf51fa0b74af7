package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/mvribeiro/loja-virtual-api/internal/application/dto"
	"github.com/mvribeiro/loja-virtual-api/internal/domain"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. O estoque só é alterado
// aqui por reposição via Update; o decremento por venda é exclusivo do motor
// de vendas (sales.RegisterSaleUseCase).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um novo produto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	product := &entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID busca um produto por id. Retorna nil quando não existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista produtos, opcionalmente filtrados por categoria.
func (uc *ProductUseCase) List(ctx context.Context, category string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Product
		err  error
	)
	if category != "" {
		list, err = uc.repo.ListByCategory(ctx, category, page.Limit, page.Offset)
	} else {
		list, err = uc.repo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica uma atualização parcial. Retorna nil quando o produto não existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		product.Stock = *in.Stock
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete remove um produto por id. Produtos com vendas registradas são
// protegidos pela FK e retornam ErrProdutoComVendas.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}
