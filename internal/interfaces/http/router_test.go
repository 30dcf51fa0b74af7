package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mvribeiro/loja-virtual-api/internal/application/sales"
	"github.com/mvribeiro/loja-virtual-api/internal/domain"
	"github.com/mvribeiro/loja-virtual-api/internal/application/usecase"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/repository"
	apphttp "github.com/mvribeiro/loja-virtual-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// memStore armazenamento em memória compartilhado pelos repositórios fake.
type memStore struct {
	mu         sync.Mutex
	products   map[int64]*entity.Product
	sales      []entity.Sale
	nextProdID int64
	nextSaleID int64
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[int64]*entity.Product),
		nextProdID: 1,
		nextSaleID: 1,
	}
}

func (s *memStore) seed(p entity.Product) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProdID
	p.CreatedAt = time.Now()
	s.nextProdID++
	cp := p
	s.products[p.ID] = &cp
	return &cp
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	created := r.s.seed(*p)
	*p = *created
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.listWhere("", limit, offset), nil
}

func (r *memProductRepo) ListByCategory(_ context.Context, category string, limit, offset int) ([]*entity.Product, error) {
	return r.listWhere(category, limit, offset), nil
}

func (r *memProductRepo) listWhere(category string, limit, offset int) []*entity.Product {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for id := int64(1); id < r.s.nextProdID; id++ {
		p, ok := r.s.products[id]
		if !ok || (category != "" && p.Category != category) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return nil
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id, quantity int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[id].Stock -= quantity
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrProdutoNaoEncontrado
	}
	for _, sale := range r.s.sales {
		if sale.ProductID == id {
			return domain.ErrProdutoComVendas
		}
	}
	delete(r.s.products, id)
	return nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale.ID = r.s.nextSaleID
	r.s.nextSaleID++
	r.s.sales = append(r.s.sales, *sale)
	return nil
}

func (r *memSaleRepo) List(_ context.Context) ([]*repository.SaleWithProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*repository.SaleWithProduct, 0, len(r.s.sales))
	for i := len(r.s.sales) - 1; i >= 0; i-- {
		sale := r.s.sales[i]
		name := ""
		if p, ok := r.s.products[sale.ProductID]; ok {
			name = p.Name
		}
		list = append(list, &repository.SaleWithProduct{Sale: sale, ProductName: name})
	}
	return list, nil
}

func (r *memSaleRepo) ListByPeriod(ctx context.Context, start, end time.Time) ([]*repository.SaleWithProduct, error) {
	all, _ := r.List(ctx)
	var list []*repository.SaleWithProduct
	for _, s := range all {
		if !s.Date.Before(start) && !s.Date.After(end) {
			list = append(list, s)
		}
	}
	return list, nil
}

// memTxRunner executa fn diretamente sobre os repositórios em memória.
// Em caso de erro restaura o estado anterior, imitando o rollback.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	t.s.mu.Lock()
	snapshot := make(map[int64]entity.Product, len(t.s.products))
	for id, p := range t.s.products {
		snapshot[id] = *p
	}
	salesLen := len(t.s.sales)
	t.s.mu.Unlock()

	err := fn(&memProductRepo{s: t.s}, &memSaleRepo{s: t.s})
	if err != nil {
		t.s.mu.Lock()
		t.s.products = make(map[int64]*entity.Product, len(snapshot))
		for id, p := range snapshot {
			cp := p
			t.s.products[id] = &cp
		}
		t.s.sales = t.s.sales[:salesLen]
		t.s.mu.Unlock()
	}
	return err
}

// buildTestApp monta a aplicação Fiber com as rotas reais sobre o
// armazenamento em memória.
func buildTestApp(store *memStore) *fiber.App {
	app := fiber.New()
	productRepo := &memProductRepo{s: store}
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:    usecase.NewProductUseCase(productRepo),
		RegisterSale: sales.NewRegisterSaleUseCase(&memTxRunner{s: store}, &memSaleRepo{s: store}),
		ReportUC:     nil,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "corpo: %s", raw)
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func timeNowDate() string {
	return time.Now().Format("2006-01-02")
}
