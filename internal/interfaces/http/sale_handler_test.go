package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvribeiro/loja-virtual-api/internal/application/dto"
	"github.com/mvribeiro/loja-virtual-api/internal/domain/entity"
)

func TestSaleCreate_Sucesso(t *testing.T) {
	store := newMemStore()
	p := store.seed(entity.Product{Name: "Notebook", Category: "Eletrônicos", Price: dec("2500.00"), Stock: 10})
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/vendas/", dto.CreateSaleRequest{ProductID: p.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.CreateSaleResponse](t, resp)
	assert.NotZero(t, out.SaleID)
	assert.Equal(t, p.ID, out.ProductID)
	assert.Equal(t, int64(2), out.Quantity)
	assert.True(t, out.Total.Equal(dec("5000.00")), "total = %s", out.Total)

	got, err := (&memProductRepo{s: store}).GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Stock)
}

func TestSaleCreate_EstoqueInsuficiente(t *testing.T) {
	store := newMemStore()
	p := store.seed(entity.Product{Name: "Mouse", Category: "Acessórios", Price: dec("80.00"), Stock: 1})
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/vendas/", dto.CreateSaleRequest{ProductID: p.ID, Quantity: 5})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, "Estoque insuficiente. Disponível: 1, Solicitado: 5", out.Message)

	got, err := (&memProductRepo{s: store}).GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Stock, "venda recusada não altera o estoque")
}

func TestSaleCreate_ProdutoNaoEncontrado(t *testing.T) {
	store := newMemStore()
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/vendas/", dto.CreateSaleRequest{ProductID: 999, Quantity: 1})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestSaleCreate_QuantidadeInvalida(t *testing.T) {
	store := newMemStore()
	p := store.seed(entity.Product{Name: "Teclado", Category: "Acessórios", Price: dec("150.00"), Stock: 3})
	app := buildTestApp(store)

	for _, qty := range []int64{0, -1} {
		resp := doJSON(t, app, http.MethodPost, "/api/vendas/", dto.CreateSaleRequest{ProductID: p.ID, Quantity: qty})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "quantidade %d", qty)
		resp.Body.Close()
	}
}

func TestSaleCreate_CorpoInvalido(t *testing.T) {
	store := newMemStore()
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/vendas/", "isto não é um objeto")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSaleList(t *testing.T) {
	store := newMemStore()
	p := store.seed(entity.Product{Name: "Monitor", Category: "Eletrônicos", Price: dec("1200.00"), Stock: 5})
	app := buildTestApp(store)

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/vendas/", dto.CreateSaleRequest{ProductID: p.ID, Quantity: 1})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/vendas/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.SaleResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Monitor", list[0].ProductName)
	assert.True(t, list[0].UnitPrice.Equal(dec("1200.00")))
	assert.True(t, !list[0].Date.Before(list[1].Date), "mais recentes primeiro")
}

func TestSaleList_PeriodoInvalido(t *testing.T) {
	store := newMemStore()
	app := buildTestApp(store)

	cases := []string{
		"/api/vendas/?data_inicio=2026-08-01",
		"/api/vendas/?data_inicio=01-08-2026&data_fim=2026-08-30",
		"/api/vendas/?data_inicio=2026-08-30&data_fim=2026-08-01",
	}
	for _, path := range cases {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestSaleList_PorPeriodo(t *testing.T) {
	store := newMemStore()
	p := store.seed(entity.Product{Name: "Cabo HDMI", Category: "Acessórios", Price: dec("35.00"), Stock: 10})
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/vendas/", dto.CreateSaleRequest{ProductID: p.ID, Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	today := timeNowDate()
	resp = doJSON(t, app, http.MethodGet, "/api/vendas/?data_inicio="+today+"&data_fim="+today, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.SaleResponse](t, resp)
	assert.Len(t, list, 1, "a venda de hoje entra no período que termina hoje")

	resp = doJSON(t, app, http.MethodGet, "/api/vendas/?data_inicio=2000-01-01&data_fim=2000-01-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decodeBody[[]dto.SaleResponse](t, resp)
	assert.Empty(t, list)
}
