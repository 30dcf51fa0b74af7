package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrQuantidadeInvalida   = errors.New("a quantidade deve ser maior que zero")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrProdutoComVendas     = errors.New("produto possui vendas registradas")
)

// EstoqueInsuficienteError indica que o estoque disponível não cobre a
// quantidade solicitada. Carrega os dois valores para diagnóstico.
type EstoqueInsuficienteError struct {
	Disponivel int64
	Solicitado int64
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("Estoque insuficiente. Disponível: %d, Solicitado: %d", e.Disponivel, e.Solicitado)
}

// IsEstoqueInsuficiente verifica se err é (ou embrulha) um EstoqueInsuficienteError.
func IsEstoqueInsuficiente(err error) bool {
	var target *EstoqueInsuficienteError
	return errors.As(err, &target)
}
