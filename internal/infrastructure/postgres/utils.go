package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isCheckViolation verifica se um erro é violação de constraint CHECK (23514),
// por exemplo o CHECK (estoque >= 0) da tabela produtos.
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514" // check_violation
}

// isForeignKeyViolation verifica se um erro é violação de chave estrangeira
// (23503), por exemplo venda referenciando produto inexistente.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503" // foreign_key_violation
}
