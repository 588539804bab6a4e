package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// txScope оборачивает *sql.Tx в domain.TxScope. Авто-коммит отключён на всё
// время жизни транзакции — это семантика database/sql.
type txScope struct {
	tx *sql.Tx
}

// Begin открывает транзакцию заказа. Область должна быть завершена
// Commit/Rollback на каждом пути выхода вызывающей стороны.
func (s *Store) Begin(ctx context.Context) (domain.TxScope, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &txScope{tx: tx}, nil
}

func (t *txScope) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Rollback откатывает транзакцию. После завершённой транзакции — no-op.
func (t *txScope) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return nil
		}
		return fmt.Errorf("rollback tx: %w", err)
	}
	return nil
}

// scopeTx достаёт *sql.Tx из области, созданной этим Store.
func scopeTx(scope domain.TxScope) (*sql.Tx, error) {
	t, ok := scope.(*txScope)
	if !ok {
		return nil, fmt.Errorf("unexpected tx scope type %T", scope)
	}
	return t.tx, nil
}

var _ domain.TxProvider = (*Store)(nil)
var _ domain.TxScope = (*txScope)(nil)
