package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type lineItemDao struct {
	db *sql.DB
}

// NewLineItemDao создаёт PostgreSQL-реализацию LineItemDao.
func NewLineItemDao(store *Store) domain.LineItemDao {
	return &lineItemDao{db: store.DB()}
}

// Create вставляет позицию заказа внутри переданной транзакционной области.
func (d *lineItemDao) Create(ctx context.Context, scope domain.TxScope, orderID, bookID int64, quantity int32) error {
	tx, err := scopeTx(scope)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO line_item (order_id, book_id, quantity)
		VALUES ($1, $2, $3)
	`, orderID, bookID, quantity); err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// FindByOrderID возвращает позиции заказа в порядке их создания
// (line_item_id — BIGSERIAL, возрастает с порядком вставки).
func (d *lineItemDao) FindByOrderID(ctx context.Context, orderID int64) ([]domain.LineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(ctx, `
		SELECT order_id, book_id, quantity
		FROM line_item
		WHERE order_id = $1
		ORDER BY line_item_id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.OrderID, &item.BookID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line items: %w", err)
	}

	return items, nil
}

var _ domain.LineItemDao = (*lineItemDao)(nil)
