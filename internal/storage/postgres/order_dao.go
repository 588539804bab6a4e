package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type orderDao struct {
	db *sql.DB
}

// NewOrderDao создаёт PostgreSQL-реализацию OrderDao.
func NewOrderDao(store *Store) domain.OrderDao {
	return &orderDao{db: store.DB()}
}

// Create вставляет заказ внутри переданной транзакционной области и
// возвращает сгенерированный ID.
func (d *orderDao) Create(
	ctx context.Context,
	scope domain.TxScope,
	amountMinor int64,
	confirmationNumber int32,
	customerID int64,
) (int64, error) {
	tx, err := scopeTx(scope)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customer_order (amount_minor, confirmation_number, customer_id)
		VALUES ($1, $2, $3)
		RETURNING order_id
	`, amountMinor, confirmationNumber, customerID).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return orderID, nil
}

// FindByOrderID возвращает заказ или ErrOrderNotFound.
func (d *orderDao) FindByOrderID(ctx context.Context, orderID int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var order domain.Order
	err := d.db.QueryRowContext(ctx, `
		SELECT order_id, amount_minor, confirmation_number, customer_id, created_at
		FROM customer_order
		WHERE order_id = $1
	`, orderID).Scan(
		&order.ID, &order.AmountMinor, &order.ConfirmationNumber,
		&order.CustomerID, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	return order, nil
}

var _ domain.OrderDao = (*orderDao)(nil)
