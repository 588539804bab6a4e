package memory

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type orderDao struct {
	store *Store
}

// NewOrderDao возвращает in-memory реализацию OrderDao.
func NewOrderDao(store *Store) domain.OrderDao {
	return &orderDao{store: store}
}

// Create буферизует запись заказа в scope и возвращает присвоенный ID.
func (d *orderDao) Create(
	_ context.Context,
	scope domain.TxScope,
	amountMinor int64,
	confirmationNumber int32,
	customerID int64,
) (int64, error) {
	t, err := scopeFor(scope)
	if err != nil {
		return 0, err
	}

	order := domain.Order{
		ID:                 d.store.allocOrderID(),
		AmountMinor:        amountMinor,
		ConfirmationNumber: confirmationNumber,
		CustomerID:         customerID,
		CreatedAt:          time.Now().UTC(),
	}
	if err := t.stage(func(s *Store) {
		s.orders[order.ID] = order
	}); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// FindByOrderID возвращает заказ или ErrOrderNotFound.
func (d *orderDao) FindByOrderID(_ context.Context, orderID int64) (domain.Order, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	order, ok := d.store.orders[orderID]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

var _ domain.OrderDao = (*orderDao)(nil)
