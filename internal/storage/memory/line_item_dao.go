package memory

import (
	"context"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type lineItemDao struct {
	store *Store
}

// NewLineItemDao возвращает in-memory реализацию LineItemDao.
func NewLineItemDao(store *Store) domain.LineItemDao {
	return &lineItemDao{store: store}
}

// Create буферизует позицию заказа в scope.
func (d *lineItemDao) Create(_ context.Context, scope domain.TxScope, orderID, bookID int64, quantity int32) error {
	t, err := scopeFor(scope)
	if err != nil {
		return err
	}

	item := domain.LineItem{
		OrderID:  orderID,
		BookID:   bookID,
		Quantity: quantity,
	}
	return t.stage(func(s *Store) {
		s.lineItems = append(s.lineItems, item)
	})
}

// FindByOrderID возвращает позиции заказа в порядке создания.
func (d *lineItemDao) FindByOrderID(_ context.Context, orderID int64) ([]domain.LineItem, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	result := make([]domain.LineItem, 0)
	for _, item := range d.store.lineItems {
		if item.OrderID == orderID {
			result = append(result, item)
		}
	}
	return result, nil
}

var _ domain.LineItemDao = (*lineItemDao)(nil)
