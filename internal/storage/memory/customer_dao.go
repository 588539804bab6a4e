package memory

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type customerDao struct {
	store *Store
}

// NewCustomerDao возвращает in-memory реализацию CustomerDao.
func NewCustomerDao(store *Store) domain.CustomerDao {
	return &customerDao{store: store}
}

// Create буферизует запись покупателя в scope и возвращает присвоенный ID.
func (d *customerDao) Create(
	_ context.Context,
	scope domain.TxScope,
	name, address, phone, email, ccNumber string,
	ccExpDate time.Time,
) (int64, error) {
	t, err := scopeFor(scope)
	if err != nil {
		return 0, err
	}

	customer := domain.Customer{
		ID:        d.store.allocCustomerID(),
		Name:      name,
		Address:   address,
		Phone:     phone,
		Email:     email,
		CcNumber:  ccNumber,
		CcExpDate: ccExpDate,
	}
	if err := t.stage(func(s *Store) {
		s.customers[customer.ID] = customer
	}); err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// FindByCustomerID возвращает покупателя или ErrCustomerNotFound.
func (d *customerDao) FindByCustomerID(_ context.Context, customerID int64) (domain.Customer, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	customer, ok := d.store.customers[customerID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

var _ domain.CustomerDao = (*customerDao)(nil)
