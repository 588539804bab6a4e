package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type customerDao struct {
	db *sql.DB
}

// NewCustomerDao создаёт PostgreSQL-реализацию CustomerDao.
func NewCustomerDao(store *Store) domain.CustomerDao {
	return &customerDao{db: store.DB()}
}

// Create вставляет покупателя внутри переданной транзакционной области и
// возвращает сгенерированный ID.
func (d *customerDao) Create(
	ctx context.Context,
	scope domain.TxScope,
	name, address, phone, email, ccNumber string,
	ccExpDate time.Time,
) (int64, error) {
	tx, err := scopeTx(scope)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var customerID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customer (name, address, phone, email, cc_number, cc_exp_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id
	`, name, address, phone, email, ccNumber, ccExpDate).Scan(&customerID)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return customerID, nil
}

// FindByCustomerID возвращает покупателя или ErrCustomerNotFound.
func (d *customerDao) FindByCustomerID(ctx context.Context, customerID int64) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var customer domain.Customer
	err := d.db.QueryRowContext(ctx, `
		SELECT customer_id, name, address, phone, email, cc_number, cc_exp_date
		FROM customer
		WHERE customer_id = $1
	`, customerID).Scan(
		&customer.ID, &customer.Name, &customer.Address, &customer.Phone,
		&customer.Email, &customer.CcNumber, &customer.CcExpDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}
	return customer, nil
}

var _ domain.CustomerDao = (*customerDao)(nil)
