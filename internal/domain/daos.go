package domain

import (
	"context"
	"time"
)

// TxScope — транзакционная область с явным commit/rollback. Авто-коммит
// отключён на всё время её жизни. Rollback после завершённой транзакции —
// no-op, а не ошибка.
type TxScope interface {
	Commit() error
	Rollback() error
}

// TxProvider выдаёт транзакционную область. Она должна быть освобождена
// на каждом пути выхода вызывающей стороны.
type TxProvider interface {
	Begin(ctx context.Context) (TxScope, error)
}

// BookDao — доступ к каталогу книг.
type BookDao interface {
	// FindByBookID возвращает книгу или ErrBookNotFound.
	FindByBookID(ctx context.Context, bookID int64) (Book, error)
}

// CustomerDao — доступ к записям покупателей.
type CustomerDao interface {
	// Create сохраняет покупателя внутри scope и возвращает сгенерированный ID.
	Create(ctx context.Context, scope TxScope, name, address, phone, email, ccNumber string, ccExpDate time.Time) (int64, error)
	// FindByCustomerID возвращает покупателя или ErrCustomerNotFound.
	FindByCustomerID(ctx context.Context, customerID int64) (Customer, error)
}

// OrderDao — доступ к заказам.
type OrderDao interface {
	// Create сохраняет заказ внутри scope и возвращает сгенерированный ID.
	Create(ctx context.Context, scope TxScope, amountMinor int64, confirmationNumber int32, customerID int64) (int64, error)
	// FindByOrderID возвращает заказ или ErrOrderNotFound.
	FindByOrderID(ctx context.Context, orderID int64) (Order, error)
}

// LineItemDao — доступ к позициям заказов.
type LineItemDao interface {
	// Create сохраняет позицию заказа внутри scope.
	Create(ctx context.Context, scope TxScope, orderID, bookID int64, quantity int32) error
	// FindByOrderID возвращает позиции заказа в порядке их создания.
	// Пустой срез — допустимый результат.
	FindByOrderID(ctx context.Context, orderID int64) ([]LineItem, error)
}
