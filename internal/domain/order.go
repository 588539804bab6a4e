package domain

import "time"

// Order — заказ покупателя. Создаётся атомарно вместе с позициями и после
// этого не изменяется.
type Order struct {
	ID                 int64
	AmountMinor        int64
	ConfirmationNumber int32
	CustomerID         int64
	CreatedAt          time.Time
}

// LineItem — позиция заказа. Принадлежит ровно одному заказу.
type LineItem struct {
	OrderID  int64
	BookID   int64
	Quantity int32
}

// OrderDetails — read-only представление заказа для отображения: сам заказ,
// покупатель, позиции и книги в том же порядке, что и позиции.
type OrderDetails struct {
	Order     Order
	Customer  Customer
	LineItems []LineItem
	Books     []Book
}
