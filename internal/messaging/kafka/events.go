package kafka

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип события
type EventType string

const (
	// EventTypeOrderPlaced публикуется после успешного коммита заказа.
	EventTypeOrderPlaced EventType = "order.placed"
)

// Topics для Kafka
const (
	TopicOrderEvents = "bookstore.orders"
)

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventID     string    `json:"event_id"`
	EventType   EventType `json:"event_type"`
	OrderID     int64     `json:"order_id"`
	CustomerID  int64     `json:"customer_id"`
	AmountMinor int64     `json:"amount_minor"`
	LineItems   int       `json:"line_items"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderPlacedEvent создает событие успешно оформленного заказа.
func NewOrderPlacedEvent(orderID, customerID, amountMinor int64, lineItems int) *OrderEvent {
	return &OrderEvent{
		EventID:     uuid.NewString(),
		EventType:   EventTypeOrderPlaced,
		OrderID:     orderID,
		CustomerID:  customerID,
		AmountMinor: amountMinor,
		LineItems:   lineItems,
		Timestamp:   time.Now().UTC(),
	}
}
