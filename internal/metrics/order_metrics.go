package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики оформления заказов.
type OrderMetrics struct {
	// Счётчики исходов PlaceOrder
	ordersPlaced   prometheus.Counter
	ordersRejected prometheus.Counter
	ordersFailed   prometheus.Counter

	// Количество созданных позиций заказов
	lineItemsCreated prometheus.Counter

	// Гистограмма времени оформления
	placeOrderDuration prometheus.Histogram
}

// NewOrderMetrics создаёт метрики заказов в default registry. Повторная
// регистрация переиспользует уже существующие коллекторы.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bookstore_orders_placed_total",
			Help: "Total number of orders successfully placed",
		}),
		ordersRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bookstore_orders_rejected_total",
			Help: "Total number of orders rejected by validation",
		}),
		ordersFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bookstore_orders_failed_total",
			Help: "Total number of orders failed on persistence",
		}),
		lineItemsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bookstore_line_items_created_total",
			Help: "Total number of order line items created",
		}),
		placeOrderDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "bookstore_place_order_duration_seconds",
			Help:    "Duration of place order calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderPlaced увеличивает счётчик успешно оформленных заказов.
func (m *OrderMetrics) RecordOrderPlaced() {
	m.ordersPlaced.Inc()
}

// RecordOrderRejected увеличивает счётчик заказов, отклонённых валидацией.
func (m *OrderMetrics) RecordOrderRejected() {
	m.ordersRejected.Inc()
}

// RecordOrderFailed увеличивает счётчик заказов, не прошедших запись.
func (m *OrderMetrics) RecordOrderFailed() {
	m.ordersFailed.Inc()
}

// RecordLineItems увеличивает счётчик созданных позиций.
func (m *OrderMetrics) RecordLineItems(count int) {
	m.lineItemsCreated.Add(float64(count))
}

// RecordPlaceOrderDuration записывает длительность вызова PlaceOrder.
func (m *OrderMetrics) RecordPlaceOrderDuration(duration time.Duration) {
	m.placeOrderDuration.Observe(duration.Seconds())
}
