package order

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/bookstore/internal/metrics"
)

// Service — операции оформления и чтения заказов, доступные внешним слоям.
type Service interface {
	// PlaceOrder валидирует форму и корзину, после чего атомарно создаёт
	// покупателя, заказ и позиции. Возвращает ID нового заказа.
	PlaceOrder(ctx context.Context, form domain.CustomerForm, cart domain.ShoppingCart) (int64, error)
	// GetOrderDetails собирает полное представление заказа для отображения.
	GetOrderDetails(ctx context.Context, orderID int64) (domain.OrderDetails, error)
}

// service — координатор транзакции заказа. Все зависимости передаются явно
// при создании; глобального контекста приложения нет.
type service struct {
	books     domain.BookDao
	customers domain.CustomerDao
	orders    domain.OrderDao
	lineItems domain.LineItemDao
	tx        domain.TxProvider

	producer      *kafka.Producer // опциональный, nil отключает публикацию событий
	logger        *log.Entry
	metrics       *metrics.OrderMetrics
	confirmations *confirmationSource
	now           func() time.Time
}

// NewService конструирует координатор заказов с явными зависимостями.
func NewService(
	books domain.BookDao,
	customers domain.CustomerDao,
	orders domain.OrderDao,
	lineItems domain.LineItemDao,
	tx domain.TxProvider,
	logger *log.Entry,
) Service {
	return NewServiceWithKafka(books, customers, orders, lineItems, tx, nil, logger)
}

// NewServiceWithKafka дополнительно подключает Kafka producer: после успешного
// коммита публикуется событие OrderPlaced.
func NewServiceWithKafka(
	books domain.BookDao,
	customers domain.CustomerDao,
	orders domain.OrderDao,
	lineItems domain.LineItemDao,
	tx domain.TxProvider,
	producer *kafka.Producer,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &service{
		books:         books,
		customers:     customers,
		orders:        orders,
		lineItems:     lineItems,
		tx:            tx,
		producer:      producer,
		logger:        logger,
		metrics:       metrics.NewOrderMetrics(),
		confirmations: newConfirmationSource(),
		now:           time.Now,
	}
}

// PlaceOrder выполняет шаги из §оформления: валидация, нормализация даты
// карты, транзакционное создание записей, коммит. При ошибке записи
// транзакция откатывается целиком и возвращается типизированная
// ErrTransactionAborted с исходной причиной; неудавшийся rollback —
// ErrPersistenceFailure.
func (s *service) PlaceOrder(ctx context.Context, form domain.CustomerForm, cart domain.ShoppingCart) (int64, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordPlaceOrderDuration(time.Since(start))
	}()

	if err := ValidateCustomer(form, s.now()); err != nil {
		s.metrics.RecordOrderRejected()
		return 0, err
	}
	if err := ValidateCart(ctx, cart, s.books); err != nil {
		if domain.IsInvalidParameter(err) {
			s.metrics.RecordOrderRejected()
		} else {
			s.metrics.RecordOrderFailed()
		}
		return 0, err
	}

	ccExpDate := ccExpiryEndOfMonth(form.CcExpiryMonth, form.CcExpiryYear)

	scope, err := s.tx.Begin(ctx)
	if err != nil {
		s.metrics.RecordOrderFailed()
		return 0, fmt.Errorf("%w: begin transaction: %v", domain.ErrPersistenceFailure, err)
	}
	// Страховка освобождения области на каждом пути выхода; после
	// commit/rollback это no-op.
	defer func() {
		_ = scope.Rollback()
	}()

	orderID, customerID, txErr := s.performPlaceOrder(ctx, scope, form, ccExpDate, cart)
	if txErr != nil {
		if rbErr := scope.Rollback(); rbErr != nil {
			s.metrics.RecordOrderFailed()
			s.logger.WithError(rbErr).Error("rollback failed after aborted order transaction")
			return 0, fmt.Errorf("%w: rollback failed: %v (original cause: %v)", domain.ErrPersistenceFailure, rbErr, txErr)
		}
		s.metrics.RecordOrderFailed()
		s.logger.WithError(txErr).Warn("order transaction rolled back")
		return 0, fmt.Errorf("%w: %v", domain.ErrTransactionAborted, txErr)
	}

	s.metrics.RecordOrderPlaced()
	s.metrics.RecordLineItems(len(cart.Items))
	s.logger.WithFields(log.Fields{
		"order_id":     orderID,
		"customer_id":  customerID,
		"amount_minor": cart.TotalMinor(),
		"line_items":   len(cart.Items),
	}).Info("order placed")

	s.publishOrderPlaced(orderID, customerID, cart)

	return orderID, nil
}

// performPlaceOrder выполняет записи внутри транзакционной области и коммитит.
// Любая ошибка возвращается вызывающему для отката.
func (s *service) performPlaceOrder(
	ctx context.Context,
	scope domain.TxScope,
	form domain.CustomerForm,
	ccExpDate time.Time,
	cart domain.ShoppingCart,
) (orderID, customerID int64, err error) {
	customerID, err = s.customers.Create(ctx, scope, form.Name, form.Address, form.Phone, form.Email, form.CcNumber, ccExpDate)
	if err != nil {
		return 0, 0, fmt.Errorf("create customer: %w", err)
	}

	orderID, err = s.orders.Create(ctx, scope, cart.TotalMinor(), s.confirmations.Next(), customerID)
	if err != nil {
		return 0, 0, fmt.Errorf("create order: %w", err)
	}

	for _, item := range cart.Items {
		if err = s.lineItems.Create(ctx, scope, orderID, item.BookID, item.Quantity); err != nil {
			return 0, 0, fmt.Errorf("create line item for book %d: %w", item.BookID, err)
		}
	}

	if err = scope.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit order transaction: %w", err)
	}
	return orderID, customerID, nil
}

// GetOrderDetails собирает заказ, покупателя, позиции и книги. Отсутствие
// любой записи — фатальная ошибка, частичное представление не возвращается.
func (s *service) GetOrderDetails(ctx context.Context, orderID int64) (domain.OrderDetails, error) {
	order, err := s.orders.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.OrderDetails{}, fmt.Errorf("find order %d: %w", orderID, err)
	}
	customer, err := s.customers.FindByCustomerID(ctx, order.CustomerID)
	if err != nil {
		return domain.OrderDetails{}, fmt.Errorf("find customer %d: %w", order.CustomerID, err)
	}
	lineItems, err := s.lineItems.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.OrderDetails{}, fmt.Errorf("find line items for order %d: %w", orderID, err)
	}
	books := make([]domain.Book, 0, len(lineItems))
	for _, item := range lineItems {
		book, err := s.books.FindByBookID(ctx, item.BookID)
		if err != nil {
			return domain.OrderDetails{}, fmt.Errorf("find book %d: %w", item.BookID, err)
		}
		books = append(books, book)
	}
	return domain.OrderDetails{
		Order:     order,
		Customer:  customer,
		LineItems: lineItems,
		Books:     books,
	}, nil
}

// publishOrderPlaced отправляет событие в Kafka. Ошибка публикации только
// логируется: заказ уже закоммичен и не должен от неё зависеть.
func (s *service) publishOrderPlaced(orderID, customerID int64, cart domain.ShoppingCart) {
	if s.producer == nil {
		return
	}
	event := kafka.NewOrderPlacedEvent(orderID, customerID, cart.TotalMinor(), len(cart.Items))
	if err := s.producer.PublishEvent(kafka.TopicOrderEvents, fmt.Sprintf("%d", orderID), event); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to publish order placed event")
	}
}

var _ Service = (*service)(nil)
