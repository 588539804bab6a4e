package domain

import "errors"

var (
	// ErrBookNotFound возвращается, если книги нет в каталоге.
	ErrBookNotFound = errors.New("book not found")
	// ErrCategoryNotFound возвращается, если раздел каталога не найден.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCustomerNotFound возвращается, если покупатель не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrTransactionAborted сигнализирует, что запись внутри транзакции не
	// удалась и транзакция была откачена. Исходная причина доступна через
	// обёртку ошибки.
	ErrTransactionAborted = errors.New("order transaction aborted")
	// ErrPersistenceFailure — невосстановимая ошибка хранилища (неудавшийся
	// rollback, недоступное подключение). Не маскируется и не ретраится.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// InvalidParameterError описывает первое нарушенное правило валидации формы
// или корзины. Состояние при этом не меняется.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string {
	return e.Message
}

// NewInvalidParameter создаёт ошибку валидации с человекочитаемым сообщением.
func NewInvalidParameter(message string) error {
	return &InvalidParameterError{Message: message}
}

// IsInvalidParameter проверяет, является ли ошибка отказом валидации.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}
