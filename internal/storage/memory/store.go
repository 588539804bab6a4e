package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// Store — in-memory хранилище для локальной разработки и тестов. Все DAO
// этого пакета разделяют один Store.
type Store struct {
	mu sync.RWMutex

	categories map[int64]domain.Category
	books      map[int64]domain.Book
	customers  map[int64]domain.Customer
	orders     map[int64]domain.Order
	// Позиции хранятся срезом, чтобы сохранять порядок создания.
	lineItems []domain.LineItem

	nextCategoryID int64
	nextBookID     int64
	nextCustomerID int64
	nextOrderID    int64
}

// NewStore создаёт пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]domain.Category),
		books:      make(map[int64]domain.Book),
		customers:  make(map[int64]domain.Customer),
		orders:     make(map[int64]domain.Order),
	}
}

// AddCategory добавляет раздел каталога, присваивая ему ID. Каталог наполняется
// вне транзакций заказов.
func (s *Store) AddCategory(name string) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++
	category := domain.Category{ID: s.nextCategoryID, Name: name}
	s.categories[category.ID] = category
	return category
}

// AddBook добавляет книгу в каталог, присваивая ей ID.
func (s *Store) AddBook(book domain.Book) domain.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextBookID++
	book.ID = s.nextBookID
	s.books[book.ID] = book
	return book
}

// Begin выдаёт транзакционную область: записи буферизуются и применяются
// только при Commit, Rollback их отбрасывает целиком.
func (s *Store) Begin(_ context.Context) (domain.TxScope, error) {
	return &txScope{store: s}, nil
}

// txScope буферизует записи до коммита. ID выдаются в момент создания записи,
// при откате они просто сгорают.
type txScope struct {
	store    *Store
	mu       sync.Mutex
	staged   []func(*Store)
	finished bool
}

func (t *txScope) stage(write func(*Store)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return errors.New("tx scope already finished")
	}
	t.staged = append(t.staged, write)
	return nil
}

// Commit применяет все отложенные записи к хранилищу.
func (t *txScope) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return errors.New("tx scope already finished")
	}
	t.finished = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, write := range t.staged {
		write(t.store)
	}
	t.staged = nil
	return nil
}

// Rollback отбрасывает отложенные записи. Повторный вызов после
// commit/rollback — no-op.
func (t *txScope) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return nil
	}
	t.finished = true
	t.staged = nil
	return nil
}

// scopeFor проверяет, что переданная область принадлежит этому пакету.
func scopeFor(scope domain.TxScope) (*txScope, error) {
	t, ok := scope.(*txScope)
	if !ok {
		return nil, errors.New("tx scope was not created by memory store")
	}
	return t, nil
}

func (s *Store) allocCustomerID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCustomerID++
	return s.nextCustomerID
}

func (s *Store) allocOrderID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOrderID++
	return s.nextOrderID
}

var _ domain.TxProvider = (*Store)(nil)
var _ domain.TxScope = (*txScope)(nil)
