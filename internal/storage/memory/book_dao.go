package memory

import (
	"context"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type bookDao struct {
	store *Store
}

// NewBookDao возвращает in-memory реализацию BookDao поверх общего Store.
func NewBookDao(store *Store) domain.BookDao {
	return &bookDao{store: store}
}

// FindByBookID возвращает книгу или ErrBookNotFound.
func (d *bookDao) FindByBookID(_ context.Context, bookID int64) (domain.Book, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	book, ok := d.store.books[bookID]
	if !ok {
		return domain.Book{}, domain.ErrBookNotFound
	}
	return book, nil
}

var _ domain.BookDao = (*bookDao)(nil)
