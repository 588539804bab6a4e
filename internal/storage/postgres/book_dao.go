package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

const opTimeout = 5 * time.Second

type bookDao struct {
	db *sql.DB
}

// NewBookDao создаёт PostgreSQL-реализацию BookDao.
func NewBookDao(store *Store) domain.BookDao {
	return &bookDao{db: store.DB()}
}

// FindByBookID возвращает книгу каталога или ErrBookNotFound.
func (d *bookDao) FindByBookID(ctx context.Context, bookID int64) (domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var book domain.Book
	err := d.db.QueryRowContext(ctx, `
		SELECT book_id, title, author, description, price_minor, rating, is_public, is_featured, category_id
		FROM book
		WHERE book_id = $1
	`, bookID).Scan(
		&book.ID, &book.Title, &book.Author, &book.Description,
		&book.PriceMinor, &book.Rating, &book.IsPublic, &book.IsFeatured, &book.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Book{}, domain.ErrBookNotFound
		}
		return domain.Book{}, fmt.Errorf("select book: %w", err)
	}
	return book, nil
}

var _ domain.BookDao = (*bookDao)(nil)
