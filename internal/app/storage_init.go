package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/memory"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/postgres"
)

// storageBundle собирает DAO и транзакционный провайдер выбранного драйвера.
type storageBundle struct {
	books     domain.BookDao
	customers domain.CustomerDao
	orders    domain.OrderDao
	lineItems domain.LineItemDao
	tx        domain.TxProvider

	// checkFn — проверка доступности для health-эндпоинтов.
	checkFn func() error
	closeFn func() error
}

func (b *storageBundle) check() error {
	if b.checkFn == nil {
		return nil
	}
	return b.checkFn()
}

func (b *storageBundle) close() error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn()
}

// initStorage поднимает хранилище согласно конфигурации.
func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (*storageBundle, error) {
	switch cfg.StorageDriver {
	case StorageMemory:
		store := memory.NewStore()
		seedCatalog(store)
		logger.Info("using in-memory storage with seeded catalog")
		return &storageBundle{
			books:     memory.NewBookDao(store),
			customers: memory.NewCustomerDao(store),
			orders:    memory.NewOrderDao(store),
			lineItems: memory.NewLineItemDao(store),
			tx:        store,
		}, nil

	case StoragePostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("postgres migrations applied")
		}
		logger.Info("using postgres storage")
		return &storageBundle{
			books:     postgres.NewBookDao(store),
			customers: postgres.NewCustomerDao(store),
			orders:    postgres.NewOrderDao(store),
			lineItems: postgres.NewLineItemDao(store),
			tx:        store,
			checkFn: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return store.Ping(ctx)
			},
			closeFn: store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// seedCatalog наполняет in-memory каталог тем же набором, что и seed-миграция.
func seedCatalog(store *memory.Store) {
	classics := store.AddCategory("Classics")
	mystery := store.AddCategory("Mystery")
	romance := store.AddCategory("Romance")
	fantasy := store.AddCategory("Fantasy")

	books := []domain.Book{
		{Title: "The Picture of Dorian Gray", Author: "Oscar Wilde", PriceMinor: 899, Rating: 4, IsPublic: true, IsFeatured: true, CategoryID: classics.ID},
		{Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", PriceMinor: 1299, Rating: 5, IsPublic: true, CategoryID: classics.ID},
		{Title: "The Hound of the Baskervilles", Author: "Arthur Conan Doyle", PriceMinor: 999, Rating: 4, IsPublic: true, IsFeatured: true, CategoryID: mystery.ID},
		{Title: "And Then There Were None", Author: "Agatha Christie", PriceMinor: 1099, Rating: 5, IsPublic: true, CategoryID: mystery.ID},
		{Title: "Pride and Prejudice", Author: "Jane Austen", PriceMinor: 799, Rating: 5, IsPublic: true, IsFeatured: true, CategoryID: romance.ID},
		{Title: "The Name of the Wind", Author: "Patrick Rothfuss", PriceMinor: 1499, Rating: 4, IsPublic: true, CategoryID: fantasy.ID},
	}
	for _, b := range books {
		store.AddBook(b)
	}
}
