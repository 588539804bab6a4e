package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitStorage_Memory(t *testing.T) {
	cfg := DefaultConfig()
	logger := log.New().WithField("component", "test")

	storage, err := initStorage(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("initStorage failed: %v", err)
	}
	t.Cleanup(func() {
		_ = storage.close()
	})

	if err := storage.check(); err != nil {
		t.Errorf("memory storage check should pass: %v", err)
	}

	// Каталог должен быть засеян.
	book, err := storage.books.FindByBookID(context.Background(), 1)
	if err != nil {
		t.Fatalf("seeded book not found: %v", err)
	}
	if book.Title == "" || book.PriceMinor <= 0 {
		t.Errorf("seeded book looks empty: %+v", book)
	}
}

func TestInitStorage_UnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = "dynamo"
	logger := log.New().WithField("component", "test")

	if _, err := initStorage(context.Background(), cfg, logger); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
