package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	logger := log.New().WithField("component", "test")

	producer, err := initKafkaProducer("", logger)
	if err != nil {
		t.Fatalf("empty brokers should not error: %v", err)
	}
	if producer != nil {
		t.Fatal("expected nil producer for empty brokers")
	}

	// closeKafka с nil producer — no-op.
	closeKafka(nil, logger)
}
