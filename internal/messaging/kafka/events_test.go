package kafka

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewOrderPlacedEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewOrderPlacedEvent(7, 3, 3897, 2)

	if event.EventID == "" {
		t.Error("event id must be set")
	}
	if event.EventType != EventTypeOrderPlaced {
		t.Errorf("unexpected event type: %s", event.EventType)
	}
	if event.OrderID != 7 || event.CustomerID != 3 {
		t.Errorf("unexpected ids: %+v", event)
	}
	if event.AmountMinor != 3897 || event.LineItems != 2 {
		t.Errorf("unexpected payload: %+v", event)
	}
	if event.Timestamp.Before(before) {
		t.Errorf("timestamp %v is before %v", event.Timestamp, before)
	}
}

func TestOrderEventJSON(t *testing.T) {
	event := NewOrderPlacedEvent(7, 3, 3897, 2)

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"event_id", "event_type", "order_id", "customer_id", "amount_minor", "line_items", "timestamp"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing json key %q", key)
		}
	}
	if decoded["event_type"] != "order.placed" {
		t.Errorf("unexpected event_type: %v", decoded["event_type"])
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		event := NewOrderPlacedEvent(int64(i), 1, 100, 1)
		if _, dup := seen[event.EventID]; dup {
			t.Fatalf("duplicate event id %s", event.EventID)
		}
		seen[event.EventID] = struct{}{}
	}
}
