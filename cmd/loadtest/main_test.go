package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    loadMode
		wantErr string
	}{
		{name: "place", input: "place", want: modePlace},
		{name: "place-get", input: "place-get", want: modePlaceGet},
		{name: "trimmed", input: "  place  ", want: modePlace},
		{name: "unsupported", input: "bad", wantErr: "unsupported mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMode(tc.input)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func newFakeBookstore(t *testing.T) (*httptest.Server, *int64) {
	t.Helper()

	var placed int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/books/1", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(bookInfo{BookID: 1, PriceMinor: 899, CategoryID: 1})
	})
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body placeOrderBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(body.Items) != 1 || body.Items[0].PriceMinor != 899 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		id := atomic.AddInt64(&placed, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"orderId":%d}`, id)
	})
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orderId":1,"amountMinor":1399}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &placed
}

func TestRunScenario_Place(t *testing.T) {
	srv, placed := newFakeBookstore(t)
	client := srv.Client()

	book, err := fetchBook(client, srv.URL, 1)
	if err != nil {
		t.Fatalf("fetchBook failed: %v", err)
	}
	if book.PriceMinor != 899 {
		t.Fatalf("unexpected book price: %d", book.PriceMinor)
	}

	cfg := config{
		baseURL:  srv.URL,
		mode:     modePlace,
		bookID:   1,
		quantity: 1,
		timeout:  2 * time.Second,
	}
	col := newCollector()

	if err := runScenario(client, cfg, book, 0, "test-run", col); err != nil {
		t.Fatalf("runScenario failed: %v", err)
	}
	if got := atomic.LoadInt64(placed); got != 1 {
		t.Fatalf("expected 1 placed order, got %d", got)
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.TotalScenarios != 1 || result.FailedScenarios != 0 {
		t.Fatalf("unexpected report: %+v", result)
	}
	if result.Methods["PlaceOrder"].Calls != 1 {
		t.Fatalf("expected 1 PlaceOrder call, got %+v", result.Methods)
	}
}

func TestRunScenario_PlaceGet(t *testing.T) {
	srv, _ := newFakeBookstore(t)
	client := srv.Client()

	book, err := fetchBook(client, srv.URL, 1)
	if err != nil {
		t.Fatalf("fetchBook failed: %v", err)
	}

	cfg := config{
		baseURL:  srv.URL,
		mode:     modePlaceGet,
		bookID:   1,
		quantity: 1,
		timeout:  2 * time.Second,
	}
	col := newCollector()

	if err := runScenario(client, cfg, book, 0, "test-run", col); err != nil {
		t.Fatalf("runScenario failed: %v", err)
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.Methods["GetOrder"].Calls != 1 {
		t.Fatalf("expected 1 GetOrder call, got %+v", result.Methods)
	}
}

func TestRunScenario_ServerRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid price"}`))
	}))
	t.Cleanup(srv.Close)

	cfg := config{
		baseURL:  srv.URL,
		mode:     modePlace,
		bookID:   1,
		quantity: 1,
		timeout:  2 * time.Second,
	}
	col := newCollector()

	err := runScenario(srv.Client(), cfg, bookInfo{BookID: 1, PriceMinor: 899}, 0, "test-run", col)
	if err == nil {
		t.Fatal("expected scenario error")
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.FailedScenarios != 1 {
		t.Fatalf("expected 1 failed scenario, got %+v", result)
	}
	if result.Methods["PlaceOrder"].Statuses["400"] != 1 {
		t.Fatalf("expected 400 recorded, got %+v", result.Methods["PlaceOrder"].Statuses)
	}
}

func TestDispatchJobs_CountMode(t *testing.T) {
	jobs := make(chan int, 10)
	dispatchJobs(jobs, config{total: 5})

	var got []int
	for id := range jobs {
		got = append(got, id)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(got))
	}
}

func TestBuildLatencySummary(t *testing.T) {
	summary := buildLatencySummary([]float64{5, 1, 3, 2, 4})

	if summary.Min != 1 || summary.Max != 5 {
		t.Fatalf("unexpected min/max: %+v", summary)
	}
	if summary.Avg != 3 {
		t.Fatalf("unexpected avg: %v", summary.Avg)
	}
	if summary.P50 != 3 {
		t.Fatalf("unexpected p50: %v", summary.P50)
	}
}

func TestPercentileEdgeCases(t *testing.T) {
	if got := percentile(nil, 95); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
	if got := percentile([]float64{7}, 99); got != 7 {
		t.Fatalf("expected single value, got %v", got)
	}
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	result := report{TotalScenarios: 10, SuccessScenarios: 10}
	if err := writeJSONReport(path, result); err != nil {
		t.Fatalf("writeJSONReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.TotalScenarios != 10 {
		t.Fatalf("unexpected report content: %+v", decoded)
	}
}

func TestWriteJSONReport_RejectsEscapingPath(t *testing.T) {
	if err := writeJSONReport("../outside.json", report{}); err == nil {
		t.Fatal("expected error for escaping path")
	}
}
