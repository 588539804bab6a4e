package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/service/order"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/memory"
)

func newTestServer(t *testing.T) (*Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	seedCatalog(store)

	logger := log.New().WithField("component", "test")
	svc := order.NewService(
		memory.NewBookDao(store),
		memory.NewCustomerDao(store),
		memory.NewOrderDao(store),
		memory.NewLineItemDao(store),
		store,
		logger,
	)
	return NewServer(svc, memory.NewBookDao(store), nil, logger), store
}

func validOrderRequest(t *testing.T, items []cartItemPayload) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(placeOrderRequest{
		Customer: customerPayload{
			Name:          "John Reader",
			Address:       "12 Library Lane",
			Phone:         "(555) 123-4567",
			Email:         "john@example.com",
			CcNumber:      "4111111111111111",
			CcExpiryMonth: "12",
			CcExpiryYear:  "2030",
		},
		Items: items,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestPlaceOrderEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	// Каталог засеян: книга 1 стоит 899, книга 3 — 999.
	body := validOrderRequest(t, []cartItemPayload{
		{BookID: 1, Quantity: 2, PriceMinor: 899, CategoryID: 1},
		{BookID: 3, Quantity: 1, PriceMinor: 999, CategoryID: 2},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp placeOrderResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Positive(t, resp.OrderID)

	// Заказ читается обратно с итогом subtotal + наценка.
	getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/orders/%d", resp.OrderID), nil)
	getW := httptest.NewRecorder()
	server.Handler().ServeHTTP(getW, getReq)

	require.Equal(t, http.StatusOK, getW.Code, getW.Body.String())

	var details orderDetailsResponse
	require.NoError(t, json.NewDecoder(getW.Body).Decode(&details))
	require.Equal(t, resp.OrderID, details.OrderID)
	require.Equal(t, int64(2*899+999)+domain.DefaultSurchargeMinor, details.AmountMinor)
	require.Equal(t, "John Reader", details.CustomerName)
	require.Len(t, details.LineItems, 2)
	require.Equal(t, int64(1), details.LineItems[0].BookID)
	require.Equal(t, int64(3), details.LineItems[1].BookID)
}

func TestPlaceOrderEndpoint_ValidationError(t *testing.T) {
	server, _ := newTestServer(t)

	body, err := json.Marshal(placeOrderRequest{
		Customer: customerPayload{
			Name:          "Jo", // слишком короткое имя
			Address:       "12 Library Lane",
			Phone:         "5551234567",
			Email:         "john@example.com",
			CcNumber:      "4111111111111111",
			CcExpiryMonth: "12",
			CcExpiryYear:  "2030",
		},
		Items: []cartItemPayload{{BookID: 1, Quantity: 1, PriceMinor: 899, CategoryID: 1}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, "Invalid name field", resp["error"])
}

func TestPlaceOrderEndpoint_PriceMismatch(t *testing.T) {
	server, _ := newTestServer(t)

	// Клиент заявил цену, не совпадающую с каталожной.
	body := validOrderRequest(t, []cartItemPayload{
		{BookID: 1, Quantity: 1, PriceMinor: 1, CategoryID: 1},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, "Invalid price", resp["error"])
}

func TestPlaceOrderEndpoint_MalformedBody(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/9999", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderEndpoint_BadID(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/books/1", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp bookResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, int64(1), resp.BookID)
	require.Equal(t, "The Picture of Dorian Gray", resp.Title)
	require.Equal(t, int64(899), resp.PriceMinor)
}

func TestGetBookEndpoint_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/books/404", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
