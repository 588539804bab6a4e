package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/health"
	"github.com/vladislavdragonenkov/bookstore/internal/service/order"
)

// Server — HTTP API магазина поверх gin.
type Server struct {
	engine *gin.Engine
	orders order.Service
	books  domain.BookDao
	logger *log.Entry
}

// NewServer собирает роутер. healthHandler может быть nil.
func NewServer(orders order.Service, books domain.BookDao, healthHandler *health.Handler, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.WithField("component", "http")
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		orders: orders,
		books:  books,
		logger: logger,
	}

	api := engine.Group("/api")
	api.POST("/orders", s.placeOrder)
	api.GET("/orders/:orderId", s.getOrder)
	api.GET("/books/:bookId", s.getBook)

	if healthHandler != nil {
		engine.GET("/health", gin.WrapH(healthHandler))
	}

	return s
}

// Handler возвращает корневой http.Handler для запуска сервера.
func (s *Server) Handler() http.Handler {
	return s.engine
}

type customerPayload struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CcNumber      string `json:"ccNumber"`
	CcExpiryMonth string `json:"ccExpiryMonth"`
	CcExpiryYear  string `json:"ccExpiryYear"`
}

type cartItemPayload struct {
	BookID     int64 `json:"bookId"`
	Quantity   int32 `json:"quantity"`
	PriceMinor int64 `json:"priceMinor"`
	CategoryID int64 `json:"categoryId"`
}

type placeOrderRequest struct {
	Customer customerPayload   `json:"customer"`
	Items    []cartItemPayload `json:"items"`
}

type placeOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type bookResponse struct {
	BookID      int64  `json:"bookId"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	PriceMinor  int64  `json:"priceMinor"`
	Rating      int32  `json:"rating"`
	CategoryID  int64  `json:"categoryId"`
}

type lineItemResponse struct {
	BookID     int64  `json:"bookId"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Quantity   int32  `json:"quantity"`
	PriceMinor int64  `json:"priceMinor"`
}

type orderDetailsResponse struct {
	OrderID            int64              `json:"orderId"`
	AmountMinor        int64              `json:"amountMinor"`
	ConfirmationNumber int32              `json:"confirmationNumber"`
	CreatedAt          time.Time          `json:"createdAt"`
	CustomerName       string             `json:"customerName"`
	CustomerAddress    string             `json:"customerAddress"`
	CustomerEmail      string             `json:"customerEmail"`
	LineItems          []lineItemResponse `json:"lineItems"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	form := domain.CustomerForm{
		Name:          req.Customer.Name,
		Address:       req.Customer.Address,
		Phone:         req.Customer.Phone,
		Email:         req.Customer.Email,
		CcNumber:      req.Customer.CcNumber,
		CcExpiryMonth: req.Customer.CcExpiryMonth,
		CcExpiryYear:  req.Customer.CcExpiryYear,
	}
	items := make([]domain.ShoppingCartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.ShoppingCartItem{
			BookID:   it.BookID,
			Quantity: it.Quantity,
			BookForm: domain.BookForm{
				PriceMinor: it.PriceMinor,
				CategoryID: it.CategoryID,
			},
		})
	}

	orderID, err := s.orders.PlaceOrder(c.Request.Context(), form, domain.NewShoppingCart(items))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placeOrderResponse{OrderID: orderID})
}

func (s *Server) getOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	details, err := s.orders.GetOrderDetails(c.Request.Context(), orderID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp := orderDetailsResponse{
		OrderID:            details.Order.ID,
		AmountMinor:        details.Order.AmountMinor,
		ConfirmationNumber: details.Order.ConfirmationNumber,
		CreatedAt:          details.Order.CreatedAt,
		CustomerName:       details.Customer.Name,
		CustomerAddress:    details.Customer.Address,
		CustomerEmail:      details.Customer.Email,
		LineItems:          make([]lineItemResponse, 0, len(details.LineItems)),
	}
	for i, item := range details.LineItems {
		li := lineItemResponse{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
		if i < len(details.Books) {
			li.Title = details.Books[i].Title
			li.Author = details.Books[i].Author
			li.PriceMinor = details.Books[i].PriceMinor
		}
		resp.LineItems = append(resp.LineItems, li)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	book, err := s.books.FindByBookID(c.Request.Context(), bookID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookResponse{
		BookID:      book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		PriceMinor:  book.PriceMinor,
		Rating:      book.Rating,
		CategoryID:  book.CategoryID,
	})
}

// writeError переводит доменные ошибки в HTTP-статусы.
func (s *Server) writeError(c *gin.Context, err error) {
	var invalid *domain.InvalidParameterError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
	case errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
