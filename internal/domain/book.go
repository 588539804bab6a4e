package domain

// Category — раздел каталога (например, "Classics" или "Mystery").
type Category struct {
	ID   int64
	Name string
}

// Book — запись каталога. Цена хранится в минимальных денежных единицах (центах).
type Book struct {
	ID          int64
	Title       string
	Author      string
	Description string
	PriceMinor  int64
	Rating      int32
	IsPublic    bool
	IsFeatured  bool
	CategoryID  int64
}

// BookForm — клиентский снимок цены и категории книги на момент добавления в корзину.
// Сервер не доверяет этим значениям: при оформлении заказа они сверяются с каталогом.
type BookForm struct {
	PriceMinor int64
	CategoryID int64
}
