package domain

// DefaultSurchargeMinor — фиксированная наценка за обработку заказа (в центах).
const DefaultSurchargeMinor int64 = 500

// ShoppingCartItem — одна позиция корзины: книга, количество и клиентский
// снимок цены/категории, который будет сверен с каталогом.
type ShoppingCartItem struct {
	BookID   int64
	Quantity int32
	BookForm BookForm
}

// ShoppingCart — корзина, переданная на оформление. Потребляется ровно один раз
// и не сохраняется как есть.
type ShoppingCart struct {
	Items          []ShoppingCartItem
	SurchargeMinor int64
}

// NewShoppingCart создаёт корзину с наценкой по умолчанию.
func NewShoppingCart(items []ShoppingCartItem) ShoppingCart {
	return ShoppingCart{
		Items:          items,
		SurchargeMinor: DefaultSurchargeMinor,
	}
}

// SubtotalMinor возвращает сумму позиций: qty * price по заявленным ценам.
// После валидации заявленные цены совпадают с каталожными.
func (c ShoppingCart) SubtotalMinor() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += int64(item.Quantity) * item.BookForm.PriceMinor
	}
	return sum
}

// TotalMinor возвращает итог заказа: подытог плюс наценка.
func (c ShoppingCart) TotalMinor() int64 {
	return c.SubtotalMinor() + c.SurchargeMinor
}
