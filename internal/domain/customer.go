package domain

import "time"

// CustomerForm — сырые строки формы оформления заказа, как их прислал клиент.
// Поля не проверяются до вызова валидации.
type CustomerForm struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	CcNumber      string
	CcExpiryMonth string
	CcExpiryYear  string
}

// Customer — сохранённая запись покупателя. CcExpDate — нормализованная дата
// окончания действия карты (последний день месяца).
type Customer struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	Email     string
	CcNumber  string
	CcExpDate time.Time
}
