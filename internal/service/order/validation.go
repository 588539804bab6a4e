package order

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

const (
	minTextFieldLen = 4
	maxTextFieldLen = 45
	phoneDigits     = 10
	minCcDigits     = 14
	maxCcDigits     = 16
	maxItemQuantity = 99
)

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidateCustomer проверяет форму покупателя и возвращает InvalidParameterError
// для первого нарушенного поля. Побочных эффектов нет; now — текущая дата
// вызывающей стороны для сравнения срока действия карты.
func ValidateCustomer(form domain.CustomerForm, now time.Time) error {
	if !textFieldIsValid(form.Name) {
		return domain.NewInvalidParameter("Invalid name field")
	}
	if !textFieldIsValid(form.Address) {
		return domain.NewInvalidParameter("Invalid address field")
	}
	if !phoneIsValid(form.Phone) {
		return domain.NewInvalidParameter("Invalid phone field")
	}
	if !emailIsValid(form.Email) {
		return domain.NewInvalidParameter("Invalid email field")
	}
	if !ccNumberIsValid(form.CcNumber) {
		return domain.NewInvalidParameter("Invalid credit card number field")
	}
	if !expiryDateIsValid(form.CcExpiryMonth, form.CcExpiryYear, now) {
		return domain.NewInvalidParameter("Invalid expiry date")
	}
	return nil
}

// ValidateCart проверяет корзину против каталога: количество, затем цену,
// затем категорию, позиции в порядке корзины, с остановкой на первом
// нарушении. Ошибка чтения каталога пробрасывается как есть.
func ValidateCart(ctx context.Context, cart domain.ShoppingCart, books domain.BookDao) error {
	if len(cart.Items) == 0 {
		return domain.NewInvalidParameter("Cart is empty.")
	}
	for _, item := range cart.Items {
		if item.Quantity <= 0 || item.Quantity > maxItemQuantity {
			return domain.NewInvalidParameter("Invalid quantity")
		}
		book, err := books.FindByBookID(ctx, item.BookID)
		if err != nil {
			return fmt.Errorf("lookup book %d: %w", item.BookID, err)
		}
		if item.BookForm.PriceMinor != book.PriceMinor {
			return domain.NewInvalidParameter("Invalid price")
		}
		if item.BookForm.CategoryID != book.CategoryID {
			return domain.NewInvalidParameter("Invalid category")
		}
	}
	return nil
}

func textFieldIsValid(value string) bool {
	if value == "" {
		return false
	}
	return len(value) >= minTextFieldLen && len(value) <= maxTextFieldLen
}

func phoneIsValid(phone string) bool {
	if phone == "" {
		return false
	}
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) == phoneDigits
}

func emailIsValid(email string) bool {
	if email == "" {
		return false
	}
	if !emailPattern.MatchString(email) {
		return false
	}
	return !strings.HasSuffix(email, ".")
}

func ccNumberIsValid(ccNumber string) bool {
	if ccNumber == "" {
		return false
	}
	digits := nonDigitPattern.ReplaceAllString(ccNumber, "")
	return len(digits) >= minCcDigits && len(digits) <= maxCcDigits
}

func expiryDateIsValid(monthStr, yearStr string, now time.Time) bool {
	if monthStr == "" || yearStr == "" {
		return false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if year < 1 {
		return false
	}
	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}

// ccExpiryEndOfMonth переводит месяц/год карты в дату последнего календарного
// дня месяца, локальная полночь. Вызывается только после успешной валидации.
func ccExpiryEndOfMonth(monthStr, yearStr string) time.Time {
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	// День 0 следующего месяца — последний день заданного.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local)
}
