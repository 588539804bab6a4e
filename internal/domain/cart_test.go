package domain

import "testing"

func TestNewShoppingCart(t *testing.T) {
	cart := NewShoppingCart([]ShoppingCartItem{
		{BookID: 1, Quantity: 1, BookForm: BookForm{PriceMinor: 899}},
	})
	if cart.SurchargeMinor != DefaultSurchargeMinor {
		t.Fatalf("expected default surcharge %d, got %d", DefaultSurchargeMinor, cart.SurchargeMinor)
	}
}

func TestShoppingCartTotals(t *testing.T) {
	cart := NewShoppingCart([]ShoppingCartItem{
		{BookID: 1, Quantity: 2, BookForm: BookForm{PriceMinor: 899}},
		{BookID: 2, Quantity: 1, BookForm: BookForm{PriceMinor: 1299}},
	})

	wantSubtotal := int64(2*899 + 1299)
	if got := cart.SubtotalMinor(); got != wantSubtotal {
		t.Errorf("SubtotalMinor() = %d, want %d", got, wantSubtotal)
	}
	if got := cart.TotalMinor(); got != wantSubtotal+DefaultSurchargeMinor {
		t.Errorf("TotalMinor() = %d, want %d", got, wantSubtotal+DefaultSurchargeMinor)
	}
}

func TestShoppingCartTotals_Empty(t *testing.T) {
	cart := NewShoppingCart(nil)
	if got := cart.SubtotalMinor(); got != 0 {
		t.Errorf("SubtotalMinor() = %d, want 0", got)
	}
	if got := cart.TotalMinor(); got != DefaultSurchargeMinor {
		t.Errorf("TotalMinor() = %d, want %d", got, DefaultSurchargeMinor)
	}
}
